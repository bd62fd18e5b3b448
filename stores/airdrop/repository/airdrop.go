package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/airdrop"
	"github.com/melodex/goapi/service/query"
)

type airdropRepoImpl struct {
	q query.Mongo
}

func NewAirdropRepo(q query.Mongo) airdrop.Repo {
	return &airdropRepoImpl{q: q}
}

func (r *airdropRepoImpl) FindOne(ctx bCtx.Ctx, id domain.AirdropId) (*airdrop.Airdrop, error) {
	a := &airdrop.Airdrop{}
	err := r.q.FindOne(ctx, domain.TableAirdrops, bson.M{"airdropId": id}, a)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("airdropId", id).Error("q.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (r *airdropRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...airdrop.FindAllOptionsFunc) ([]airdrop.Airdrop, error) {
	opts, err := airdrop.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("airdrop.GetFindAllOptions failed")
		return nil, err
	}

	var (
		offset int    = 0
		limit  int    = 0
		qry    bson.M = bson.M{}
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.AssetId != nil {
		qry["assetId"] = *opts.AssetId
	}
	if opts.Owner != nil {
		qry["owner"] = *opts.Owner
	}

	airdrops := []airdrop.Airdrop{}
	if err := r.q.Search(ctx, domain.TableAirdrops, offset, limit, "-createdAt", qry, &airdrops); err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}
	return airdrops, nil
}

func (r *airdropRepoImpl) Create(ctx bCtx.Ctx, a *airdrop.Airdrop) error {
	copy := *a
	copy.Owner = a.Owner.ToLower()
	if err := r.q.Insert(ctx, domain.TableAirdrops, &copy); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"airdrop": a,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *airdropRepoImpl) AdjustRemaining(ctx bCtx.Ctx, id domain.AirdropId, delta int64) error {
	a := &airdrop.Airdrop{}
	if err := r.q.Increment(ctx, domain.TableAirdrops, bson.M{"airdropId": id}, a, "remainingQty", delta); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"airdropId": id,
			"delta":     delta,
		}).Error("q.Increment failed")
		return err
	}
	return nil
}

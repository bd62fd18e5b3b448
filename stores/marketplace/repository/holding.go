package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/service/query"
)

type holdingRepoImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) marketplace.HoldingRepo {
	return &holdingRepoImpl{q: q}
}

func (r *holdingRepoImpl) Held(ctx bCtx.Ctx, assetId domain.AssetId, holder domain.Address) (int64, error) {
	qry := bson.M{
		"assetId": assetId,
		"holder":  holder.ToLower(),
	}

	holding := &marketplace.Holding{}
	err := r.q.FindOne(ctx, domain.TableHoldings, qry, holding)
	if err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.FindOne failed")
		return 0, err
	}
	return holding.Units, nil
}

func (r *holdingRepoImpl) Add(ctx bCtx.Ctx, assetId domain.AssetId, holder domain.Address, units int64) error {
	qry := bson.M{
		"assetId": assetId,
		"holder":  holder.ToLower(),
	}

	holding := &marketplace.Holding{}
	if err := r.q.Increment(ctx, domain.TableHoldings, qry, holding, "units", units); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
			"units": units,
		}).Error("q.Increment failed")
		return err
	}
	return nil
}

package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/service/query"
)

type activityRepoImpl struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) marketplace.ActivityRepo {
	return &activityRepoImpl{q: q}
}

func (r *activityRepoImpl) Insert(ctx bCtx.Ctx, activity *marketplace.Activity) error {
	if err := r.q.Insert(ctx, domain.TableActivities, activity); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": activity,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...marketplace.ActivityFindAllOptionsFunc) ([]marketplace.Activity, error) {
	opts, err := marketplace.GetActivityFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.GetActivityFindAllOptions failed")
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
	if opts.Account != nil {
		qry["$or"] = bson.A{
			bson.M{"account": *opts.Account},
			bson.M{"other": *opts.Account},
		}
	}
	if opts.Types != nil {
		if types := *opts.Types; len(types) > 1 {
			qry["type"] = bson.M{"$in": types}
		} else if len(types) > 0 {
			qry["type"] = types[0]
		}
	}

	activities := []marketplace.Activity{}
	if err := r.q.Search(ctx, domain.TableActivities, offset, limit, "-createdAt", qry, &activities); err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}
	return activities, nil
}

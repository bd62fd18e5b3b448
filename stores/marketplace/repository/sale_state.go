package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/service/query"
)

type saleStateRepoImpl struct {
	q query.Mongo
}

func NewSaleStateRepo(q query.Mongo) marketplace.SaleStateRepo {
	return &saleStateRepoImpl{q: q}
}

func (r *saleStateRepoImpl) EverSold(ctx bCtx.Ctx, assetId domain.AssetId) (bool, error) {
	state := &marketplace.AssetSaleState{}
	err := r.q.FindOne(ctx, domain.TableAssetSaleStates, bson.M{"assetId": assetId}, state)
	if err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithField("err", err).WithField("assetId", assetId).Error("q.FindOne failed")
		return false, err
	}
	return state.EverSold, nil
}

func (r *saleStateRepoImpl) MarkSold(ctx bCtx.Ctx, assetId domain.AssetId) error {
	state := &marketplace.AssetSaleState{AssetId: assetId, EverSold: true}
	if err := r.q.Upsert(ctx, domain.TableAssetSaleStates, bson.M{"assetId": assetId}, state); err != nil {
		ctx.WithField("err", err).WithField("assetId", assetId).Error("q.Upsert failed")
		return err
	}
	return nil
}

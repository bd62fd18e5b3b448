package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/service/query"
)

type specialListingRepoImpl struct {
	q query.Mongo
}

func NewSpecialListingRepo(q query.Mongo) marketplace.SpecialListingRepo {
	return &specialListingRepoImpl{q: q}
}

func (r *specialListingRepoImpl) FindOne(ctx bCtx.Ctx, assetId domain.AssetId) (*marketplace.SpecialListing, error) {
	listing := &marketplace.SpecialListing{}
	err := r.q.FindOne(ctx, domain.TableSpecialListings, bson.M{"assetId": assetId}, listing)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("assetId", assetId).Error("q.FindOne failed")
		return nil, err
	}
	return listing, nil
}

func (r *specialListingRepoImpl) Upsert(ctx bCtx.Ctx, listing *marketplace.SpecialListing) error {
	copy := *listing
	copy.Seller = listing.Seller.ToLower()
	if err := r.q.Upsert(ctx, domain.TableSpecialListings, bson.M{"assetId": listing.AssetId}, &copy); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": listing,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *specialListingRepoImpl) Remove(ctx bCtx.Ctx, assetId domain.AssetId) error {
	err := r.q.Remove(ctx, domain.TableSpecialListings, bson.M{"assetId": assetId})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("assetId", assetId).Error("q.Remove failed")
		return err
	}
	return nil
}

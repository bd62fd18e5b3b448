package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/service/query"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) marketplace.ListingRepo {
	return &listingRepoImpl{q: q}
}

func (r *listingRepoImpl) FindOne(ctx bCtx.Ctx, id domain.ListingId) (*marketplace.Listing, error) {
	listing := &marketplace.Listing{}
	err := r.q.FindOne(ctx, domain.TableListings, bson.M{"listingId": id}, listing)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return listing, nil
}

func (r *listingRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...marketplace.ListingFindAllOptionsFunc) ([]marketplace.Listing, error) {
	opts, err := marketplace.GetListingFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.GetListingFindAllOptions failed")
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
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}

	listings := []marketplace.Listing{}
	if err := r.q.Search(ctx, domain.TableListings, offset, limit, "-createdAt", qry, &listings); err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}
	return listings, nil
}

func (r *listingRepoImpl) FindLive(ctx bCtx.Ctx, assetId domain.AssetId, seller domain.Address) (*marketplace.Listing, error) {
	qry := bson.M{
		"assetId": assetId,
		"seller":  seller.ToLower(),
	}

	listing := &marketplace.Listing{}
	err := r.q.FindOne(ctx, domain.TableListings, qry, listing)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.FindOne failed")
		return nil, err
	}
	return listing, nil
}

func (r *listingRepoImpl) Create(ctx bCtx.Ctx, listing *marketplace.Listing) error {
	copy := *listing
	copy.Seller = listing.Seller.ToLower()
	if err := r.q.Insert(ctx, domain.TableListings, &copy); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": listing,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *listingRepoImpl) Patch(ctx bCtx.Ctx, id domain.ListingId, patchable marketplace.ListingPatchable) error {
	err := r.q.Patch(ctx, domain.TableListings, bson.M{"listingId": id}, patchable)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"patchable": patchable,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *listingRepoImpl) Remove(ctx bCtx.Ctx, id domain.ListingId) error {
	err := r.q.Remove(ctx, domain.TableListings, bson.M{"listingId": id})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("listingId", id).Error("q.Remove failed")
		return err
	}
	return nil
}

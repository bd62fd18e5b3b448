package marketplace

import (
	"time"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

// Listing is an open offer to sell units of an asset at a fixed unit price.
// UnitPrice is a decimal string of the smallest payment unit.
type Listing struct {
	ListingId      domain.ListingId `json:"listingId" bson:"listingId"`
	AssetId        domain.AssetId   `json:"assetId" bson:"assetId"`
	Seller         domain.Address   `json:"seller" bson:"seller"`
	UnitPrice      string           `json:"unitPrice" bson:"unitPrice"`
	UnitsRemaining int64            `json:"unitsRemaining" bson:"unitsRemaining"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// SpecialListing offers the asset's royalty-manager role plus one unit.
// One slot per asset, keyed by assetId.
type SpecialListing struct {
	AssetId   domain.AssetId `json:"assetId" bson:"assetId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Price     string         `json:"price" bson:"price"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// AssetSaleState tracks whether any unit of an asset has ever sold through
// the engine. EverSold flips false to true once and never back; it selects
// the first-sale vs resale fee policy.
type AssetSaleState struct {
	AssetId  domain.AssetId `json:"assetId" bson:"assetId"`
	EverSold bool           `json:"everSold" bson:"everSold"`
}

// Holding is the cumulative number of units of an asset one address has
// acquired through the engine; the unit cap is enforced against it.
type Holding struct {
	AssetId domain.AssetId `json:"assetId" bson:"assetId"`
	Holder  domain.Address `json:"holder" bson:"holder"`
	Units   int64          `json:"units" bson:"units"`
}

type ListingFindAllOptions struct {
	AssetId *domain.AssetId
	Seller  *domain.Address
	Offset  *int32
	Limit   *int32
}

type ListingFindAllOptionsFunc func(*ListingFindAllOptions) error

func GetListingFindAllOptions(opts ...ListingFindAllOptionsFunc) (ListingFindAllOptions, error) {
	res := ListingFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func ListingWithAsset(assetId domain.AssetId) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.AssetId = &assetId
		return nil
	}
}

func ListingWithSeller(seller domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func ListingWithPagination(offset, limit int32) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// ListingPatchable carries the mutable listing fields for partial updates.
type ListingPatchable struct {
	UnitPrice      *string    `bson:"unitPrice,omitempty"`
	UnitsRemaining *int64     `bson:"unitsRemaining,omitempty"`
	UpdatedAt      *time.Time `bson:"updatedAt,omitempty"`
}

type ListingRepo interface {
	FindOne(ctx.Ctx, domain.ListingId) (*Listing, error)
	FindAll(ctx.Ctx, ...ListingFindAllOptionsFunc) ([]Listing, error)
	FindLive(ctx.Ctx, domain.AssetId, domain.Address) (*Listing, error)
	Create(ctx.Ctx, *Listing) error
	Patch(ctx.Ctx, domain.ListingId, ListingPatchable) error
	Remove(ctx.Ctx, domain.ListingId) error
}

type SpecialListingRepo interface {
	FindOne(ctx.Ctx, domain.AssetId) (*SpecialListing, error)
	Upsert(ctx.Ctx, *SpecialListing) error
	Remove(ctx.Ctx, domain.AssetId) error
}

type SaleStateRepo interface {
	EverSold(ctx.Ctx, domain.AssetId) (bool, error)
	MarkSold(ctx.Ctx, domain.AssetId) error
}

type HoldingRepo interface {
	Held(ctx.Ctx, domain.AssetId, domain.Address) (int64, error)
	Add(ctx.Ctx, domain.AssetId, domain.Address, int64) error
}

// CounterRepo hands out monotonically increasing ids. Ids start at 1 and are
// never reused.
type CounterRepo interface {
	Next(ctx.Ctx, string) (uint64, error)
}

const (
	CounterListings  = "listingIds"
	CounterExchanges = "exchangeIds"
	CounterAirdrops  = "airdropIds"
)

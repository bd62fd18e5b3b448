package marketplace

import (
	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

// Payout is one line of a settled sale: who got paid what and why.
type Payout struct {
	To     domain.Address `json:"to"`
	Amount string         `json:"amount"`
	Reason string         `json:"reason"`
}

const (
	PayoutPlatformFee   = "platformFee"
	PayoutSellerShare   = "sellerShare"
	PayoutRoyalty       = "royalty"
	PayoutPoolRemainder = "poolRemainder"
	PayoutRefund        = "refund"
)

// Receipt reports a settled purchase or special purchase.
type Receipt struct {
	ListingId domain.ListingId `json:"listingId,omitempty"`
	AssetId   domain.AssetId   `json:"assetId"`
	Seller    domain.Address   `json:"seller"`
	Buyer     domain.Address   `json:"buyer"`
	Quantity  int64            `json:"quantity"`
	Total     string           `json:"total"`
	FirstSale bool             `json:"firstSale"`
	Payouts   []Payout         `json:"payouts"`
}

// ListInput creates a standard listing; AirdropQty > 0 additionally escrows
// that many units into a new airdrop in the same transaction (the combined
// mint-and-list path).
type ListInput struct {
	Seller     domain.Address
	AssetId    domain.AssetId
	UnitPrice  string
	Quantity   int64
	AirdropQty int64
}

type UpdateInput struct {
	Caller    domain.Address
	ListingId domain.ListingId
	QtyDelta  int64
	UnitPrice string
}

type PurchaseInput struct {
	Buyer     domain.Address
	ListingId domain.ListingId
	Quantity  int64
	Paid      string
}

type SpecialBuyInput struct {
	Buyer      domain.Address
	AssetId    domain.AssetId
	Recipients []domain.Address
	Bps        []int64
	Paid       string
}

// Acceptance markers returned by the units-received callbacks so the
// registry's transfer path does not revert when escrowing into the engine.
const (
	UnitsReceivedMarker      = "0xf23a6e61"
	UnitsBatchReceivedMarker = "0xbc197c81"
)

type UseCase interface {
	List(ctx.Ctx, *ListInput) (*Listing, error)
	Update(ctx.Ctx, *UpdateInput) (*Listing, error)
	Cancel(ctx.Ctx, domain.Address, domain.ListingId) error
	Purchase(ctx.Ctx, *PurchaseInput) (*Receipt, error)

	ListSpecial(ctx.Ctx, domain.Address, domain.AssetId, string) (*SpecialListing, error)
	SpecialBuy(ctx.Ctx, *SpecialBuyInput) (*Receipt, error)
	CancelSpecial(ctx.Ctx, domain.Address, domain.AssetId) error

	UpdateFirstSaleFee(ctx.Ctx, domain.Address, FeeConfig) error
	UpdateResaleFee(ctx.Ctx, domain.Address, FeeConfig) error
	UpdateUnitCap(ctx.Ctx, domain.Address, int64) error

	GetListing(ctx.Ctx, domain.ListingId) (*Listing, error)
	GetListings(ctx.Ctx, ...ListingFindAllOptionsFunc) ([]Listing, error)
	GetSpecialListing(ctx.Ctx, domain.AssetId) (*SpecialListing, error)
	GetFeeConfigs(ctx.Ctx) (*FeeConfig, *FeeConfig, *PlatformConfig, error)
	GetActivities(ctx.Ctx, ...ActivityFindAllOptionsFunc) ([]Activity, error)

	OnUnitsReceived(ctx.Ctx) string
	OnUnitsBatchReceived(ctx.Ctx) string
}

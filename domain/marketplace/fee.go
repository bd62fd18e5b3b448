package marketplace

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

const TotalBps = 10000

// Fee config labels, also carried on the config-updated activity records.
const (
	FeeLabelFirstSale = ""
	FeeLabelResale    = "Resale"
)

// FeeConfig splits a sale amount three ways. The three parts must sum to
// exactly TotalBps.
type FeeConfig struct {
	Label          string `json:"label" bson:"label"`
	PlatformBps    int64  `json:"platformBps" bson:"platformBps"`
	RoyaltyPoolBps int64  `json:"royaltyPoolBps" bson:"royaltyPoolBps"`
	SellerBps      int64  `json:"sellerBps" bson:"sellerBps"`
}

func (c FeeConfig) Valid() bool {
	return c.PlatformBps >= 0 && c.RoyaltyPoolBps >= 0 && c.SellerBps >= 0 &&
		c.PlatformBps+c.RoyaltyPoolBps+c.SellerBps == TotalBps
}

// Split carves saleAmount into platform, seller-direct and royalty-pool
// parts. platform and seller truncate; the pool absorbs both remainders so
// the three always sum back to saleAmount.
func (c FeeConfig) Split(saleAmount *big.Int) (platform, seller, pool *big.Int) {
	platform = mulBps(saleAmount, c.PlatformBps)
	seller = mulBps(saleAmount, c.SellerBps)
	pool = new(big.Int).Sub(saleAmount, platform)
	pool.Sub(pool, seller)
	return platform, seller, pool
}

// RoyaltyShare is one registered recipient of an asset's royalty pool.
type RoyaltyShare struct {
	Recipient domain.Address `json:"recipient" bson:"recipient"`
	Bps       int64          `json:"bps" bson:"bps"`
}

// DistributePool resolves each recipient's cut of poolAmount. The truncation
// remainder goes back to the caller (credited to the platform treasury), so
// no dust stays locked in the engine.
func DistributePool(poolAmount *big.Int, shares []RoyaltyShare) (cuts []*big.Int, remainder *big.Int) {
	remainder = new(big.Int).Set(poolAmount)
	cuts = make([]*big.Int, len(shares))
	for i, s := range shares {
		cuts[i] = mulBps(poolAmount, s.Bps)
		remainder.Sub(remainder, cuts[i])
	}
	return cuts, remainder
}

func mulBps(amount *big.Int, bps int64) *big.Int {
	v := new(big.Int).Mul(amount, big.NewInt(bps))
	return v.Quo(v, big.NewInt(TotalBps))
}

// ParseAmount parses a decimal string into an exact non-negative integer
// amount. Engine arithmetic is integer only; decimals are for wire format.
func ParseAmount(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, xerrors.Errorf("parse amount %q: %w", s, domain.ErrInvalidNumberFormat)
	}
	if d.Exponent() < 0 || d.Sign() < 0 {
		return nil, xerrors.Errorf("amount %q is not a non-negative integer: %w", s, domain.ErrInvalidNumberFormat)
	}
	return d.BigInt(), nil
}

// PlatformConfig carries the global per-purchase and per-holder unit cap.
type PlatformConfig struct {
	MaxUnitsPerHolder int64 `json:"maxUnitsPerHolder" bson:"maxUnitsPerHolder"`
}

type FeeConfigRepo interface {
	Get(ctx.Ctx, string) (*FeeConfig, error)
	Upsert(ctx.Ctx, *FeeConfig) error
	GetPlatformConfig(ctx.Ctx) (*PlatformConfig, error)
	UpsertPlatformConfig(ctx.Ctx, *PlatformConfig) error
}

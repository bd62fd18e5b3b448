package escrow

import (
	"time"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

type HoldType string

const (
	HoldExchange HoldType = "exchange"
	HoldAirdrop  HoldType = "airdrop"
)

// Entry records units the engine holds on behalf of an owner for a barter
// slot or an airdrop. Escrow is its own table, keyed by (hold, ref, owner),
// so custody stays auditable independent of the registry's balance of the
// engine address.
type Entry struct {
	Hold      HoldType       `json:"hold" bson:"hold"`
	Ref       uint64         `json:"ref" bson:"ref"`
	AssetId   domain.AssetId `json:"assetId" bson:"assetId"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Qty       int64          `json:"qty" bson:"qty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	FindOne(c ctx.Ctx, hold HoldType, ref uint64, owner domain.Address) (*Entry, error)
	Deposit(ctx.Ctx, *Entry) error
	// Adjust adds delta to the held quantity; the entry is removed when it
	// reaches zero.
	Adjust(c ctx.Ctx, hold HoldType, ref uint64, owner domain.Address, delta int64) error
	Release(c ctx.Ctx, hold HoldType, ref uint64, owner domain.Address) error
}

package payment

import (
	"time"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

// Entry is one fund movement out of the engine: a fee, a royalty cut, the
// seller's share or a refund. Amount is a decimal string.
type Entry struct {
	To        domain.Address `json:"to" bson:"to"`
	Amount    string         `json:"amount" bson:"amount"`
	Reason    string         `json:"reason" bson:"reason"`
	AssetId   domain.AssetId `json:"assetId" bson:"assetId"`
	Ref       string         `json:"ref,omitempty" bson:"ref,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// Ledger pays proceeds out of the engine's funds. Implementations must be
// append-only and auditable; the engine issues payouts only after its own
// state is committed.
type Ledger interface {
	Payout(ctx.Ctx, *Entry) error
	Balance(ctx.Ctx, domain.Address) (string, error)
}

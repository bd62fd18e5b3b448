package exchange

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

// Side is one half of a barter slot. A side is filled when User is set; its
// escrowed units live in the escrow table under the slot's exchange id.
type Side struct {
	AssetId  domain.AssetId `json:"assetId" bson:"assetId"`
	Qty      int64          `json:"qty" bson:"qty"`
	User     domain.Address `json:"user" bson:"user"`
	Approved bool           `json:"approved" bson:"approved"`
}

func (s Side) Filled() bool {
	return !s.User.IsEmpty()
}

// Slot pairs two escrowed positions. Lifecycle:
// empty -> base filled -> both filled -> both approved -> settled (slot
// reset). Either side may cancel before settlement; cancelling refunds that
// side's escrow and clears only that side. A base cancel also voids the
// counter side's pending approval.
type Slot struct {
	ExchangeId domain.ExchangeId `json:"exchangeId" bson:"exchangeId"`
	Base       Side              `json:"base" bson:"base"`
	Counter    Side              `json:"counter" bson:"counter"`
	CreatedAt  time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt" bson:"updatedAt"`
}

var (
	ErrInvalidNftExchange  = xerrors.Errorf("invalid exchange: %w", domain.ErrNotFound)
	ErrInvalidCounterToken = xerrors.Errorf("counter side not filled: %w", domain.ErrBadParamInput)
	ErrInvalidBaseToken    = xerrors.Errorf("base side cancelled: %w", domain.ErrBadParamInput)
	ErrNotValidParticipant = xerrors.Errorf("not a participant: %w", domain.ErrUnauthorized)
	ErrSelfExchange        = xerrors.Errorf("caller already fills the other side: %w", domain.ErrBadParamInput)
)

type SlotRepo interface {
	FindOne(ctx.Ctx, domain.ExchangeId) (*Slot, error)
	Upsert(ctx.Ctx, *Slot) error
	Remove(ctx.Ctx, domain.ExchangeId) error
}

type RegisterInput struct {
	Caller     domain.Address
	AssetId    domain.AssetId
	Qty        int64
	ExchangeId domain.ExchangeId
}

type UseCase interface {
	Register(ctx.Ctx, *RegisterInput) (*Slot, error)
	Approve(ctx.Ctx, domain.Address, domain.ExchangeId) (*Slot, error)
	Cancel(ctx.Ctx, domain.Address, domain.ExchangeId) error
	Get(ctx.Ctx, domain.ExchangeId) (*Slot, error)
}

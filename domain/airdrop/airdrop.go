package airdrop

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

// Airdrop is a pre-funded free distribution: TotalQty units escrowed by the
// asset owner, handed out one unit per claimer until exhausted.
type Airdrop struct {
	AirdropId    domain.AirdropId `json:"airdropId" bson:"airdropId"`
	Owner        domain.Address   `json:"owner" bson:"owner"`
	AssetId      domain.AssetId   `json:"assetId" bson:"assetId"`
	TotalQty     int64            `json:"totalQty" bson:"totalQty"`
	RemainingQty int64            `json:"remainingQty" bson:"remainingQty"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
}

// Claim marks one address as served; (airdropId, claimer) is unique.
type Claim struct {
	AirdropId domain.AirdropId `json:"airdropId" bson:"airdropId"`
	Claimer   domain.Address   `json:"claimer" bson:"claimer"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

var (
	ErrInvalidAirdrop = xerrors.Errorf("invalid airdrop: %w", domain.ErrNotFound)
	ErrAlreadyClaimed = xerrors.Errorf("already claimed: %w", domain.ErrConflict)
)

type FindAllOptions struct {
	AssetId *domain.AssetId
	Owner   *domain.Address
	Offset  *int32
	Limit   *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithAsset(assetId domain.AssetId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AssetId = &assetId
		return nil
	}
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		owner = owner.ToLower()
		options.Owner = &owner
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	FindOne(ctx.Ctx, domain.AirdropId) (*Airdrop, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]Airdrop, error)
	Create(ctx.Ctx, *Airdrop) error
	// AdjustRemaining adds delta to RemainingQty.
	AdjustRemaining(ctx.Ctx, domain.AirdropId, int64) error
}

type ClaimRepo interface {
	// Insert fails with ErrAlreadyClaimed when (airdropId, claimer) exists.
	Insert(ctx.Ctx, *Claim) error
	Has(ctx.Ctx, domain.AirdropId, domain.Address) (bool, error)
}

type RegisterInput struct {
	Owner   domain.Address
	AssetId domain.AssetId
	Qty     int64
	// ReuseId takes over a caller-supplied airdrop id; zero allocates a
	// fresh one from the counter.
	ReuseId domain.AirdropId
}

type UseCase interface {
	Register(ctx.Ctx, *RegisterInput) (*Airdrop, error)
	// RegisterInTxn writes the airdrop records through the caller's
	// transaction context instead of opening a session of its own. The caller
	// vets ownership and approval up front and moves the units into the
	// engine after its transaction commits.
	RegisterInTxn(ctx.Ctx, *RegisterInput) (*Airdrop, error)
	Claim(ctx.Ctx, domain.Address, domain.AirdropId) (*Airdrop, error)
	Get(ctx.Ctx, domain.AirdropId) (*Airdrop, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]Airdrop, error)
}

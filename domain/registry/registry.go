package registry

import (
	"golang.org/x/xerrors"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
)

// Registry is the external asset ledger the engine consults and mutates. It
// owns balances, transfer execution, approvals, the royalty-recipient table
// and the royalty-manager role; the engine never assumes a storage backend
// behind it.
type Registry interface {
	BalanceOf(ctx.Ctx, domain.Address, domain.AssetId) (int64, error)
	OwnerOf(ctx.Ctx, domain.AssetId) (domain.Address, error)
	IsApprovedForEngine(ctx.Ctx, domain.Address) (bool, error)
	Transfer(c ctx.Ctx, from, to domain.Address, assetId domain.AssetId, qty int64) error
	BatchTransfer(c ctx.Ctx, from, to domain.Address, assetIds []domain.AssetId, qtys []int64) error
	RoyaltyRecipients(ctx.Ctx, domain.AssetId) ([]marketplace.RoyaltyShare, error)
	SetRoyaltyRecipients(ctx.Ctx, domain.AssetId, []marketplace.RoyaltyShare) error
	RoyaltyManager(ctx.Ctx, domain.AssetId) (domain.Address, error)
	SetRoyaltyManager(ctx.Ctx, domain.AssetId, domain.Address) error
}

var (
	ErrAssetNotFound    = xerrors.Errorf("asset not found in registry: %w", domain.ErrNotFound)
	ErrTransferReverted = xerrors.Errorf("registry transfer reverted: %w", domain.ErrInternalServerError)
)

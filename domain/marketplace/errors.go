package marketplace

import (
	"golang.org/x/xerrors"

	"github.com/melodex/goapi/domain"
)

// Error identifiers mirror the marketplace's revert conditions one to one so
// callers can tell every failure apart. Each wraps a domain category sentinel
// for http status mapping.
var (
	// authorization
	ErrNotTokenOwner          = xerrors.Errorf("not token owner: %w", domain.ErrUnauthorized)
	ErrNotSeller              = xerrors.Errorf("not seller: %w", domain.ErrUnauthorized)
	ErrNoAuthorityToUpdate    = xerrors.Errorf("no authority to update listing: %w", domain.ErrUnauthorized)
	ErrNotTokenRoyaltyManager = xerrors.Errorf("not token royalty manager: %w", domain.ErrUnauthorized)
	ErrNotPlatformOwner       = xerrors.Errorf("not platform owner: %w", domain.ErrUnauthorized)
	ErrInvalidBuyer           = xerrors.Errorf("seller cannot be buyer: %w", domain.ErrBadParamInput)

	// approval
	ErrMarketplaceNotApproved = xerrors.Errorf("marketplace not approved: %w", domain.ErrNotApproved)

	// state
	ErrNFTNotListed       = xerrors.Errorf("nft not listed: %w", domain.ErrNotFound)
	ErrTokenAlreadyListed = xerrors.Errorf("token already listed: %w", domain.ErrConflict)

	// value
	ErrInvalidZeroParams        = xerrors.Errorf("zero param: %w", domain.ErrBadParamInput)
	ErrInsufficientPayment      = xerrors.Errorf("insufficient payment: %w", domain.ErrBadParamInput)
	ErrInvalidAmountForPurchase = xerrors.Errorf("amount exceeds listed units: %w", domain.ErrBadParamInput)
	ErrExceedsHoldingCap        = xerrors.Errorf("exceeds per-holder unit cap: %w", domain.ErrBadParamInput)
	ErrMismatchedArrayPassed    = xerrors.Errorf("mismatched array lengths: %w", domain.ErrBadParamInput)
	ErrInvalidPercentage        = xerrors.Errorf("percentages must sum to 10000 bps: %w", domain.ErrBadParamInput)
	ErrInvalidUnitCap           = xerrors.Errorf("unit cap must be positive: %w", domain.ErrBadParamInput)
)

package usecase

import (
	"sync"
	"time"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/base/ptr"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/airdrop"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/domain/payment"
	"github.com/melodex/goapi/domain/registry"
)

type MarketplaceUseCaseCfg struct {
	ListingRepo        marketplace.ListingRepo
	SpecialListingRepo marketplace.SpecialListingRepo
	SaleStateRepo      marketplace.SaleStateRepo
	HoldingRepo        marketplace.HoldingRepo
	FeeConfigRepo      marketplace.FeeConfigRepo
	ActivityRepo       marketplace.ActivityRepo
	CounterRepo        marketplace.CounterRepo
	AirdropUC          airdrop.UseCase
	Registry           registry.Registry
	Ledger             payment.Ledger
	Txn                domain.TxnRunner
	PlatformOwner      domain.Address
	Treasury           domain.Address
	// Engine is the address holding escrowed units in the registry.
	Engine domain.Address
}

type impl struct {
	listing       marketplace.ListingRepo
	special       marketplace.SpecialListingRepo
	saleState     marketplace.SaleStateRepo
	holding       marketplace.HoldingRepo
	feeConfig     marketplace.FeeConfigRepo
	activity      marketplace.ActivityRepo
	counter       marketplace.CounterRepo
	airdropUC     airdrop.UseCase
	registry      registry.Registry
	ledger        payment.Ledger
	txn           domain.TxnRunner
	platformOwner domain.Address
	treasury      domain.Address
	engine        domain.Address

	// mu serializes mutating operations so no two of them interleave
	// against the same listing or config.
	mu sync.Mutex
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		listing:       cfg.ListingRepo,
		special:       cfg.SpecialListingRepo,
		saleState:     cfg.SaleStateRepo,
		holding:       cfg.HoldingRepo,
		feeConfig:     cfg.FeeConfigRepo,
		activity:      cfg.ActivityRepo,
		counter:       cfg.CounterRepo,
		airdropUC:     cfg.AirdropUC,
		registry:      cfg.Registry,
		ledger:        cfg.Ledger,
		txn:           cfg.Txn,
		platformOwner: cfg.PlatformOwner.ToLower(),
		treasury:      cfg.Treasury.ToLower(),
		engine:        cfg.Engine.ToLower(),
	}
}

func (im *impl) List(c bCtx.Ctx, in *marketplace.ListInput) (*marketplace.Listing, error) {
	price, err := marketplace.ParseAmount(in.UnitPrice)
	if err != nil {
		return nil, err
	}
	if price.Sign() == 0 || in.Quantity <= 0 || in.AirdropQty < 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}

	seller := in.Seller.ToLower()

	balance, err := im.registry.BalanceOf(c, seller, in.AssetId)
	if err != nil {
		c.WithField("err", err).Error("registry.BalanceOf failed")
		return nil, err
	}
	if balance < in.Quantity+in.AirdropQty {
		return nil, marketplace.ErrNotTokenOwner
	}

	if approved, err := im.registry.IsApprovedForEngine(c, seller); err != nil {
		c.WithField("err", err).Error("registry.IsApprovedForEngine failed")
		return nil, err
	} else if !approved {
		return nil, marketplace.ErrMarketplaceNotApproved
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	if _, err := im.listing.FindLive(c, in.AssetId, seller); err == nil {
		return nil, marketplace.ErrTokenAlreadyListed
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	var created *marketplace.Listing
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		id, err := im.counter.Next(c, marketplace.CounterListings)
		if err != nil {
			return err
		}

		now := time.Now()
		listing := &marketplace.Listing{
			ListingId:      domain.ListingId(id),
			AssetId:        in.AssetId,
			Seller:         seller,
			UnitPrice:      price.String(),
			UnitsRemaining: in.Quantity,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := im.listing.Create(c, listing); err != nil {
			return err
		}

		if err := im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityListed,
			AssetId:   in.AssetId,
			Account:   seller,
			Quantity:  in.Quantity,
			Price:     listing.UnitPrice,
			Ref:       id,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		// combined list-with-airdrop path records the airdrop through this
		// same transaction; the units move on chain only after commit
		if in.AirdropQty > 0 {
			if _, err := im.airdropUC.RegisterInTxn(c, &airdrop.RegisterInput{
				Owner:   seller,
				AssetId: in.AssetId,
				Qty:     in.AirdropQty,
			}); err != nil {
				return err
			}
		}

		created = listing
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"input": in,
		}).Error("list transaction failed")
		return nil, err
	}

	if in.AirdropQty > 0 {
		if err := im.registry.Transfer(c, seller, im.engine, in.AssetId, in.AirdropQty); err != nil {
			c.WithField("err", err).Error("registry.Transfer failed")
			return nil, err
		}
	}

	return created, nil
}

func (im *impl) Update(c bCtx.Ctx, in *marketplace.UpdateInput) (*marketplace.Listing, error) {
	price, err := marketplace.ParseAmount(in.UnitPrice)
	if err != nil {
		return nil, err
	}
	if price.Sign() == 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	listing, err := im.listing.FindOne(c, in.ListingId)
	if err == domain.ErrNotFound {
		return nil, marketplace.ErrNFTNotListed
	} else if err != nil {
		return nil, err
	}

	if !listing.Seller.Equals(in.Caller) {
		return nil, marketplace.ErrNoAuthorityToUpdate
	}

	newUnits := listing.UnitsRemaining + in.QtyDelta
	if newUnits <= 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}

	if in.QtyDelta > 0 {
		balance, err := im.registry.BalanceOf(c, listing.Seller, listing.AssetId)
		if err != nil {
			c.WithField("err", err).Error("registry.BalanceOf failed")
			return nil, err
		}
		if balance < newUnits {
			return nil, marketplace.ErrNotTokenOwner
		}
	}

	now := time.Now()
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.listing.Patch(c, in.ListingId, marketplace.ListingPatchable{
			UnitPrice:      ptr.String(price.String()),
			UnitsRemaining: ptr.Int64(newUnits),
			UpdatedAt:      &now,
		}); err != nil {
			return err
		}

		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityListingUpdated,
			AssetId:   listing.AssetId,
			Account:   listing.Seller,
			Quantity:  newUnits,
			Price:     price.String(),
			Ref:       uint64(in.ListingId),
			Old:       listing.UnitPrice,
			New:       price.String(),
			CreatedAt: now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"input": in,
		}).Error("update transaction failed")
		return nil, err
	}

	listing.UnitPrice = price.String()
	listing.UnitsRemaining = newUnits
	listing.UpdatedAt = now
	return listing, nil
}

func (im *impl) Cancel(c bCtx.Ctx, caller domain.Address, id domain.ListingId) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	listing, err := im.listing.FindOne(c, id)
	if err == domain.ErrNotFound {
		return marketplace.ErrNFTNotListed
	} else if err != nil {
		return err
	}

	if !listing.Seller.Equals(caller) {
		return marketplace.ErrNotSeller
	}

	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.listing.Remove(c, id); err != nil {
			return err
		}

		// cancellation record keeps the last known price and quantity
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityListingCancelled,
			AssetId:   listing.AssetId,
			Account:   listing.Seller,
			Quantity:  listing.UnitsRemaining,
			Price:     listing.UnitPrice,
			Ref:       uint64(id),
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("cancel transaction failed")
		return err
	}
	return nil
}

func (im *impl) GetListing(c bCtx.Ctx, id domain.ListingId) (*marketplace.Listing, error) {
	listing, err := im.listing.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, marketplace.ErrNFTNotListed
	} else if err != nil {
		return nil, err
	}
	return listing, nil
}

func (im *impl) GetListings(c bCtx.Ctx, optFns ...marketplace.ListingFindAllOptionsFunc) ([]marketplace.Listing, error) {
	return im.listing.FindAll(c, optFns...)
}

func (im *impl) GetSpecialListing(c bCtx.Ctx, assetId domain.AssetId) (*marketplace.SpecialListing, error) {
	listing, err := im.special.FindOne(c, assetId)
	if err == domain.ErrNotFound {
		return nil, marketplace.ErrNFTNotListed
	} else if err != nil {
		return nil, err
	}
	return listing, nil
}

func (im *impl) GetActivities(c bCtx.Ctx, optFns ...marketplace.ActivityFindAllOptionsFunc) ([]marketplace.Activity, error) {
	return im.activity.FindAll(c, optFns...)
}

// OnUnitsReceived acknowledges a single-unit escrow transfer into the engine.
func (im *impl) OnUnitsReceived(c bCtx.Ctx) string {
	return marketplace.UnitsReceivedMarker
}

// OnUnitsBatchReceived acknowledges a batch escrow transfer into the engine.
func (im *impl) OnUnitsBatchReceived(c bCtx.Ctx) string {
	return marketplace.UnitsBatchReceivedMarker
}

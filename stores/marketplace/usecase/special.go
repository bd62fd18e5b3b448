package usecase

import (
	"time"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
)

func (im *impl) ListSpecial(c bCtx.Ctx, caller domain.Address, assetId domain.AssetId, price string) (*marketplace.SpecialListing, error) {
	amount, err := marketplace.ParseAmount(price)
	if err != nil {
		return nil, err
	}
	if amount.Sign() == 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}

	caller = caller.ToLower()

	manager, err := im.registry.RoyaltyManager(c, assetId)
	if err != nil {
		c.WithField("err", err).Error("registry.RoyaltyManager failed")
		return nil, err
	}
	if !manager.Equals(caller) {
		return nil, marketplace.ErrNotTokenRoyaltyManager
	}

	if approved, err := im.registry.IsApprovedForEngine(c, caller); err != nil {
		c.WithField("err", err).Error("registry.IsApprovedForEngine failed")
		return nil, err
	} else if !approved {
		return nil, marketplace.ErrMarketplaceNotApproved
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	listing := &marketplace.SpecialListing{
		AssetId:   assetId,
		Seller:    caller,
		Price:     amount.String(),
		CreatedAt: time.Now(),
	}
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.special.Upsert(c, listing); err != nil {
			return err
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivitySpecialListed,
			AssetId:   assetId,
			Account:   caller,
			Price:     listing.Price,
			CreatedAt: listing.CreatedAt,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("listSpecial transaction failed")
		return nil, err
	}

	return listing, nil
}

// SpecialBuy settles the per-asset royalty-manager slot: it runs the single
// unit purchase path, then hands the manager role to the buyer and installs
// the supplied royalty table. An empty table makes the buyer the sole 100%
// recipient.
func (im *impl) SpecialBuy(c bCtx.Ctx, in *marketplace.SpecialBuyInput) (*marketplace.Receipt, error) {
	if len(in.Recipients) != len(in.Bps) {
		return nil, marketplace.ErrMismatchedArrayPassed
	}

	newShares := make([]marketplace.RoyaltyShare, 0, len(in.Recipients))
	if len(in.Recipients) > 0 {
		var sum int64
		for i, recipient := range in.Recipients {
			if in.Bps[i] < 0 {
				return nil, marketplace.ErrInvalidPercentage
			}
			sum += in.Bps[i]
			newShares = append(newShares, marketplace.RoyaltyShare{
				Recipient: recipient.ToLower(),
				Bps:       in.Bps[i],
			})
		}
		if sum != marketplace.TotalBps {
			return nil, marketplace.ErrInvalidPercentage
		}
	}

	paid, err := marketplace.ParseAmount(in.Paid)
	if err != nil {
		return nil, err
	}

	buyer := in.Buyer.ToLower()
	if len(newShares) == 0 {
		newShares = []marketplace.RoyaltyShare{{Recipient: buyer, Bps: marketplace.TotalBps}}
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	listing, err := im.special.FindOne(c, in.AssetId)
	if err == domain.ErrNotFound {
		return nil, marketplace.ErrNFTNotListed
	} else if err != nil {
		return nil, err
	}

	price, err := marketplace.ParseAmount(listing.Price)
	if err != nil {
		return nil, err
	}
	if paid.Cmp(price) < 0 {
		return nil, marketplace.ErrInsufficientPayment
	}

	everSold, err := im.saleState.EverSold(c, in.AssetId)
	if err != nil {
		return nil, err
	}

	payouts, err := im.settleSale(c, in.AssetId, listing.Seller, buyer, price, paid, everSold)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.special.Remove(c, in.AssetId); err != nil {
			return err
		}

		if !everSold {
			if err := im.saleState.MarkSold(c, in.AssetId); err != nil {
				return err
			}
		}

		if err := im.holding.Add(c, in.AssetId, buyer, 1); err != nil {
			return err
		}

		if err := im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivitySpecialPurchased,
			AssetId:   in.AssetId,
			Account:   buyer,
			Other:     listing.Seller,
			Quantity:  1,
			Price:     price.String(),
			CreatedAt: now,
		}); err != nil {
			return err
		}

		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityRoyaltyUpdated,
			AssetId:   in.AssetId,
			Account:   buyer,
			CreatedAt: now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"input": in,
		}).Error("specialBuy transaction failed")
		return nil, err
	}

	if err := im.registry.Transfer(c, listing.Seller, buyer, in.AssetId, 1); err != nil {
		c.WithField("err", err).Error("registry.Transfer failed")
		return nil, err
	}
	if err := im.registry.SetRoyaltyManager(c, in.AssetId, buyer); err != nil {
		c.WithField("err", err).Error("registry.SetRoyaltyManager failed")
		return nil, err
	}
	if err := im.registry.SetRoyaltyRecipients(c, in.AssetId, newShares); err != nil {
		c.WithField("err", err).Error("registry.SetRoyaltyRecipients failed")
		return nil, err
	}
	if err := im.payOut(c, in.AssetId, uint64(in.AssetId), payouts); err != nil {
		return nil, err
	}

	return &marketplace.Receipt{
		AssetId:   in.AssetId,
		Seller:    listing.Seller,
		Buyer:     buyer,
		Quantity:  1,
		Total:     price.String(),
		FirstSale: !everSold,
		Payouts:   payouts,
	}, nil
}

func (im *impl) CancelSpecial(c bCtx.Ctx, caller domain.Address, assetId domain.AssetId) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	listing, err := im.special.FindOne(c, assetId)
	if err == domain.ErrNotFound {
		return marketplace.ErrNFTNotListed
	} else if err != nil {
		return err
	}

	if !listing.Seller.Equals(caller) {
		return marketplace.ErrNotSeller
	}

	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.special.Remove(c, assetId); err != nil {
			return err
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivitySpecialCancelled,
			AssetId:   assetId,
			Account:   listing.Seller,
			Price:     listing.Price,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("cancelSpecial transaction failed")
		return err
	}
	return nil
}

package usecase

import (
	"math/big"
	"strconv"
	"time"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/base/ptr"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/domain/payment"
)

func (im *impl) Purchase(c bCtx.Ctx, in *marketplace.PurchaseInput) (*marketplace.Receipt, error) {
	if in.Quantity <= 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}

	paid, err := marketplace.ParseAmount(in.Paid)
	if err != nil {
		return nil, err
	}

	buyer := in.Buyer.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	listing, err := im.listing.FindOne(c, in.ListingId)
	if err == domain.ErrNotFound {
		return nil, marketplace.ErrNFTNotListed
	} else if err != nil {
		return nil, err
	}

	if listing.Seller.Equals(buyer) {
		return nil, marketplace.ErrInvalidBuyer
	}
	if in.Quantity > listing.UnitsRemaining {
		return nil, marketplace.ErrInvalidAmountForPurchase
	}

	unitPrice, err := marketplace.ParseAmount(listing.UnitPrice)
	if err != nil {
		return nil, err
	}
	total := new(big.Int).Mul(unitPrice, big.NewInt(in.Quantity))
	if paid.Cmp(total) < 0 {
		return nil, marketplace.ErrInsufficientPayment
	}

	if err := im.checkHoldingCap(c, listing.AssetId, buyer, in.Quantity); err != nil {
		return nil, err
	}

	everSold, err := im.saleState.EverSold(c, listing.AssetId)
	if err != nil {
		return nil, err
	}

	payouts, err := im.settleSale(c, listing.AssetId, listing.Seller, buyer, total, paid, everSold)
	if err != nil {
		return nil, err
	}

	newUnits := listing.UnitsRemaining - in.Quantity
	now := time.Now()
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if newUnits == 0 {
			// auto-delist at zero remaining
			if err := im.listing.Remove(c, in.ListingId); err != nil {
				return err
			}
		} else {
			if err := im.listing.Patch(c, in.ListingId, marketplace.ListingPatchable{
				UnitsRemaining: ptr.Int64(newUnits),
				UpdatedAt:      &now,
			}); err != nil {
				return err
			}
		}

		if !everSold {
			if err := im.saleState.MarkSold(c, listing.AssetId); err != nil {
				return err
			}
		}

		if err := im.holding.Add(c, listing.AssetId, buyer, in.Quantity); err != nil {
			return err
		}

		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityPurchased,
			AssetId:   listing.AssetId,
			Account:   buyer,
			Other:     listing.Seller,
			Quantity:  in.Quantity,
			Price:     total.String(),
			Ref:       uint64(in.ListingId),
			CreatedAt: now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"input": in,
		}).Error("purchase transaction failed")
		return nil, err
	}

	// state is committed; only now touch the registry and the fund ledger
	if err := im.registry.Transfer(c, listing.Seller, buyer, listing.AssetId, in.Quantity); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": in.ListingId,
		}).Error("registry.Transfer failed")
		return nil, err
	}
	if err := im.payOut(c, listing.AssetId, uint64(in.ListingId), payouts); err != nil {
		return nil, err
	}

	return &marketplace.Receipt{
		ListingId: in.ListingId,
		AssetId:   listing.AssetId,
		Seller:    listing.Seller,
		Buyer:     buyer,
		Quantity:  in.Quantity,
		Total:     total.String(),
		FirstSale: !everSold,
		Payouts:   payouts,
	}, nil
}

// checkHoldingCap enforces the global per-purchase and cumulative per-holder
// unit cap. A missing platform config means no cap is configured.
func (im *impl) checkHoldingCap(c bCtx.Ctx, assetId domain.AssetId, buyer domain.Address, qty int64) error {
	cfg, err := im.feeConfig.GetPlatformConfig(c)
	if err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		return err
	}

	if qty > cfg.MaxUnitsPerHolder {
		return marketplace.ErrExceedsHoldingCap
	}

	held, err := im.holding.Held(c, assetId, buyer)
	if err != nil {
		return err
	}
	if held+qty > cfg.MaxUnitsPerHolder {
		return marketplace.ErrExceedsHoldingCap
	}
	return nil
}

// settleSale resolves the fee config for this sale and computes every payout
// line: platform fee, seller-direct share, per-recipient royalty cuts, the
// truncation remainder and any overpayment refund. The lines always sum to
// paid exactly.
func (im *impl) settleSale(c bCtx.Ctx, assetId domain.AssetId, seller, buyer domain.Address, total, paid *big.Int, everSold bool) ([]marketplace.Payout, error) {
	label := marketplace.FeeLabelFirstSale
	if everSold {
		label = marketplace.FeeLabelResale
	}

	feeCfg, err := im.feeConfig.Get(c, label)
	if err != nil {
		c.WithField("err", err).WithField("label", label).Error("feeConfig.Get failed")
		return nil, err
	}

	shares, err := im.registry.RoyaltyRecipients(c, assetId)
	if err != nil {
		c.WithField("err", err).Error("registry.RoyaltyRecipients failed")
		return nil, err
	}

	platformAmt, sellerAmt, poolAmt := feeCfg.Split(total)
	cuts, remainder := marketplace.DistributePool(poolAmt, shares)

	payouts := []marketplace.Payout{}
	if platformAmt.Sign() > 0 {
		payouts = append(payouts, marketplace.Payout{
			To:     im.treasury,
			Amount: platformAmt.String(),
			Reason: marketplace.PayoutPlatformFee,
		})
	}
	if sellerAmt.Sign() > 0 {
		payouts = append(payouts, marketplace.Payout{
			To:     seller,
			Amount: sellerAmt.String(),
			Reason: marketplace.PayoutSellerShare,
		})
	}
	for i, share := range shares {
		if cuts[i].Sign() > 0 {
			payouts = append(payouts, marketplace.Payout{
				To:     share.Recipient.ToLower(),
				Amount: cuts[i].String(),
				Reason: marketplace.PayoutRoyalty,
			})
		}
	}
	// truncation dust, and the whole pool when no recipients are registered
	if remainder.Sign() > 0 {
		payouts = append(payouts, marketplace.Payout{
			To:     im.treasury,
			Amount: remainder.String(),
			Reason: marketplace.PayoutPoolRemainder,
		})
	}
	if refund := new(big.Int).Sub(paid, total); refund.Sign() > 0 {
		payouts = append(payouts, marketplace.Payout{
			To:     buyer,
			Amount: refund.String(),
			Reason: marketplace.PayoutRefund,
		})
	}

	return payouts, nil
}

func refString(ref uint64) string {
	return strconv.FormatUint(ref, 10)
}

func (im *impl) payOut(c bCtx.Ctx, assetId domain.AssetId, ref uint64, payouts []marketplace.Payout) error {
	now := time.Now()
	for _, p := range payouts {
		if err := im.ledger.Payout(c, &payment.Entry{
			To:        p.To,
			Amount:    p.Amount,
			Reason:    p.Reason,
			AssetId:   assetId,
			Ref:       refString(ref),
			CreatedAt: now,
		}); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"payout": p,
			}).Error("ledger.Payout failed")
			return err
		}
	}
	return nil
}

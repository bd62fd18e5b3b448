package usecase

import (
	"fmt"
	"time"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
)

func (im *impl) UpdateFirstSaleFee(c bCtx.Ctx, caller domain.Address, cfg marketplace.FeeConfig) error {
	return im.updateFee(c, caller, marketplace.FeeLabelFirstSale, cfg)
}

func (im *impl) UpdateResaleFee(c bCtx.Ctx, caller domain.Address, cfg marketplace.FeeConfig) error {
	return im.updateFee(c, caller, marketplace.FeeLabelResale, cfg)
}

func (im *impl) updateFee(c bCtx.Ctx, caller domain.Address, label string, cfg marketplace.FeeConfig) error {
	if !im.platformOwner.Equals(caller) {
		return marketplace.ErrNotPlatformOwner
	}

	cfg.Label = label
	if !cfg.Valid() {
		return marketplace.ErrInvalidPercentage
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	old, err := im.feeConfig.Get(c, label)
	if err == domain.ErrNotFound {
		old = &marketplace.FeeConfig{Label: label}
	} else if err != nil {
		return err
	}

	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.feeConfig.Upsert(c, &cfg); err != nil {
			return err
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityFeeConfigUpdated,
			Account:   caller.ToLower(),
			Label:     label,
			Old:       formatFeeConfig(old),
			New:       formatFeeConfig(&cfg),
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"cfg": cfg,
		}).Error("updateFee transaction failed")
		return err
	}
	return nil
}

func (im *impl) UpdateUnitCap(c bCtx.Ctx, caller domain.Address, cap int64) error {
	if !im.platformOwner.Equals(caller) {
		return marketplace.ErrNotPlatformOwner
	}
	if cap <= 0 {
		return marketplace.ErrInvalidUnitCap
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	var oldCap int64
	if old, err := im.feeConfig.GetPlatformConfig(c); err == nil {
		oldCap = old.MaxUnitsPerHolder
	} else if err != domain.ErrNotFound {
		return err
	}

	err := im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.feeConfig.UpsertPlatformConfig(c, &marketplace.PlatformConfig{MaxUnitsPerHolder: cap}); err != nil {
			return err
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityUnitCapUpdated,
			Account:   caller.ToLower(),
			Old:       fmt.Sprintf("%d", oldCap),
			New:       fmt.Sprintf("%d", cap),
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"cap": cap,
		}).Error("updateUnitCap transaction failed")
		return err
	}
	return nil
}

func (im *impl) GetFeeConfigs(c bCtx.Ctx) (*marketplace.FeeConfig, *marketplace.FeeConfig, *marketplace.PlatformConfig, error) {
	firstSale, err := im.feeConfig.Get(c, marketplace.FeeLabelFirstSale)
	if err == domain.ErrNotFound {
		firstSale = &marketplace.FeeConfig{Label: marketplace.FeeLabelFirstSale}
	} else if err != nil {
		return nil, nil, nil, err
	}

	resale, err := im.feeConfig.Get(c, marketplace.FeeLabelResale)
	if err == domain.ErrNotFound {
		resale = &marketplace.FeeConfig{Label: marketplace.FeeLabelResale}
	} else if err != nil {
		return nil, nil, nil, err
	}

	platform, err := im.feeConfig.GetPlatformConfig(c)
	if err == domain.ErrNotFound {
		platform = &marketplace.PlatformConfig{}
	} else if err != nil {
		return nil, nil, nil, err
	}

	return firstSale, resale, platform, nil
}

func formatFeeConfig(cfg *marketplace.FeeConfig) string {
	return fmt.Sprintf("%d/%d/%d", cfg.PlatformBps, cfg.RoyaltyPoolBps, cfg.SellerBps)
}

package usecase

import (
	"sync"
	"time"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/escrow"
	"github.com/melodex/goapi/domain/exchange"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/domain/registry"
)

type ExchangeUseCaseCfg struct {
	SlotRepo     exchange.SlotRepo
	EscrowRepo   escrow.Repo
	ActivityRepo marketplace.ActivityRepo
	CounterRepo  marketplace.CounterRepo
	Registry     registry.Registry
	Txn          domain.TxnRunner
	// Engine is the address holding escrowed units in the registry.
	Engine domain.Address
}

type impl struct {
	slot     exchange.SlotRepo
	escrow   escrow.Repo
	activity marketplace.ActivityRepo
	counter  marketplace.CounterRepo
	registry registry.Registry
	txn      domain.TxnRunner
	engine   domain.Address

	mu sync.Mutex
}

func New(cfg *ExchangeUseCaseCfg) exchange.UseCase {
	return &impl{
		slot:     cfg.SlotRepo,
		escrow:   cfg.EscrowRepo,
		activity: cfg.ActivityRepo,
		counter:  cfg.CounterRepo,
		registry: cfg.Registry,
		txn:      cfg.Txn,
		engine:   cfg.Engine.ToLower(),
	}
}

// Register fills the base side of a new slot, or the counter side of a
// BaseFilled slot, escrowing the caller's units into the engine.
func (im *impl) Register(c bCtx.Ctx, in *exchange.RegisterInput) (*exchange.Slot, error) {
	if in.Qty <= 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}

	caller := in.Caller.ToLower()

	balance, err := im.registry.BalanceOf(c, caller, in.AssetId)
	if err != nil {
		c.WithField("err", err).Error("registry.BalanceOf failed")
		return nil, err
	}
	if balance < in.Qty {
		return nil, marketplace.ErrNotTokenOwner
	}

	if approved, err := im.registry.IsApprovedForEngine(c, caller); err != nil {
		c.WithField("err", err).Error("registry.IsApprovedForEngine failed")
		return nil, err
	} else if !approved {
		return nil, marketplace.ErrMarketplaceNotApproved
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	now := time.Now()
	side := exchange.Side{
		AssetId: in.AssetId,
		Qty:     in.Qty,
		User:    caller,
	}

	var slot *exchange.Slot
	if in.ExchangeId == 0 {
		id, err := im.counter.Next(c, marketplace.CounterExchanges)
		if err != nil {
			return nil, err
		}
		slot = &exchange.Slot{
			ExchangeId: domain.ExchangeId(id),
			Base:       side,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	} else {
		existing, err := im.slot.FindOne(c, in.ExchangeId)
		if err == domain.ErrNotFound {
			return nil, exchange.ErrInvalidNftExchange
		} else if err != nil {
			return nil, err
		}

		// escrow entries are keyed (hold, ref, owner), so one address
		// cannot hold both sides of a slot
		switch {
		case !existing.Base.Filled():
			// base was cancelled; the caller takes over the base side
			if existing.Counter.User.Equals(caller) {
				return nil, exchange.ErrSelfExchange
			}
			existing.Base = side
		case !existing.Counter.Filled():
			if existing.Base.User.Equals(caller) {
				return nil, exchange.ErrSelfExchange
			}
			existing.Counter = side
		default:
			return nil, exchange.ErrInvalidNftExchange
		}
		existing.UpdatedAt = now
		slot = existing
	}

	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.slot.Upsert(c, slot); err != nil {
			return err
		}
		if err := im.escrow.Deposit(c, &escrow.Entry{
			Hold:      escrow.HoldExchange,
			Ref:       uint64(slot.ExchangeId),
			AssetId:   in.AssetId,
			Owner:     caller,
			Qty:       in.Qty,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityExchangeFilled,
			AssetId:   in.AssetId,
			Account:   caller,
			Quantity:  in.Qty,
			Ref:       uint64(slot.ExchangeId),
			CreatedAt: now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"input": in,
		}).Error("register transaction failed")
		return nil, err
	}

	if err := im.registry.Transfer(c, caller, im.engine, in.AssetId, in.Qty); err != nil {
		c.WithField("err", err).Error("registry.Transfer failed")
		return nil, err
	}

	return slot, nil
}

// Approve marks the caller's side approved; once both sides are approved the
// escrowed holdings swap atomically and the slot resets to empty.
func (im *impl) Approve(c bCtx.Ctx, caller domain.Address, id domain.ExchangeId) (*exchange.Slot, error) {
	if id == 0 {
		return nil, exchange.ErrInvalidNftExchange
	}

	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	slot, err := im.slot.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, exchange.ErrInvalidNftExchange
	} else if err != nil {
		return nil, err
	}

	if !slot.Base.Filled() {
		return nil, exchange.ErrInvalidBaseToken
	}
	if !slot.Counter.Filled() {
		return nil, exchange.ErrInvalidCounterToken
	}

	switch {
	case slot.Base.User.Equals(caller):
		slot.Base.Approved = true
	case slot.Counter.User.Equals(caller):
		slot.Counter.Approved = true
	default:
		return nil, exchange.ErrNotValidParticipant
	}

	if !slot.Base.Approved || !slot.Counter.Approved {
		slot.UpdatedAt = time.Now()
		if err := im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
			return im.slot.Upsert(c, slot)
		}); err != nil {
			c.WithField("err", err).WithField("exchangeId", id).Error("approve transaction failed")
			return nil, err
		}
		return slot, nil
	}

	return im.settle(c, slot)
}

func (im *impl) settle(c bCtx.Ctx, slot *exchange.Slot) (*exchange.Slot, error) {
	id := uint64(slot.ExchangeId)
	now := time.Now()

	err := im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.escrow.Release(c, escrow.HoldExchange, id, slot.Base.User); err != nil {
			return err
		}
		if err := im.escrow.Release(c, escrow.HoldExchange, id, slot.Counter.User); err != nil {
			return err
		}
		if err := im.slot.Remove(c, slot.ExchangeId); err != nil {
			return err
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityExchangeSettled,
			AssetId:   slot.Base.AssetId,
			Account:   slot.Base.User,
			Other:     slot.Counter.User,
			Ref:       id,
			CreatedAt: now,
		})
	})
	if err != nil {
		c.WithField("err", err).WithField("exchangeId", id).Error("settle transaction failed")
		return nil, err
	}

	// swap escrowed holdings: base escrow to counter user, counter escrow
	// to base user
	if err := im.registry.Transfer(c, im.engine, slot.Counter.User, slot.Base.AssetId, slot.Base.Qty); err != nil {
		c.WithField("err", err).Error("registry.Transfer failed")
		return nil, err
	}
	if err := im.registry.Transfer(c, im.engine, slot.Base.User, slot.Counter.AssetId, slot.Counter.Qty); err != nil {
		c.WithField("err", err).Error("registry.Transfer failed")
		return nil, err
	}

	return &exchange.Slot{ExchangeId: slot.ExchangeId, CreatedAt: slot.CreatedAt, UpdatedAt: now}, nil
}

// Cancel refunds the caller's escrow and clears only the caller's side. A
// base cancel also voids the counter side's pending approval.
func (im *impl) Cancel(c bCtx.Ctx, caller domain.Address, id domain.ExchangeId) error {
	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	slot, err := im.slot.FindOne(c, id)
	if err == domain.ErrNotFound {
		return exchange.ErrInvalidNftExchange
	} else if err != nil {
		return err
	}

	var cancelled exchange.Side
	switch {
	case slot.Base.Filled() && slot.Base.User.Equals(caller):
		cancelled = slot.Base
		slot.Base = exchange.Side{}
		slot.Counter.Approved = false
	case slot.Counter.Filled() && slot.Counter.User.Equals(caller):
		cancelled = slot.Counter
		slot.Counter = exchange.Side{}
	default:
		return exchange.ErrNotValidParticipant
	}

	now := time.Now()
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.escrow.Release(c, escrow.HoldExchange, uint64(id), caller); err != nil {
			return err
		}
		if !slot.Base.Filled() && !slot.Counter.Filled() {
			if err := im.slot.Remove(c, id); err != nil {
				return err
			}
		} else {
			slot.UpdatedAt = now
			if err := im.slot.Upsert(c, slot); err != nil {
				return err
			}
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityExchangeCancelled,
			AssetId:   cancelled.AssetId,
			Account:   caller,
			Quantity:  cancelled.Qty,
			Ref:       uint64(id),
			CreatedAt: now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"exchangeId": id,
		}).Error("cancel transaction failed")
		return err
	}

	if err := im.registry.Transfer(c, im.engine, caller, cancelled.AssetId, cancelled.Qty); err != nil {
		c.WithField("err", err).Error("registry.Transfer failed")
		return err
	}
	return nil
}

func (im *impl) Get(c bCtx.Ctx, id domain.ExchangeId) (*exchange.Slot, error) {
	slot, err := im.slot.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, exchange.ErrInvalidNftExchange
	} else if err != nil {
		return nil, err
	}
	return slot, nil
}

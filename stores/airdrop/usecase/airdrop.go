package usecase

import (
	"sync"
	"time"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/airdrop"
	"github.com/melodex/goapi/domain/escrow"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/domain/registry"
)

type AirdropUseCaseCfg struct {
	AirdropRepo  airdrop.Repo
	ClaimRepo    airdrop.ClaimRepo
	EscrowRepo   escrow.Repo
	ActivityRepo marketplace.ActivityRepo
	CounterRepo  marketplace.CounterRepo
	Registry     registry.Registry
	Txn          domain.TxnRunner
	// Engine is the address holding escrowed units in the registry.
	Engine domain.Address
}

type impl struct {
	airdrop  airdrop.Repo
	claim    airdrop.ClaimRepo
	escrow   escrow.Repo
	activity marketplace.ActivityRepo
	counter  marketplace.CounterRepo
	registry registry.Registry
	txn      domain.TxnRunner
	engine   domain.Address

	mu sync.Mutex
}

func New(cfg *AirdropUseCaseCfg) airdrop.UseCase {
	return &impl{
		airdrop:  cfg.AirdropRepo,
		claim:    cfg.ClaimRepo,
		escrow:   cfg.EscrowRepo,
		activity: cfg.ActivityRepo,
		counter:  cfg.CounterRepo,
		registry: cfg.Registry,
		txn:      cfg.Txn,
		engine:   cfg.Engine.ToLower(),
	}
}

// Register escrows qty units from the asset's owner of record into a new
// airdrop pool.
func (im *impl) Register(c bCtx.Ctx, in *airdrop.RegisterInput) (*airdrop.Airdrop, error) {
	if in.Qty <= 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}

	owner := in.Owner.ToLower()

	assetOwner, err := im.registry.OwnerOf(c, in.AssetId)
	if err != nil {
		c.WithField("err", err).Error("registry.OwnerOf failed")
		return nil, err
	}
	if !assetOwner.Equals(owner) {
		return nil, marketplace.ErrNotTokenOwner
	}

	if approved, err := im.registry.IsApprovedForEngine(c, owner); err != nil {
		c.WithField("err", err).Error("registry.IsApprovedForEngine failed")
		return nil, err
	} else if !approved {
		return nil, marketplace.ErrMarketplaceNotApproved
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	var created *airdrop.Airdrop
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		var err error
		created, err = im.writeRegister(c, in)
		return err
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"input": in,
		}).Error("register transaction failed")
		return nil, err
	}

	if err := im.registry.Transfer(c, owner, im.engine, in.AssetId, in.Qty); err != nil {
		c.WithField("err", err).Error("registry.Transfer failed")
		return nil, err
	}

	return created, nil
}

// RegisterInTxn writes the airdrop, escrow, and activity records through the
// caller's transaction context. The caller vets ownership and approval up
// front and moves the units into the engine after its transaction commits.
func (im *impl) RegisterInTxn(c bCtx.Ctx, in *airdrop.RegisterInput) (*airdrop.Airdrop, error) {
	if in.Qty <= 0 {
		return nil, marketplace.ErrInvalidZeroParams
	}
	return im.writeRegister(c, in)
}

func (im *impl) writeRegister(c bCtx.Ctx, in *airdrop.RegisterInput) (*airdrop.Airdrop, error) {
	owner := in.Owner.ToLower()

	id := uint64(in.ReuseId)
	if id == 0 {
		var err error
		if id, err = im.counter.Next(c, marketplace.CounterAirdrops); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	created := &airdrop.Airdrop{
		AirdropId:    domain.AirdropId(id),
		Owner:        owner,
		AssetId:      in.AssetId,
		TotalQty:     in.Qty,
		RemainingQty: in.Qty,
		CreatedAt:    now,
	}
	if err := im.airdrop.Create(c, created); err != nil {
		return nil, err
	}
	if err := im.escrow.Deposit(c, &escrow.Entry{
		Hold:      escrow.HoldAirdrop,
		Ref:       id,
		AssetId:   in.AssetId,
		Owner:     owner,
		Qty:       in.Qty,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}
	if err := im.activity.Insert(c, &marketplace.Activity{
		Type:      marketplace.ActivityAirdropRegistered,
		AssetId:   in.AssetId,
		Account:   owner,
		Quantity:  in.Qty,
		Ref:       id,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// Claim hands exactly one escrowed unit to the caller, once per address.
func (im *impl) Claim(c bCtx.Ctx, claimer domain.Address, id domain.AirdropId) (*airdrop.Airdrop, error) {
	claimer = claimer.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	a, err := im.airdrop.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, airdrop.ErrInvalidAirdrop
	} else if err != nil {
		return nil, err
	}
	if a.RemainingQty <= 0 {
		return nil, airdrop.ErrInvalidAirdrop
	}

	if claimed, err := im.claim.Has(c, id, claimer); err != nil {
		return nil, err
	} else if claimed {
		return nil, airdrop.ErrAlreadyClaimed
	}

	now := time.Now()
	err = im.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.claim.Insert(c, &airdrop.Claim{
			AirdropId: id,
			Claimer:   claimer,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		if err := im.airdrop.AdjustRemaining(c, id, -1); err != nil {
			return err
		}
		if err := im.escrow.Adjust(c, escrow.HoldAirdrop, uint64(id), a.Owner, -1); err != nil {
			return err
		}
		return im.activity.Insert(c, &marketplace.Activity{
			Type:      marketplace.ActivityAirdropClaimed,
			AssetId:   a.AssetId,
			Account:   claimer,
			Other:     a.Owner,
			Quantity:  1,
			Ref:       uint64(id),
			CreatedAt: now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"airdropId": id,
		}).Error("claim transaction failed")
		return nil, err
	}

	if err := im.registry.Transfer(c, im.engine, claimer, a.AssetId, 1); err != nil {
		c.WithField("err", err).Error("registry.Transfer failed")
		return nil, err
	}

	a.RemainingQty--
	return a, nil
}

func (im *impl) Get(c bCtx.Ctx, id domain.AirdropId) (*airdrop.Airdrop, error) {
	a, err := im.airdrop.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, airdrop.ErrInvalidAirdrop
	} else if err != nil {
		return nil, err
	}
	return a, nil
}

func (im *impl) FindAll(c bCtx.Ctx, optFns ...airdrop.FindAllOptionsFunc) ([]airdrop.Airdrop, error) {
	return im.airdrop.FindAll(c, optFns...)
}

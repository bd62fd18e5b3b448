package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/escrow"
	mEscrow "github.com/melodex/goapi/domain/escrow/mocks"
	"github.com/melodex/goapi/domain/exchange"
	mExchange "github.com/melodex/goapi/domain/exchange/mocks"
	"github.com/melodex/goapi/domain/marketplace"
	mMarketplace "github.com/melodex/goapi/domain/marketplace/mocks"
	mDomain "github.com/melodex/goapi/domain/mocks"
	mRegistry "github.com/melodex/goapi/domain/registry/mocks"
)

var (
	alice  = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bob    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	engine = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
)

type exchangeSuite struct {
	suite.Suite

	slot     *mExchange.SlotRepo
	escrow   *mEscrow.Repo
	activity *mMarketplace.ActivityRepo
	counter  *mMarketplace.CounterRepo
	registry *mRegistry.Registry
	txn      *mDomain.TxnRunner

	im exchange.UseCase
}

func TestExchangeSuite(t *testing.T) {
	suite.Run(t, new(exchangeSuite))
}

func (s *exchangeSuite) SetupTest() {
	s.slot = &mExchange.SlotRepo{}
	s.escrow = &mEscrow.Repo{}
	s.activity = &mMarketplace.ActivityRepo{}
	s.counter = &mMarketplace.CounterRepo{}
	s.registry = &mRegistry.Registry{}
	s.txn = &mDomain.TxnRunner{}

	s.txn.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) },
	)

	s.im = New(&ExchangeUseCaseCfg{
		SlotRepo:     s.slot,
		EscrowRepo:   s.escrow,
		ActivityRepo: s.activity,
		CounterRepo:  s.counter,
		Registry:     s.registry,
		Txn:          s.txn,
		Engine:       engine,
	})
}

func (s *exchangeSuite) expectEscrowIn(caller domain.Address, assetId domain.AssetId, qty int64) {
	s.escrow.On("Deposit", mock.Anything, mock.MatchedBy(func(e *escrow.Entry) bool {
		return e.Hold == escrow.HoldExchange && e.Owner == caller && e.AssetId == assetId && e.Qty == qty
	})).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, caller, engine, assetId, qty).Return(nil)
}

func (s *exchangeSuite) TestRegisterOpensBaseSide() {
	ctx := bCtx.Background()

	s.registry.On("BalanceOf", mock.Anything, alice, domain.AssetId(1)).Return(int64(10), nil)
	s.registry.On("IsApprovedForEngine", mock.Anything, alice).Return(true, nil)
	s.counter.On("Next", mock.Anything, marketplace.CounterExchanges).Return(uint64(9), nil)
	s.slot.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	s.expectEscrowIn(alice, 1, 4)

	res, err := s.im.Register(ctx, &exchange.RegisterInput{Caller: alice, AssetId: 1, Qty: 4})
	s.NoError(err)
	s.Equal(domain.ExchangeId(9), res.ExchangeId)
	s.Equal(alice, res.Base.User)
	s.False(res.Counter.Filled())
	s.registry.AssertExpectations(s.T())
}

func (s *exchangeSuite) TestRegisterFillsCounterSide() {
	ctx := bCtx.Background()

	s.registry.On("BalanceOf", mock.Anything, bob, domain.AssetId(2)).Return(int64(5), nil)
	s.registry.On("IsApprovedForEngine", mock.Anything, bob).Return(true, nil)
	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
	}, nil)
	s.slot.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	s.expectEscrowIn(bob, 2, 5)

	res, err := s.im.Register(ctx, &exchange.RegisterInput{Caller: bob, AssetId: 2, Qty: 5, ExchangeId: 9})
	s.NoError(err)
	s.Equal(bob, res.Counter.User)
	s.Equal(alice, res.Base.User)
}

func (s *exchangeSuite) TestRegisterRetakesCancelledBase() {
	ctx := bCtx.Background()

	s.registry.On("BalanceOf", mock.Anything, bob, domain.AssetId(3)).Return(int64(5), nil)
	s.registry.On("IsApprovedForEngine", mock.Anything, bob).Return(true, nil)
	// base side was cancelled earlier, the counter side stayed
	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: alice},
	}, nil)
	s.slot.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	s.expectEscrowIn(bob, 3, 2)

	res, err := s.im.Register(ctx, &exchange.RegisterInput{Caller: bob, AssetId: 3, Qty: 2, ExchangeId: 9})
	s.NoError(err)
	s.Equal(bob, res.Base.User)
	s.Equal(alice, res.Counter.User)
}

func (s *exchangeSuite) TestRegisterRejections() {
	ctx := bCtx.Background()

	_, err := s.im.Register(ctx, &exchange.RegisterInput{Caller: alice, AssetId: 1, Qty: 0})
	s.ErrorIs(err, marketplace.ErrInvalidZeroParams)

	s.registry.On("BalanceOf", mock.Anything, alice, domain.AssetId(1)).Return(int64(3), nil)
	_, err = s.im.Register(ctx, &exchange.RegisterInput{Caller: alice, AssetId: 1, Qty: 4})
	s.ErrorIs(err, marketplace.ErrNotTokenOwner)

	s.registry.On("BalanceOf", mock.Anything, bob, domain.AssetId(1)).Return(int64(10), nil)
	s.registry.On("IsApprovedForEngine", mock.Anything, bob).Return(true, nil)
	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(404)).Return(nil, domain.ErrNotFound)
	_, err = s.im.Register(ctx, &exchange.RegisterInput{Caller: bob, AssetId: 1, Qty: 4, ExchangeId: 404})
	s.ErrorIs(err, exchange.ErrInvalidNftExchange)

	// both sides already filled
	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: bob},
	}, nil)
	_, err = s.im.Register(ctx, &exchange.RegisterInput{Caller: bob, AssetId: 1, Qty: 4, ExchangeId: 9})
	s.ErrorIs(err, exchange.ErrInvalidNftExchange)
}

func (s *exchangeSuite) TestRegisterRejectsSelfFill() {
	ctx := bCtx.Background()

	s.registry.On("BalanceOf", mock.Anything, alice, mock.Anything).Return(int64(10), nil)
	s.registry.On("IsApprovedForEngine", mock.Anything, alice).Return(true, nil)

	// alice opened the base side; she cannot take the counter too
	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
	}, nil)
	_, err := s.im.Register(ctx, &exchange.RegisterInput{Caller: alice, AssetId: 2, Qty: 5, ExchangeId: 9})
	s.ErrorIs(err, exchange.ErrSelfExchange)

	// nor retake a cancelled base while still holding the counter
	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(10)).Return(&exchange.Slot{
		ExchangeId: 10,
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: alice},
	}, nil)
	_, err = s.im.Register(ctx, &exchange.RegisterInput{Caller: alice, AssetId: 3, Qty: 2, ExchangeId: 10})
	s.ErrorIs(err, exchange.ErrSelfExchange)
	s.escrow.AssertNotCalled(s.T(), "Deposit", mock.Anything, mock.Anything)
}

func (s *exchangeSuite) TestApprovePreconditions() {
	ctx := bCtx.Background()

	_, err := s.im.Approve(ctx, alice, 0)
	s.ErrorIs(err, exchange.ErrInvalidNftExchange)

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(1)).Return(&exchange.Slot{
		ExchangeId: 1,
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: bob},
	}, nil)
	_, err = s.im.Approve(ctx, bob, 1)
	s.ErrorIs(err, exchange.ErrInvalidBaseToken)

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(2)).Return(&exchange.Slot{
		ExchangeId: 2,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
	}, nil)
	_, err = s.im.Approve(ctx, alice, 2)
	s.ErrorIs(err, exchange.ErrInvalidCounterToken)

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(3)).Return(&exchange.Slot{
		ExchangeId: 3,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: bob},
	}, nil)
	_, err = s.im.Approve(ctx, engine, 3)
	s.ErrorIs(err, exchange.ErrNotValidParticipant)
}

func (s *exchangeSuite) TestApproveOneSideOnly() {
	ctx := bCtx.Background()

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: bob},
	}, nil)
	s.slot.On("Upsert", mock.Anything, mock.MatchedBy(func(sl *exchange.Slot) bool {
		return sl.Base.Approved && !sl.Counter.Approved
	})).Return(nil)

	res, err := s.im.Approve(ctx, alice, 9)
	s.NoError(err)
	s.True(res.Base.Approved)
	s.False(res.Counter.Approved)
	s.Empty(s.registry.Calls)
}

func (s *exchangeSuite) TestApproveBothSidesSettles() {
	ctx := bCtx.Background()

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice, Approved: true},
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: bob},
	}, nil)
	s.escrow.On("Release", mock.Anything, escrow.HoldExchange, uint64(9), alice).Return(nil)
	s.escrow.On("Release", mock.Anything, escrow.HoldExchange, uint64(9), bob).Return(nil)
	s.slot.On("Remove", mock.Anything, domain.ExchangeId(9)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	// base escrow to the counter user and vice versa
	s.registry.On("Transfer", mock.Anything, engine, bob, domain.AssetId(1), int64(4)).Return(nil)
	s.registry.On("Transfer", mock.Anything, engine, alice, domain.AssetId(2), int64(5)).Return(nil)

	res, err := s.im.Approve(ctx, bob, 9)
	s.NoError(err)
	s.Equal(domain.ExchangeId(9), res.ExchangeId)
	s.False(res.Base.Filled())
	s.False(res.Counter.Filled())
	s.registry.AssertExpectations(s.T())
	s.escrow.AssertExpectations(s.T())
}

func (s *exchangeSuite) TestCancelBaseVoidsCounterApproval() {
	ctx := bCtx.Background()

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: bob, Approved: true},
	}, nil)
	s.escrow.On("Release", mock.Anything, escrow.HoldExchange, uint64(9), alice).Return(nil)
	s.slot.On("Upsert", mock.Anything, mock.MatchedBy(func(sl *exchange.Slot) bool {
		return !sl.Base.Filled() && sl.Counter.Filled() && !sl.Counter.Approved
	})).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, engine, alice, domain.AssetId(1), int64(4)).Return(nil)

	s.NoError(s.im.Cancel(ctx, alice, 9))
	s.slot.AssertExpectations(s.T())
	s.registry.AssertExpectations(s.T())
}

func (s *exchangeSuite) TestCancelLastSideRemovesSlot() {
	ctx := bCtx.Background()

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Counter:    exchange.Side{AssetId: 2, Qty: 5, User: bob},
	}, nil)
	s.escrow.On("Release", mock.Anything, escrow.HoldExchange, uint64(9), bob).Return(nil)
	s.slot.On("Remove", mock.Anything, domain.ExchangeId(9)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, engine, bob, domain.AssetId(2), int64(5)).Return(nil)

	s.NoError(s.im.Cancel(ctx, bob, 9))
	s.slot.AssertExpectations(s.T())
}

func (s *exchangeSuite) TestCancelByNonParticipant() {
	ctx := bCtx.Background()

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{
		ExchangeId: 9,
		Base:       exchange.Side{AssetId: 1, Qty: 4, User: alice},
	}, nil)

	s.ErrorIs(s.im.Cancel(ctx, bob, 9), exchange.ErrNotValidParticipant)
}

func (s *exchangeSuite) TestGet() {
	ctx := bCtx.Background()

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(404)).Return(nil, domain.ErrNotFound)
	_, err := s.im.Get(ctx, 404)
	s.ErrorIs(err, exchange.ErrInvalidNftExchange)

	s.slot.On("FindOne", mock.Anything, domain.ExchangeId(9)).Return(&exchange.Slot{ExchangeId: 9}, nil)
	res, err := s.im.Get(ctx, 9)
	s.NoError(err)
	s.Equal(domain.ExchangeId(9), res.ExchangeId)
}

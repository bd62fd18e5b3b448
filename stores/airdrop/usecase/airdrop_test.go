package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/airdrop"
	mAirdrop "github.com/melodex/goapi/domain/airdrop/mocks"
	"github.com/melodex/goapi/domain/escrow"
	mEscrow "github.com/melodex/goapi/domain/escrow/mocks"
	"github.com/melodex/goapi/domain/marketplace"
	mMarketplace "github.com/melodex/goapi/domain/marketplace/mocks"
	mDomain "github.com/melodex/goapi/domain/mocks"
	mRegistry "github.com/melodex/goapi/domain/registry/mocks"
)

var (
	owner   = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	claimer = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	engine  = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
)

type airdropSuite struct {
	suite.Suite

	airdrop  *mAirdrop.Repo
	claim    *mAirdrop.ClaimRepo
	escrow   *mEscrow.Repo
	activity *mMarketplace.ActivityRepo
	counter  *mMarketplace.CounterRepo
	registry *mRegistry.Registry
	txn      *mDomain.TxnRunner

	im airdrop.UseCase
}

func TestAirdropSuite(t *testing.T) {
	suite.Run(t, new(airdropSuite))
}

func (s *airdropSuite) SetupTest() {
	s.airdrop = &mAirdrop.Repo{}
	s.claim = &mAirdrop.ClaimRepo{}
	s.escrow = &mEscrow.Repo{}
	s.activity = &mMarketplace.ActivityRepo{}
	s.counter = &mMarketplace.CounterRepo{}
	s.registry = &mRegistry.Registry{}
	s.txn = &mDomain.TxnRunner{}

	s.txn.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) },
	)

	s.im = New(&AirdropUseCaseCfg{
		AirdropRepo:  s.airdrop,
		ClaimRepo:    s.claim,
		EscrowRepo:   s.escrow,
		ActivityRepo: s.activity,
		CounterRepo:  s.counter,
		Registry:     s.registry,
		Txn:          s.txn,
		Engine:       engine,
	})
}

func (s *airdropSuite) TestRegister() {
	ctx := bCtx.Background()

	s.registry.On("OwnerOf", mock.Anything, domain.AssetId(1)).Return(owner, nil)
	s.registry.On("IsApprovedForEngine", mock.Anything, owner).Return(true, nil)
	s.counter.On("Next", mock.Anything, marketplace.CounterAirdrops).Return(uint64(3), nil)
	s.airdrop.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.escrow.On("Deposit", mock.Anything, mock.MatchedBy(func(e *escrow.Entry) bool {
		return e.Hold == escrow.HoldAirdrop && e.Ref == 3 && e.Owner == owner && e.Qty == 5
	})).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, owner, engine, domain.AssetId(1), int64(5)).Return(nil)

	res, err := s.im.Register(ctx, &airdrop.RegisterInput{Owner: owner, AssetId: 1, Qty: 5})
	s.NoError(err)
	s.Equal(domain.AirdropId(3), res.AirdropId)
	s.Equal(int64(5), res.TotalQty)
	s.Equal(int64(5), res.RemainingQty)
	s.registry.AssertExpectations(s.T())
	s.escrow.AssertExpectations(s.T())
}

func (s *airdropSuite) TestRegisterReusesPreallocatedId() {
	ctx := bCtx.Background()

	s.registry.On("OwnerOf", mock.Anything, domain.AssetId(1)).Return(owner, nil)
	s.registry.On("IsApprovedForEngine", mock.Anything, owner).Return(true, nil)
	s.airdrop.On("Create", mock.Anything, mock.MatchedBy(func(a *airdrop.Airdrop) bool {
		return a.AirdropId == domain.AirdropId(42)
	})).Return(nil)
	s.escrow.On("Deposit", mock.Anything, mock.Anything).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, owner, engine, domain.AssetId(1), int64(5)).Return(nil)

	_, err := s.im.Register(ctx, &airdrop.RegisterInput{Owner: owner, AssetId: 1, Qty: 5, ReuseId: 42})
	s.NoError(err)
	s.Empty(s.counter.Calls)
}

func (s *airdropSuite) TestRegisterInTxn() {
	ctx := bCtx.Background()

	s.counter.On("Next", mock.Anything, marketplace.CounterAirdrops).Return(uint64(4), nil)
	s.airdrop.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.escrow.On("Deposit", mock.Anything, mock.Anything).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)

	res, err := s.im.RegisterInTxn(ctx, &airdrop.RegisterInput{Owner: owner, AssetId: 1, Qty: 5})
	s.NoError(err)
	s.Equal(domain.AirdropId(4), res.AirdropId)
	// no session of its own and no chain leg; both belong to the caller
	s.Empty(s.txn.Calls)
	s.registry.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *airdropSuite) TestRegisterRejections() {
	ctx := bCtx.Background()

	_, err := s.im.Register(ctx, &airdrop.RegisterInput{Owner: owner, AssetId: 1, Qty: 0})
	s.ErrorIs(err, marketplace.ErrInvalidZeroParams)

	s.registry.On("OwnerOf", mock.Anything, domain.AssetId(1)).Return(owner, nil)
	_, err = s.im.Register(ctx, &airdrop.RegisterInput{Owner: claimer, AssetId: 1, Qty: 5})
	s.ErrorIs(err, marketplace.ErrNotTokenOwner)

	s.registry.On("IsApprovedForEngine", mock.Anything, owner).Return(false, nil)
	_, err = s.im.Register(ctx, &airdrop.RegisterInput{Owner: owner, AssetId: 1, Qty: 5})
	s.ErrorIs(err, marketplace.ErrMarketplaceNotApproved)
}

func (s *airdropSuite) TestClaim() {
	ctx := bCtx.Background()

	s.airdrop.On("FindOne", mock.Anything, domain.AirdropId(3)).Return(&airdrop.Airdrop{
		AirdropId:    3,
		Owner:        owner,
		AssetId:      1,
		TotalQty:     5,
		RemainingQty: 2,
	}, nil)
	s.claim.On("Has", mock.Anything, domain.AirdropId(3), claimer).Return(false, nil)
	s.claim.On("Insert", mock.Anything, mock.MatchedBy(func(cl *airdrop.Claim) bool {
		return cl.AirdropId == domain.AirdropId(3) && cl.Claimer == claimer
	})).Return(nil)
	s.airdrop.On("AdjustRemaining", mock.Anything, domain.AirdropId(3), int64(-1)).Return(nil)
	s.escrow.On("Adjust", mock.Anything, escrow.HoldAirdrop, uint64(3), owner, int64(-1)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, engine, claimer, domain.AssetId(1), int64(1)).Return(nil)

	res, err := s.im.Claim(ctx, claimer, 3)
	s.NoError(err)
	s.Equal(int64(1), res.RemainingQty)
	s.escrow.AssertExpectations(s.T())
	s.registry.AssertExpectations(s.T())
}

func (s *airdropSuite) TestClaimOncePerAddress() {
	ctx := bCtx.Background()

	s.airdrop.On("FindOne", mock.Anything, domain.AirdropId(3)).Return(&airdrop.Airdrop{
		AirdropId:    3,
		Owner:        owner,
		AssetId:      1,
		TotalQty:     5,
		RemainingQty: 2,
	}, nil)
	s.claim.On("Has", mock.Anything, domain.AirdropId(3), claimer).Return(true, nil)

	_, err := s.im.Claim(ctx, claimer, 3)
	s.ErrorIs(err, airdrop.ErrAlreadyClaimed)
}

func (s *airdropSuite) TestClaimExhausted() {
	ctx := bCtx.Background()

	s.airdrop.On("FindOne", mock.Anything, domain.AirdropId(3)).Return(&airdrop.Airdrop{
		AirdropId:    3,
		Owner:        owner,
		AssetId:      1,
		TotalQty:     5,
		RemainingQty: 0,
	}, nil)

	_, err := s.im.Claim(ctx, claimer, 3)
	s.ErrorIs(err, airdrop.ErrInvalidAirdrop)

	s.airdrop.On("FindOne", mock.Anything, domain.AirdropId(404)).Return(nil, domain.ErrNotFound)
	_, err = s.im.Claim(ctx, claimer, 404)
	s.ErrorIs(err, airdrop.ErrInvalidAirdrop)
}

func (s *airdropSuite) TestGet() {
	ctx := bCtx.Background()

	s.airdrop.On("FindOne", mock.Anything, domain.AirdropId(404)).Return(nil, domain.ErrNotFound)
	_, err := s.im.Get(ctx, 404)
	s.ErrorIs(err, airdrop.ErrInvalidAirdrop)

	s.airdrop.On("FindOne", mock.Anything, domain.AirdropId(3)).Return(&airdrop.Airdrop{AirdropId: 3}, nil)
	res, err := s.im.Get(ctx, 3)
	s.NoError(err)
	s.Equal(domain.AirdropId(3), res.AirdropId)
}

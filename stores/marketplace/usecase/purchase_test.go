package usecase

import (
	"math/big"

	"github.com/stretchr/testify/mock"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/domain/payment"
)

var (
	royaltyA = domain.Address("0x54a769173d97432a48371b022709117c090298e3")
	royaltyB = domain.Address("0x2e9e733cb0394aace1226e34313f12b0764be65a")
)

func (s *marketplaceSuite) givenListing(l *marketplace.Listing) {
	s.listing.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
}

func (s *marketplaceSuite) givenNoUnitCap() {
	s.feeConfig.On("GetPlatformConfig", mock.Anything).Return(nil, domain.ErrNotFound)
}

func sumEntries(entries []payment.Entry) *big.Int {
	sum := big.NewInt(0)
	for _, e := range entries {
		v, _ := new(big.Int).SetString(e.Amount, 10)
		sum.Add(sum, v)
	}
	return sum
}

func entryAmount(entries []payment.Entry, to domain.Address, reason string) string {
	for _, e := range entries {
		if e.To == to && e.Reason == reason {
			return e.Amount
		}
	}
	return ""
}

func (s *marketplaceSuite) TestPurchaseFirstSaleSplit() {
	ctx := bCtx.Background()

	s.givenListing(&marketplace.Listing{
		ListingId:      7,
		AssetId:        1,
		Seller:         seller,
		UnitPrice:      "1000",
		UnitsRemaining: 10,
	})
	s.givenNoUnitCap()
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(false, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelFirstSale).Return(&marketplace.FeeConfig{
		PlatformBps:    1000,
		RoyaltyPoolBps: 1000,
		SellerBps:      8000,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return([]marketplace.RoyaltyShare{
		{Recipient: royaltyA, Bps: 9000},
		{Recipient: royaltyB, Bps: 1000},
	}, nil)
	s.listing.On("Remove", mock.Anything, domain.ListingId(7)).Return(nil)
	s.saleState.On("MarkSold", mock.Anything, domain.AssetId(1)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(1), buyer, int64(10)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(10)).Return(nil)
	entries := s.capturePayouts()

	res, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{
		Buyer:     buyer,
		ListingId: 7,
		Quantity:  10,
		Paid:      "10000",
	})
	s.NoError(err)
	s.True(res.FirstSale)
	s.Equal("10000", res.Total)

	// 10%/10%/80 split with a 90/10 royalty table over the pool
	s.Equal("1000", entryAmount(*entries, treasury, marketplace.PayoutPlatformFee))
	s.Equal("8000", entryAmount(*entries, seller, marketplace.PayoutSellerShare))
	s.Equal("900", entryAmount(*entries, royaltyA, marketplace.PayoutRoyalty))
	s.Equal("100", entryAmount(*entries, royaltyB, marketplace.PayoutRoyalty))
	s.Equal(int64(10000), sumEntries(*entries).Int64())

	s.registry.AssertExpectations(s.T())
	s.saleState.AssertCalled(s.T(), "MarkSold", mock.Anything, domain.AssetId(1))
	s.listing.AssertCalled(s.T(), "Remove", mock.Anything, domain.ListingId(7))
}

func (s *marketplaceSuite) TestPurchaseRoyaltyHeavySplit() {
	ctx := bCtx.Background()
	royaltyC := domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")

	s.givenListing(&marketplace.Listing{
		ListingId:      8,
		AssetId:        2,
		Seller:         seller,
		UnitPrice:      "10000",
		UnitsRemaining: 1,
	})
	s.givenNoUnitCap()
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(2)).Return(false, nil)
	// whole post-platform amount flows through the royalty pool
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelFirstSale).Return(&marketplace.FeeConfig{
		PlatformBps:    1000,
		RoyaltyPoolBps: 9000,
		SellerBps:      0,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(2)).Return([]marketplace.RoyaltyShare{
		{Recipient: seller, Bps: 8000},
		{Recipient: royaltyA, Bps: 1000},
		{Recipient: royaltyC, Bps: 1000},
	}, nil)
	s.listing.On("Remove", mock.Anything, domain.ListingId(8)).Return(nil)
	s.saleState.On("MarkSold", mock.Anything, domain.AssetId(2)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(2), buyer, int64(1)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(2), int64(1)).Return(nil)
	entries := s.capturePayouts()

	_, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{
		Buyer:     buyer,
		ListingId: 8,
		Quantity:  1,
		Paid:      "10000",
	})
	s.NoError(err)
	s.Equal("1000", entryAmount(*entries, treasury, marketplace.PayoutPlatformFee))
	s.Equal("7200", entryAmount(*entries, seller, marketplace.PayoutRoyalty))
	s.Equal("900", entryAmount(*entries, royaltyA, marketplace.PayoutRoyalty))
	s.Equal("900", entryAmount(*entries, royaltyC, marketplace.PayoutRoyalty))
	s.Equal(int64(10000), sumEntries(*entries).Int64())
}

func (s *marketplaceSuite) TestPurchasePartialKeepsListing() {
	ctx := bCtx.Background()

	s.givenListing(&marketplace.Listing{
		ListingId:      7,
		AssetId:        1,
		Seller:         seller,
		UnitPrice:      "1000",
		UnitsRemaining: 10,
	})
	s.givenNoUnitCap()
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(false, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelFirstSale).Return(&marketplace.FeeConfig{
		PlatformBps: 1000,
		SellerBps:   9000,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return(nil, nil)
	s.listing.On("Patch", mock.Anything, domain.ListingId(7), mock.MatchedBy(func(p marketplace.ListingPatchable) bool {
		return *p.UnitsRemaining == 6
	})).Return(nil)
	s.saleState.On("MarkSold", mock.Anything, domain.AssetId(1)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(1), buyer, int64(4)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(4)).Return(nil)
	s.capturePayouts()

	_, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{
		Buyer:     buyer,
		ListingId: 7,
		Quantity:  4,
		Paid:      "4000",
	})
	s.NoError(err)
	s.listing.AssertNotCalled(s.T(), "Remove", mock.Anything, domain.ListingId(7))
}

func (s *marketplaceSuite) TestPurchaseResaleUsesResaleFee() {
	ctx := bCtx.Background()

	s.givenListing(&marketplace.Listing{
		ListingId:      7,
		AssetId:        1,
		Seller:         seller,
		UnitPrice:      "1000",
		UnitsRemaining: 1,
	})
	s.givenNoUnitCap()
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(true, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelResale).Return(&marketplace.FeeConfig{
		PlatformBps: 500,
		SellerBps:   9500,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return(nil, nil)
	s.listing.On("Remove", mock.Anything, domain.ListingId(7)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(1), buyer, int64(1)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(1)).Return(nil)
	s.capturePayouts()

	res, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{
		Buyer:     buyer,
		ListingId: 7,
		Quantity:  1,
		Paid:      "1000",
	})
	s.NoError(err)
	s.False(res.FirstSale)
	// an asset already sold once is never marked again
	s.saleState.AssertNotCalled(s.T(), "MarkSold", mock.Anything, domain.AssetId(1))
}

func (s *marketplaceSuite) TestPurchaseRefundAndPoolRemainder() {
	ctx := bCtx.Background()

	s.givenListing(&marketplace.Listing{
		ListingId:      7,
		AssetId:        1,
		Seller:         seller,
		UnitPrice:      "33",
		UnitsRemaining: 10,
	})
	s.givenNoUnitCap()
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(false, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelFirstSale).Return(&marketplace.FeeConfig{
		PlatformBps:    1000,
		RoyaltyPoolBps: 1000,
		SellerBps:      8000,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return(nil, nil)
	s.listing.On("Patch", mock.Anything, domain.ListingId(7), mock.Anything).Return(nil)
	s.saleState.On("MarkSold", mock.Anything, domain.AssetId(1)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(1), buyer, int64(3)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(3)).Return(nil)
	entries := s.capturePayouts()

	// total 99, paid 150: 9 platform, 79 seller, pool 11 with no recipients,
	// 51 back to the buyer
	_, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{
		Buyer:     buyer,
		ListingId: 7,
		Quantity:  3,
		Paid:      "150",
	})
	s.NoError(err)
	s.Equal("9", entryAmount(*entries, treasury, marketplace.PayoutPlatformFee))
	s.Equal("79", entryAmount(*entries, seller, marketplace.PayoutSellerShare))
	s.Equal("11", entryAmount(*entries, treasury, marketplace.PayoutPoolRemainder))
	s.Equal("51", entryAmount(*entries, buyer, marketplace.PayoutRefund))
	s.Equal(int64(150), sumEntries(*entries).Int64())
}

func (s *marketplaceSuite) TestPurchaseValidation() {
	ctx := bCtx.Background()

	_, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{Buyer: buyer, ListingId: 7, Quantity: 0, Paid: "0"})
	s.ErrorIs(err, marketplace.ErrInvalidZeroParams)

	s.givenListing(&marketplace.Listing{
		ListingId:      7,
		AssetId:        1,
		Seller:         seller,
		UnitPrice:      "1000",
		UnitsRemaining: 5,
	})

	_, err = s.im.Purchase(ctx, &marketplace.PurchaseInput{Buyer: seller, ListingId: 7, Quantity: 1, Paid: "1000"})
	s.ErrorIs(err, marketplace.ErrInvalidBuyer)

	_, err = s.im.Purchase(ctx, &marketplace.PurchaseInput{Buyer: buyer, ListingId: 7, Quantity: 6, Paid: "6000"})
	s.ErrorIs(err, marketplace.ErrInvalidAmountForPurchase)

	_, err = s.im.Purchase(ctx, &marketplace.PurchaseInput{Buyer: buyer, ListingId: 7, Quantity: 2, Paid: "1999"})
	s.ErrorIs(err, marketplace.ErrInsufficientPayment)
}

func (s *marketplaceSuite) TestPurchaseHoldingCap() {
	ctx := bCtx.Background()

	s.givenListing(&marketplace.Listing{
		ListingId:      7,
		AssetId:        1,
		Seller:         seller,
		UnitPrice:      "1000",
		UnitsRemaining: 10,
	})
	s.feeConfig.On("GetPlatformConfig", mock.Anything).Return(&marketplace.PlatformConfig{MaxUnitsPerHolder: 5}, nil)

	// a single purchase may never exceed the cap
	_, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{Buyer: buyer, ListingId: 7, Quantity: 6, Paid: "6000"})
	s.ErrorIs(err, marketplace.ErrExceedsHoldingCap)

	// neither may the cumulative holding
	s.holding.On("Held", mock.Anything, domain.AssetId(1), buyer).Return(int64(5), nil).Once()
	_, err = s.im.Purchase(ctx, &marketplace.PurchaseInput{Buyer: buyer, ListingId: 7, Quantity: 1, Paid: "1000"})
	s.ErrorIs(err, marketplace.ErrExceedsHoldingCap)

	// at four held, one more unit still fits
	s.holding.On("Held", mock.Anything, domain.AssetId(1), buyer).Return(int64(4), nil).Once()
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(false, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelFirstSale).Return(&marketplace.FeeConfig{
		PlatformBps: 1000,
		SellerBps:   9000,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return(nil, nil)
	s.listing.On("Patch", mock.Anything, domain.ListingId(7), mock.Anything).Return(nil)
	s.saleState.On("MarkSold", mock.Anything, domain.AssetId(1)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(1), buyer, int64(1)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(1)).Return(nil)
	s.capturePayouts()

	_, err = s.im.Purchase(ctx, &marketplace.PurchaseInput{Buyer: buyer, ListingId: 7, Quantity: 1, Paid: "1000"})
	s.NoError(err)
}

func (s *marketplaceSuite) TestSpecialBuy() {
	ctx := bCtx.Background()

	s.special.On("FindOne", mock.Anything, domain.AssetId(1)).Return(&marketplace.SpecialListing{
		AssetId: 1,
		Seller:  seller,
		Price:   "500",
	}, nil)
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(false, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelFirstSale).Return(&marketplace.FeeConfig{
		PlatformBps:    1000,
		RoyaltyPoolBps: 1000,
		SellerBps:      8000,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return([]marketplace.RoyaltyShare{
		{Recipient: royaltyA, Bps: 10000},
	}, nil)
	s.special.On("Remove", mock.Anything, domain.AssetId(1)).Return(nil)
	s.saleState.On("MarkSold", mock.Anything, domain.AssetId(1)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(1), buyer, int64(1)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(1)).Return(nil)
	s.registry.On("SetRoyaltyManager", mock.Anything, domain.AssetId(1), buyer).Return(nil)
	// an empty table hands the whole pool to the buyer going forward
	s.registry.On("SetRoyaltyRecipients", mock.Anything, domain.AssetId(1), []marketplace.RoyaltyShare{
		{Recipient: buyer, Bps: marketplace.TotalBps},
	}).Return(nil)
	entries := s.capturePayouts()

	res, err := s.im.SpecialBuy(ctx, &marketplace.SpecialBuyInput{
		Buyer:   buyer,
		AssetId: 1,
		Paid:    "500",
	})
	s.NoError(err)
	s.Equal(int64(1), res.Quantity)
	s.True(res.FirstSale)
	// settlement still uses the table that was registered at sale time
	s.Equal("50", entryAmount(*entries, royaltyA, marketplace.PayoutRoyalty))
	s.Equal(int64(500), sumEntries(*entries).Int64())
	s.registry.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestSpecialBuyInstallsNewTable() {
	ctx := bCtx.Background()

	s.special.On("FindOne", mock.Anything, domain.AssetId(1)).Return(&marketplace.SpecialListing{
		AssetId: 1,
		Seller:  seller,
		Price:   "500",
	}, nil)
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(true, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelResale).Return(&marketplace.FeeConfig{
		PlatformBps: 1000,
		SellerBps:   9000,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return(nil, nil)
	s.special.On("Remove", mock.Anything, domain.AssetId(1)).Return(nil)
	s.holding.On("Add", mock.Anything, domain.AssetId(1), buyer, int64(1)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry.On("Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(1)).Return(nil)
	s.registry.On("SetRoyaltyManager", mock.Anything, domain.AssetId(1), buyer).Return(nil)
	s.registry.On("SetRoyaltyRecipients", mock.Anything, domain.AssetId(1), []marketplace.RoyaltyShare{
		{Recipient: royaltyA, Bps: 6000},
		{Recipient: royaltyB, Bps: 4000},
	}).Return(nil)
	s.capturePayouts()

	_, err := s.im.SpecialBuy(ctx, &marketplace.SpecialBuyInput{
		Buyer:      buyer,
		AssetId:    1,
		Recipients: []domain.Address{royaltyA, royaltyB},
		Bps:        []int64{6000, 4000},
		Paid:       "500",
	})
	s.NoError(err)
	s.registry.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestSpecialBuyValidation() {
	ctx := bCtx.Background()

	_, err := s.im.SpecialBuy(ctx, &marketplace.SpecialBuyInput{
		Buyer:      buyer,
		AssetId:    1,
		Recipients: []domain.Address{royaltyA},
		Bps:        []int64{6000, 4000},
		Paid:       "500",
	})
	s.ErrorIs(err, marketplace.ErrMismatchedArrayPassed)

	_, err = s.im.SpecialBuy(ctx, &marketplace.SpecialBuyInput{
		Buyer:      buyer,
		AssetId:    1,
		Recipients: []domain.Address{royaltyA, royaltyB},
		Bps:        []int64{6000, 3000},
		Paid:       "500",
	})
	s.ErrorIs(err, marketplace.ErrInvalidPercentage)

	_, err = s.im.SpecialBuy(ctx, &marketplace.SpecialBuyInput{
		Buyer:      buyer,
		AssetId:    1,
		Recipients: []domain.Address{royaltyA, royaltyB},
		Bps:        []int64{12000, -2000},
		Paid:       "500",
	})
	s.ErrorIs(err, marketplace.ErrInvalidPercentage)

	s.special.On("FindOne", mock.Anything, domain.AssetId(1)).Return(&marketplace.SpecialListing{
		AssetId: 1,
		Seller:  seller,
		Price:   "500",
	}, nil)
	_, err = s.im.SpecialBuy(ctx, &marketplace.SpecialBuyInput{Buyer: buyer, AssetId: 1, Paid: "499"})
	s.ErrorIs(err, marketplace.ErrInsufficientPayment)
}

func (s *marketplaceSuite) TestListSpecial() {
	ctx := bCtx.Background()

	s.registry.On("RoyaltyManager", mock.Anything, domain.AssetId(1)).Return(seller, nil)

	_, err := s.im.ListSpecial(ctx, buyer, 1, "500")
	s.ErrorIs(err, marketplace.ErrNotTokenRoyaltyManager)

	s.registry.On("IsApprovedForEngine", mock.Anything, seller).Return(true, nil)
	s.special.On("Upsert", mock.Anything, mock.MatchedBy(func(l *marketplace.SpecialListing) bool {
		return l.AssetId == domain.AssetId(1) && l.Seller == seller && l.Price == "500"
	})).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)

	res, err := s.im.ListSpecial(ctx, seller, 1, "500")
	s.NoError(err)
	s.Equal("500", res.Price)
}

func (s *marketplaceSuite) TestCancelSpecial() {
	ctx := bCtx.Background()

	s.special.On("FindOne", mock.Anything, domain.AssetId(1)).Return(&marketplace.SpecialListing{
		AssetId: 1,
		Seller:  seller,
		Price:   "500",
	}, nil)

	s.ErrorIs(s.im.CancelSpecial(ctx, buyer, 1), marketplace.ErrNotSeller)

	s.special.On("Remove", mock.Anything, domain.AssetId(1)).Return(nil)
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.NoError(s.im.CancelSpecial(ctx, seller, 1))
}

// Purchase commits marketplace state before it touches the registry; a failed
// transaction must leave the registry and the ledger untouched.
func (s *marketplaceSuite) TestPurchaseTxnFailureSkipsTransfer() {
	ctx := bCtx.Background()

	s.givenListing(&marketplace.Listing{
		ListingId:      7,
		AssetId:        1,
		Seller:         seller,
		UnitPrice:      "1000",
		UnitsRemaining: 1,
	})
	s.givenNoUnitCap()
	s.saleState.On("EverSold", mock.Anything, domain.AssetId(1)).Return(false, nil)
	s.feeConfig.On("Get", mock.Anything, marketplace.FeeLabelFirstSale).Return(&marketplace.FeeConfig{
		PlatformBps: 1000,
		SellerBps:   9000,
	}, nil)
	s.registry.On("RoyaltyRecipients", mock.Anything, domain.AssetId(1)).Return(nil, nil)
	s.listing.On("Remove", mock.Anything, domain.ListingId(7)).Return(domain.ErrInternalServerError)

	_, err := s.im.Purchase(ctx, &marketplace.PurchaseInput{
		Buyer:     buyer,
		ListingId: 7,
		Quantity:  1,
		Paid:      "1000",
	})
	s.Error(err)
	s.Empty(s.ledger.Calls)
	s.registry.AssertNotCalled(s.T(), "Transfer", mock.Anything, seller, buyer, domain.AssetId(1), int64(1))
}

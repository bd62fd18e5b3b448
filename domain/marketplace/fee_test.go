package marketplace

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melodex/goapi/domain"
)

func TestFeeConfigValid(t *testing.T) {
	assert.True(t, FeeConfig{PlatformBps: 1000, SellerBps: 9000}.Valid())
	assert.True(t, FeeConfig{PlatformBps: 500, RoyaltyPoolBps: 1000, SellerBps: 8500}.Valid())
	assert.False(t, FeeConfig{PlatformBps: 1000, SellerBps: 8999}.Valid())
	assert.False(t, FeeConfig{PlatformBps: 1000, RoyaltyPoolBps: 100, SellerBps: 9000}.Valid())
	assert.False(t, FeeConfig{PlatformBps: -1000, RoyaltyPoolBps: 2000, SellerBps: 9000}.Valid())
}

func TestSplitConservesAmount(t *testing.T) {
	cfg := FeeConfig{PlatformBps: 1000, RoyaltyPoolBps: 1000, SellerBps: 8000}

	for _, amount := range []int64{0, 1, 3, 7, 99, 100, 101, 9999, 10000, 123456789} {
		sale := big.NewInt(amount)
		platform, seller, pool := cfg.Split(sale)

		sum := new(big.Int).Add(platform, seller)
		sum.Add(sum, pool)
		assert.Equal(t, sale, sum, "amount %d leaked value", amount)
		assert.True(t, platform.Sign() >= 0)
		assert.True(t, seller.Sign() >= 0)
		assert.True(t, pool.Sign() >= 0)
	}
}

func TestSplitTruncatesTowardPool(t *testing.T) {
	// 10/10/80 on 101: platform and seller truncate, pool takes the dust.
	cfg := FeeConfig{PlatformBps: 1000, RoyaltyPoolBps: 1000, SellerBps: 8000}
	platform, seller, pool := cfg.Split(big.NewInt(101))
	assert.Equal(t, int64(10), platform.Int64())
	assert.Equal(t, int64(80), seller.Int64())
	assert.Equal(t, int64(11), pool.Int64())
}

func TestDistributePool(t *testing.T) {
	shares := []RoyaltyShare{
		{Recipient: "0xaa", Bps: 9000},
		{Recipient: "0xbb", Bps: 1000},
	}
	cuts, remainder := DistributePool(big.NewInt(1000), shares)
	assert.Equal(t, int64(900), cuts[0].Int64())
	assert.Equal(t, int64(100), cuts[1].Int64())
	assert.Equal(t, int64(0), remainder.Int64())

	// Truncation dust comes back as remainder.
	cuts, remainder = DistributePool(big.NewInt(101), shares)
	assert.Equal(t, int64(90), cuts[0].Int64())
	assert.Equal(t, int64(10), cuts[1].Int64())
	assert.Equal(t, int64(1), remainder.Int64())

	// No recipients: the whole pool is remainder.
	cuts, remainder = DistributePool(big.NewInt(77), nil)
	assert.Empty(t, cuts)
	assert.Equal(t, int64(77), remainder.Int64())
}

func TestSplitWithRoyalties(t *testing.T) {
	// 80/10/10 sale of 10000 with two recipients at 90%/10% of the pool:
	// seller 8000, platform 1000, royalties 900 + 100.
	cfg := FeeConfig{PlatformBps: 1000, RoyaltyPoolBps: 1000, SellerBps: 8000}
	platform, seller, pool := cfg.Split(big.NewInt(10000))
	assert.Equal(t, int64(1000), platform.Int64())
	assert.Equal(t, int64(8000), seller.Int64())
	assert.Equal(t, int64(1000), pool.Int64())

	cuts, remainder := DistributePool(pool, []RoyaltyShare{
		{Recipient: "0xaa", Bps: 9000},
		{Recipient: "0xbb", Bps: 1000},
	})
	assert.Equal(t, int64(900), cuts[0].Int64())
	assert.Equal(t, int64(100), cuts[1].Int64())
	assert.Equal(t, int64(0), remainder.Int64())
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("12345")
	assert.NoError(t, err)
	assert.Equal(t, int64(12345), v.Int64())

	v, err = ParseAmount("0")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())

	for _, bad := range []string{"", "abc", "1.5", "-3", "1e2x"} {
		_, err = ParseAmount(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidNumberFormat, "input %q", bad)
	}
}

package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestProRata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		amount      Amount
		numerator   Amount
		denominator Amount
		want        Amount
		wantErr     error
	}{
		{name: "rounds down", amount: 10, numerator: 3, denominator: 4, want: 7},
		{name: "exact", amount: 400, numerator: 1000, denominator: 1000, want: 400},
		{name: "wide intermediate", amount: math.MaxUint64, numerator: math.MaxUint64, denominator: math.MaxUint64, want: math.MaxUint64},
		{name: "quotient overflow", amount: math.MaxUint64, numerator: 2, denominator: 1, wantErr: ErrArithmeticOverflow},
		{name: "division by zero", amount: 1, numerator: 1, denominator: 0, wantErr: ErrDivisionByZero},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ProRata(tc.amount, tc.numerator, tc.denominator)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddAndSubAmountsFailInsteadOfWrapping(t *testing.T) {
	t.Parallel()

	_, err := AddAmounts(math.MaxUint64, 1)
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = SubAmount(1, 2)
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	sum, err := AddAmounts(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Amount(6), sum)
}

func TestSharesFromBaseBootstrapsOneToOne(t *testing.T) {
	t.Parallel()

	shares, err := PoolState{}.SharesFromBase(1000)
	require.NoError(t, err)
	assert.Equal(t, Amount(1000), shares)

	base, err := PoolState{}.BaseFromShares(1000)
	require.NoError(t, err)
	assert.Zero(t, base)
}

func TestRateRoundTripNeverFavorsDepositor(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalPooled: 1_003, TotalSharesMinted: 997, TotalSharesVirtual: 5}
	for _, x := range []Amount{1, 2, 3, 7, 99, 1_000, 123_457} {
		shares, err := pool.SharesFromBase(x)
		require.NoError(t, err)
		back, err := pool.BaseFromShares(shares)
		require.NoError(t, err)
		assert.LessOrEqual(t, back, x, "amount %d", x)
	}
}

func TestBaseFromSharesLeavesRoundingDustInPool(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalPooled: 10, TotalSharesMinted: 3}

	var paid Amount
	for i := 0; i < 3; i++ {
		value, err := pool.BaseFromShares(1)
		require.NoError(t, err)
		paid += value
	}

	assert.Equal(t, Amount(9), paid)
}

func TestUpdateFeesAccruesLinearlyOverYear(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalSharesMinted: 1_000_000_000, FeePercentage: 200, LastFeeUpdate: testEpoch}

	half, err := pool.VirtualSharesAt(testEpoch.Add(Year / 2))
	require.NoError(t, err)
	assert.Equal(t, Amount(10_000_000), half)

	require.NoError(t, pool.UpdateFees(testEpoch.Add(Year)))
	assert.Equal(t, Amount(20_000_000), pool.TotalSharesVirtual)
	assert.Equal(t, testEpoch.Add(Year), pool.LastFeeUpdate)
}

func TestUpdateFeesIsNoOpWhenTimeDoesNotAdvance(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalSharesMinted: 1_000, FeePercentage: 200, LastFeeUpdate: testEpoch}
	require.NoError(t, pool.UpdateFees(testEpoch.Add(-time.Hour)))
	require.NoError(t, pool.UpdateFees(testEpoch))

	assert.Zero(t, pool.TotalSharesVirtual)
	assert.Equal(t, testEpoch, pool.LastFeeUpdate)
}

func TestUpdateFeesWithZeroFeeOnlyAdvancesClock(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalSharesMinted: 1_000, LastFeeUpdate: testEpoch}
	require.NoError(t, pool.UpdateFees(testEpoch.Add(Year)))

	assert.Zero(t, pool.TotalSharesVirtual)
	assert.Equal(t, testEpoch.Add(Year), pool.LastFeeUpdate)
}

func TestClaimFeesMovesVirtualSharesIntoSupply(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalPooled: 500, TotalSharesMinted: 1_000, TotalSharesVirtual: 25}
	shares, err := pool.ClaimFees()
	require.NoError(t, err)

	assert.Equal(t, Amount(25), shares)
	assert.Equal(t, Amount(1_025), pool.TotalSharesMinted)
	assert.Zero(t, pool.TotalSharesVirtual)
	assert.Equal(t, Amount(500), pool.TotalPooled)
}

func TestDepositMintsAtCurrentRate(t *testing.T) {
	t.Parallel()

	pool := PoolState{LastFeeUpdate: testEpoch}
	shares, err := pool.Deposit(1_000, testEpoch)
	require.NoError(t, err)
	assert.Equal(t, Amount(1_000), shares)

	pool.TotalPooled = 2_000
	shares, err = pool.Deposit(500, testEpoch)
	require.NoError(t, err)
	assert.Equal(t, Amount(250), shares)
	assert.Equal(t, Amount(2_500), pool.TotalPooled)
	assert.Equal(t, Amount(1_250), pool.TotalSharesMinted)
}

func TestDepositRejectsBelowMinimumWithoutChanges(t *testing.T) {
	t.Parallel()

	pool := PoolState{MinimumStake: 100, TotalPooled: 10, TotalSharesMinted: 10, LastFeeUpdate: testEpoch}
	before := pool

	_, err := pool.Deposit(99, testEpoch.Add(time.Hour))
	require.ErrorIs(t, err, ErrMinimumStake)
	assert.Equal(t, before, pool)

	_, err = pool.Deposit(0, testEpoch)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestUpdateFeesCarriesSubMillisecondRemainder(t *testing.T) {
	t.Parallel()

	const steps = 1000
	step := 900 * time.Microsecond
	start := PoolState{TotalSharesMinted: 1_000_000_000_000_000_000, FeePercentage: 200, LastFeeUpdate: testEpoch}

	stepped := start
	for i := 1; i <= steps; i++ {
		require.NoError(t, stepped.UpdateFees(testEpoch.Add(time.Duration(i)*step)))
	}

	single := start
	require.NoError(t, single.UpdateFees(testEpoch.Add(steps*step)))

	assert.Equal(t, testEpoch.Add(900*time.Millisecond), stepped.LastFeeUpdate)
	assert.Equal(t, single.LastFeeUpdate, stepped.LastFeeUpdate)
	require.Positive(t, stepped.TotalSharesVirtual)
	assert.InEpsilon(t, float64(single.TotalSharesVirtual), float64(stepped.TotalSharesVirtual), 1e-5)
}

func TestUpdateFeesBelowOneMillisecondKeepsClock(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalSharesMinted: 1_000_000, FeePercentage: 200, LastFeeUpdate: testEpoch}
	require.NoError(t, pool.UpdateFees(testEpoch.Add(400*time.Microsecond)))

	assert.Zero(t, pool.TotalSharesVirtual)
	assert.Equal(t, testEpoch, pool.LastFeeUpdate)
}

func TestDepositOverflowLeavesPoolUnchanged(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalPooled: math.MaxUint64 - 10, TotalSharesMinted: math.MaxUint64 - 10, LastFeeUpdate: testEpoch}
	before := pool

	_, err := pool.Deposit(100, testEpoch)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	assert.Equal(t, before, pool)
}

func TestUpdateFeesOverflowLeavesPoolUnchanged(t *testing.T) {
	t.Parallel()

	pool := PoolState{TotalSharesMinted: math.MaxUint64, TotalSharesVirtual: 1, FeePercentage: 200, LastFeeUpdate: testEpoch}
	before := pool

	err := pool.UpdateFees(testEpoch.Add(time.Hour))
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	assert.Equal(t, before, pool)
}

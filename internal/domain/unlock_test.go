package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEra      = 24 * time.Hour
	testCooldown = 48 * time.Hour
)

func newTestVault(t *testing.T) VaultState {
	t.Helper()

	state, err := NewVaultState("owner", Params{Era: testEra, CooldownPeriod: testCooldown}, testEpoch)
	require.NoError(t, err)
	return state
}

func TestBatchIDAt(t *testing.T) {
	t.Parallel()

	pool := PoolState{CreationTime: testEpoch, Era: testEra}

	assert.Equal(t, BatchID(0), pool.BatchIDAt(testEpoch.Add(-time.Hour)))
	assert.Equal(t, BatchID(0), pool.BatchIDAt(testEpoch))
	assert.Equal(t, BatchID(0), pool.BatchIDAt(testEpoch.Add(testEra-time.Millisecond)))
	assert.Equal(t, BatchID(1), pool.BatchIDAt(testEpoch.Add(testEra)))
	assert.Equal(t, BatchID(7), pool.BatchIDAt(testEpoch.Add(7*testEra+time.Hour)))
}

func TestUnlockLifecycleScenario(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)

	shares, err := state.Pool.Deposit(1_000, testEpoch)
	require.NoError(t, err)
	require.Equal(t, Amount(1_000), shares)

	request, err := state.RequestUnlock("alice", 400, testEpoch.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, UnlockID(0), request.ID)
	assert.Equal(t, BatchID(0), request.BatchID)

	finalizedAt := testEpoch.Add(testEra)
	result, err := state.FinalizeBatches([]BatchID{0}, finalizedAt)
	require.NoError(t, err)
	assert.Equal(t, Amount(400), result.TotalValue)
	assert.Equal(t, Amount(400), result.TotalShares)
	require.Len(t, result.Batches, 1)
	assert.Equal(t, FinalizedBatch{ID: 0, Shares: 400, Value: 400}, result.Batches[0])

	_, err = state.Redeem("alice", request.ID, finalizedAt.Add(testCooldown-time.Millisecond))
	require.ErrorIs(t, err, ErrCooldownActive)

	redemption, err := state.Redeem("alice", request.ID, finalizedAt.Add(testCooldown))
	require.NoError(t, err)
	assert.Equal(t, Amount(400), redemption.Payout)
	assert.Empty(t, state.UnlockRequests("alice"))

	_, err = state.Redeem("alice", request.ID, finalizedAt.Add(testCooldown))
	require.ErrorIs(t, err, ErrUnlockRequestNotFound)
}

func TestRequestUnlockRejectsZeroShares(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	_, err := state.RequestUnlock("alice", 0, testEpoch)
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, state.Batches)
}

func TestCancelUnlockOnlyWithinCreationWindow(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	createdAt := testEpoch.Add(time.Hour)

	request, err := state.RequestUnlock("alice", 50, createdAt)
	require.NoError(t, err)

	_, err = state.CancelUnlock("alice", request.ID, createdAt.Add(testEra))
	require.ErrorIs(t, err, ErrBatchWindowClosed)
	assert.Equal(t, Amount(50), state.Batches[0].TotalShares)

	canceled, err := state.CancelUnlock("alice", request.ID, createdAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, Amount(50), canceled.ShareAmount)
	assert.Zero(t, state.Batches[0].TotalShares)
	assert.Empty(t, state.UnlockRequests("alice"))

	_, err = state.CancelUnlock("alice", request.ID, createdAt)
	require.ErrorIs(t, err, ErrUnlockRequestNotFound)
}

func TestUnlockIDsStayStableAcrossRemoval(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	for _, shares := range []Amount{10, 20, 30} {
		_, err := state.RequestUnlock("alice", shares, testEpoch)
		require.NoError(t, err)
	}

	_, err := state.CancelUnlock("alice", 1, testEpoch)
	require.NoError(t, err)

	next, err := state.RequestUnlock("alice", 40, testEpoch)
	require.NoError(t, err)
	assert.Equal(t, UnlockID(3), next.ID)

	var ids []UnlockID
	for _, request := range state.UnlockRequests("alice") {
		ids = append(ids, request.ID)
	}
	assert.Equal(t, []UnlockID{0, 2, 3}, ids)
	assert.Equal(t, Amount(80), state.Batches[0].TotalShares)
}

func TestFinalizeBatchesValidatesBeforeMutating(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	_, err := state.Pool.Deposit(1_000, testEpoch)
	require.NoError(t, err)

	_, err = state.RequestUnlock("alice", 100, testEpoch)
	require.NoError(t, err)
	_, err = state.RequestUnlock("bob", 100, testEpoch.Add(testEra))
	require.NoError(t, err)

	now := testEpoch.Add(3 * testEra)
	tests := []struct {
		name    string
		ids     []BatchID
		wantErr error
	}{
		{name: "empty", ids: nil, wantErr: ErrBatchNotFound},
		{name: "current window", ids: []BatchID{0, 3}, wantErr: ErrBatchNotClosed},
		{name: "descending", ids: []BatchID{1, 0}, wantErr: ErrDuplicateBatch},
		{name: "repeated", ids: []BatchID{0, 0}, wantErr: ErrDuplicateBatch},
		{name: "missing batch after a valid one", ids: []BatchID{0, 2}, wantErr: ErrBatchNotFound},
	}

	for _, tc := range tests {
		before := state.Clone()
		_, err := state.FinalizeBatches(tc.ids, now)
		require.ErrorIs(t, err, tc.wantErr, tc.name)
		assert.Equal(t, before, state, tc.name)
	}
}

func TestFinalizeBatchesOverflowLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	_, err := state.Pool.Deposit(1_000, testEpoch)
	require.NoError(t, err)
	_, err = state.RequestUnlock("alice", 400, testEpoch)
	require.NoError(t, err)

	state.Pool.TotalSharesMinted = math.MaxUint64
	state.Pool.TotalSharesVirtual = 1
	before := state.Clone()

	_, err = state.FinalizeBatches([]BatchID{0}, testEpoch.Add(testEra))
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	assert.Equal(t, before, state)
	assert.False(t, state.Batches[0].Finalized())
}

func TestFinalizeBatchTwiceFails(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	_, err := state.Pool.Deposit(1_000, testEpoch)
	require.NoError(t, err)
	_, err = state.RequestUnlock("alice", 100, testEpoch)
	require.NoError(t, err)

	_, err = state.FinalizeBatches([]BatchID{0}, testEpoch.Add(testEra))
	require.NoError(t, err)

	_, err = state.FinalizeBatches([]BatchID{0}, testEpoch.Add(2*testEra))
	require.ErrorIs(t, err, ErrBatchAlreadyFinalized)
}

func TestFinalizeBatchesPricesWithOneSnapshot(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	state.Pool.FeePercentage = 200
	_, err := state.Pool.Deposit(1_000_000, testEpoch)
	require.NoError(t, err)

	_, err = state.RequestUnlock("alice", 100_000, testEpoch)
	require.NoError(t, err)
	_, err = state.RequestUnlock("bob", 300_000, testEpoch.Add(testEra))
	require.NoError(t, err)

	now := testEpoch.Add(Year)
	snapshot, err := state.Pool.At(now)
	require.NoError(t, err)
	want0, err := snapshot.BaseFromShares(100_000)
	require.NoError(t, err)
	want1, err := snapshot.BaseFromShares(300_000)
	require.NoError(t, err)

	result, err := state.FinalizeBatches([]BatchID{0, 1}, now)
	require.NoError(t, err)

	assert.Equal(t, want0, *state.Batches[0].ValueAtRedemption)
	assert.Equal(t, want1, *state.Batches[1].ValueAtRedemption)
	assert.Equal(t, want0+want1, result.TotalValue)
	assert.Equal(t, Amount(400_000), result.TotalShares)
	assert.Equal(t, snapshot.TotalSharesVirtual, result.VirtualShares)
	assert.Equal(t, now, state.Pool.LastFeeUpdate)
	assert.Less(t, want0, Amount(100_000))
}

func TestRedeemPaysProRataShareOfBatch(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	state.Pool.TotalPooled = 10
	state.Pool.TotalSharesMinted = 3

	alice, err := state.RequestUnlock("alice", 1, testEpoch)
	require.NoError(t, err)
	bob, err := state.RequestUnlock("bob", 2, testEpoch)
	require.NoError(t, err)

	finalizedAt := testEpoch.Add(testEra)
	result, err := state.FinalizeBatches([]BatchID{0}, finalizedAt)
	require.NoError(t, err)
	require.Equal(t, Amount(10), result.TotalValue)

	redeemAt := finalizedAt.Add(testCooldown)
	first, err := state.Redeem("alice", alice.ID, redeemAt)
	require.NoError(t, err)
	second, err := state.Redeem("bob", bob.ID, redeemAt)
	require.NoError(t, err)

	assert.Equal(t, Amount(3), first.Payout)
	assert.Equal(t, Amount(6), second.Payout)
}

func TestRedeemRequiresFinalizedBatch(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	request, err := state.RequestUnlock("alice", 5, testEpoch)
	require.NoError(t, err)

	_, err = state.Redeem("alice", request.ID, testEpoch.Add(10*testEra))
	require.ErrorIs(t, err, ErrBatchNotFinalized)

	_, err = state.Redeem("bob", request.ID, testEpoch)
	require.ErrorIs(t, err, ErrUnlockRequestNotFound)
}

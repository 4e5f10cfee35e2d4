package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Params) {}},
		{name: "zero era", mutate: func(p *Params) { p.Era = 0 }, wantErr: ErrInvalidPeriod},
		{name: "negative cooldown", mutate: func(p *Params) { p.CooldownPeriod = -time.Second }, wantErr: ErrInvalidPeriod},
		{name: "fee at 100%", mutate: func(p *Params) { p.FeePercentage = BIPS }, wantErr: ErrInvalidPercent},
		{name: "incentive at 100%", mutate: func(p *Params) { p.IncentivePercentage = BIPS }, wantErr: ErrInvalidPercent},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			params := DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewVaultStateGivesOwnerEveryRole(t *testing.T) {
	t.Parallel()

	state, err := NewVaultState("owner", DefaultParams(), testEpoch)
	require.NoError(t, err)

	assert.Equal(t, Roles{Owner: "owner", AdjustFee: "owner", AdjustFeeAdmin: "owner"}, state.Roles)
	assert.Equal(t, testEpoch, state.Pool.CreationTime)
	assert.Equal(t, testEpoch, state.Pool.LastFeeUpdate)

	_, err = NewVaultState(" ", DefaultParams(), testEpoch)
	assert.ErrorContains(t, err, "owner is required")
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	state := newTestVault(t)
	state.Pool.TotalPooled = 100
	state.Pool.TotalSharesMinted = 100
	_, err := state.RequestUnlock("alice", 10, testEpoch)
	require.NoError(t, err)
	_, err = state.FinalizeBatches([]BatchID{0}, testEpoch.Add(testEra))
	require.NoError(t, err)

	clone := state.Clone()
	*clone.Batches[0].ValueAtRedemption = 1
	clone.Unlocks["alice"].Requests[0].ShareAmount = 99

	assert.Equal(t, Amount(10), *state.Batches[0].ValueAtRedemption)
	assert.Equal(t, Amount(10), state.Unlocks["alice"].Requests[0].ShareAmount)
}

func TestAdjustFeeAccruesAtPreviousFee(t *testing.T) {
	t.Parallel()

	state, err := NewVaultState("owner", DefaultParams(), testEpoch)
	require.NoError(t, err)
	state.Pool.TotalSharesMinted = 1_000_000_000

	require.NoError(t, state.AdjustFee("owner", 0, testEpoch.Add(Year)))
	assert.Equal(t, Bips(0), state.Pool.FeePercentage)
	assert.Equal(t, Amount(20_000_000), state.Pool.TotalSharesVirtual)

	require.ErrorIs(t, state.AdjustFee("owner", 0, testEpoch.Add(Year)), ErrNoChange)
	require.ErrorIs(t, state.AdjustFee("owner", BIPS, testEpoch), ErrInvalidPercent)
	require.ErrorIs(t, state.AdjustFee("mallory", 10, testEpoch), ErrUnauthorized)
}

func TestAdjustIncentiveAndMinimumStake(t *testing.T) {
	t.Parallel()

	state, err := NewVaultState("owner", DefaultParams(), testEpoch)
	require.NoError(t, err)

	require.NoError(t, state.AdjustIncentive("owner", 500))
	assert.Equal(t, Bips(500), state.Pool.IncentivePercentage)
	require.ErrorIs(t, state.AdjustIncentive("owner", 500), ErrNoChange)
	require.ErrorIs(t, state.AdjustIncentive("owner", BIPS), ErrInvalidPercent)

	require.NoError(t, state.AdjustMinimumStake("owner", 5))
	assert.Equal(t, Amount(5), state.Pool.MinimumStake)
	require.ErrorIs(t, state.AdjustMinimumStake("owner", 5), ErrNoChange)
	require.ErrorIs(t, state.AdjustMinimumStake("mallory", 6), ErrUnauthorized)
}

func TestTransferRoleRequiresAdmin(t *testing.T) {
	t.Parallel()

	state, err := NewVaultState("owner", DefaultParams(), testEpoch)
	require.NoError(t, err)

	require.NoError(t, state.TransferRole(RoleAdjustFeeAdmin, "owner", "admin"))
	require.ErrorIs(t, state.TransferRole(RoleAdjustFee, "owner", "setter"), ErrUnauthorized)
	require.NoError(t, state.TransferRole(RoleAdjustFee, "admin", "setter"))
	require.ErrorIs(t, state.TransferRole(RoleAdjustFee, "admin", "setter"), ErrNoChange)

	require.ErrorIs(t, state.TransferRole(RoleOwner, "admin", "next"), ErrUnauthorized)
	require.NoError(t, state.TransferRole(RoleOwner, "owner", "next"))

	assert.Equal(t, Roles{Owner: "next", AdjustFee: "setter", AdjustFeeAdmin: "admin"}, state.Roles)
	require.ErrorIs(t, state.AdjustFee("owner", 10, testEpoch), ErrUnauthorized)
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(weights []uint64, staked []Amount) []AgentPosition {
	names := []AccountID{"a", "b", "c", "d"}
	result := make([]AgentPosition, len(weights))
	for i := range weights {
		result[i] = AgentPosition{Account: names[i], Weight: weights[i], Staked: staked[i]}
	}
	return result
}

func TestComputeImbalancesTargetsFollowWeights(t *testing.T) {
	t.Parallel()

	result, err := ComputeImbalances(4, 400, positions([]uint64{1, 1, 2}, []Amount{100, 50, 250}))
	require.NoError(t, err)
	require.Len(t, result.Agents, 3)

	var targets []Amount
	var imbalances []int64
	for _, agent := range result.Agents {
		targets = append(targets, agent.Target)
		imbalances = append(imbalances, agent.Imbalance)
	}
	assert.Equal(t, []Amount{100, 100, 200}, targets)
	assert.Equal(t, []int64{0, 50, -50}, imbalances)
}

func TestComputeImbalancesTargetsNeverExceedPooled(t *testing.T) {
	t.Parallel()

	result, err := ComputeImbalances(3, 100, positions([]uint64{1, 1, 1}, []Amount{0, 0, 0}))
	require.NoError(t, err)

	var sum Amount
	for _, agent := range result.Agents {
		sum += agent.Target
	}
	assert.Equal(t, Amount(99), sum)
}

func TestComputeImbalancesAcrossFullAmountRange(t *testing.T) {
	t.Parallel()

	result, err := ComputeImbalances(1, math.MaxUint64, positions([]uint64{1}, []Amount{math.MaxUint64 - 5}))
	require.NoError(t, err)
	require.Len(t, result.Agents, 1)
	assert.Equal(t, Amount(math.MaxUint64), result.Agents[0].Target)
	assert.Equal(t, int64(5), result.Agents[0].Imbalance)

	result, err = ComputeImbalances(1, math.MaxUint64-100, positions([]uint64{1}, []Amount{math.MaxUint64}))
	require.NoError(t, err)
	assert.Equal(t, int64(-100), result.Agents[0].Imbalance)

	_, err = ComputeImbalances(1, math.MaxUint64, positions([]uint64{1}, []Amount{0}))
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestPlanUnbondingNearAmountCeiling(t *testing.T) {
	t.Parallel()

	planned, err := PlanUnbonding(1, math.MaxUint64-100, positions([]uint64{1}, []Amount{math.MaxUint64 - 5}), 50)
	require.NoError(t, err)
	assert.Equal(t, []Allocation{{Account: "a", Amount: 50}}, planned)
}

func TestComputeImbalancesWithoutWeightIsEmpty(t *testing.T) {
	t.Parallel()

	result, err := ComputeImbalances(0, 400, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Agents)
	assert.Equal(t, Amount(400), result.TotalPooled)
}

func TestPlanBonding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights []uint64
		staked  []Amount
		pooled  Amount
		amount  Amount
		want    []Allocation
	}{
		{
			name:    "largest deficit takes everything",
			weights: []uint64{1, 1, 2},
			staked:  []Amount{100, 50, 200},
			pooled:  400,
			amount:  50,
			want:    []Allocation{{Account: "b", Amount: 50}},
		},
		{
			name:    "remainder split by weight with dust to first",
			weights: []uint64{1, 2},
			staked:  []Amount{100, 200},
			pooled:  310,
			amount:  10,
			want:    []Allocation{{Account: "a", Amount: 4}, {Account: "b", Amount: 6}},
		},
		{
			name:    "zero weight never receives",
			weights: []uint64{0, 1},
			staked:  []Amount{50, 0},
			pooled:  60,
			amount:  10,
			want:    []Allocation{{Account: "b", Amount: 10}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var totalWeight uint64
			for _, weight := range tc.weights {
				totalWeight += weight
			}

			got, err := PlanBonding(totalWeight, tc.pooled, positions(tc.weights, tc.staked), tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanBondingBreaksTiesByRegistrationOrder(t *testing.T) {
	t.Parallel()

	got, err := PlanBonding(2, 10, positions([]uint64{1, 1}, []Amount{0, 0}), 3)
	require.NoError(t, err)
	assert.Equal(t, []Allocation{{Account: "a", Amount: 3}}, got)
}

func TestPlanBondingWithoutWeightedAgents(t *testing.T) {
	t.Parallel()

	_, err := PlanBonding(0, 10, nil, 10)
	require.ErrorIs(t, err, ErrNoAgents)

	_, err = PlanBonding(0, 10, positions([]uint64{0}, []Amount{0}), 10)
	require.ErrorIs(t, err, ErrNoAgents)
}

func TestPlanUnbonding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights []uint64
		staked  []Amount
		pooled  Amount
		amount  Amount
		want    []Allocation
	}{
		{
			name:    "most overweight first",
			weights: []uint64{1, 1, 2},
			staked:  []Amount{150, 100, 150},
			pooled:  300,
			amount:  100,
			want:    []Allocation{{Account: "a", Amount: 75}, {Account: "b", Amount: 25}},
		},
		{
			name:    "residual taken from remaining stake",
			weights: []uint64{1, 1},
			staked:  []Amount{50, 50},
			pooled:  100,
			amount:  50,
			want:    []Allocation{{Account: "a", Amount: 50}},
		},
		{
			name:    "capped at staked",
			weights: []uint64{0, 1},
			staked:  []Amount{5, 100},
			pooled:  95,
			amount:  10,
			want:    []Allocation{{Account: "a", Amount: 5}, {Account: "b", Amount: 5}},
		},
		{
			name:    "drain everything",
			weights: []uint64{1, 1},
			staked:  []Amount{60, 40},
			pooled:  0,
			amount:  100,
			want:    []Allocation{{Account: "a", Amount: 60}, {Account: "b", Amount: 40}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var totalWeight uint64
			for _, weight := range tc.weights {
				totalWeight += weight
			}

			got, err := PlanUnbonding(totalWeight, tc.pooled, positions(tc.weights, tc.staked), tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanUnbondingFailsOnInsufficientStake(t *testing.T) {
	t.Parallel()

	_, err := PlanUnbonding(2, 0, positions([]uint64{1, 1}, []Amount{10, 10}), 30)
	require.ErrorIs(t, err, ErrInsufficientStake)
}

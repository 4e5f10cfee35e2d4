package domain

import (
	"fmt"
	"sort"
)

// AgentPosition is one registered agent as seen by the rebalancer.
type AgentPosition struct {
	Account AccountID
	Weight  uint64
	Staked  Amount
}

type WeightImbalance struct {
	Account   AccountID
	Weight    uint64
	Staked    Amount
	Target    Amount
	Imbalance int64
}

// WeightImbalances lists agents in registration order. A positive imbalance
// means the agent is below its target share of TotalPooled.
type WeightImbalances struct {
	TotalWeight uint64
	TotalPooled Amount
	Agents      []WeightImbalance
}

// Allocation is an amount routed to, or requested from, one agent.
type Allocation struct {
	Account AccountID
	Amount  Amount
}

// ComputeImbalances returns per-agent targets and imbalances against
// totalPooled. With no weight registered it returns no agents.
func ComputeImbalances(totalWeight uint64, totalPooled Amount, positions []AgentPosition) (WeightImbalances, error) {
	result := WeightImbalances{TotalWeight: totalWeight, TotalPooled: totalPooled}
	if totalWeight == 0 {
		return result, nil
	}

	agents, err := imbalances(totalWeight, totalPooled, positions)
	if err != nil {
		return WeightImbalances{}, err
	}
	result.Agents = agents
	return result, nil
}

func imbalances(totalWeight uint64, totalPooled Amount, positions []AgentPosition) ([]WeightImbalance, error) {
	agents := make([]WeightImbalance, 0, len(positions))
	for _, position := range positions {
		var target Amount
		if totalWeight > 0 {
			var err error
			target, err = ProRata(Amount(position.Weight), totalPooled, Amount(totalWeight))
			if err != nil {
				return nil, fmt.Errorf("target for %s: %w", position.Account, err)
			}
		}

		imbalance, err := signedDiff(target, position.Staked)
		if err != nil {
			return nil, fmt.Errorf("imbalance for %s: %w", position.Account, err)
		}

		agents = append(agents, WeightImbalance{
			Account:   position.Account,
			Weight:    position.Weight,
			Staked:    position.Staked,
			Target:    target,
			Imbalance: imbalance,
		})
	}
	return agents, nil
}

// PlanBonding routes amount to weighted agents. totalPooled must already
// include amount. Deficits are filled largest first; what is left is split
// by weight and rounding dust goes to the first weighted agent.
func PlanBonding(totalWeight uint64, totalPooled Amount, positions []AgentPosition, amount Amount) ([]Allocation, error) {
	if amount == 0 {
		return nil, nil
	}

	weighted := make([]int, 0, len(positions))
	for i, position := range positions {
		if position.Weight > 0 {
			weighted = append(weighted, i)
		}
	}
	if totalWeight == 0 || len(weighted) == 0 {
		return nil, ErrNoAgents
	}

	agents, err := imbalances(totalWeight, totalPooled, positions)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(weighted))
	copy(order, weighted)
	sort.SliceStable(order, func(a, b int) bool {
		return agents[order[a]].Imbalance > agents[order[b]].Imbalance
	})

	planned := make([]Amount, len(positions))
	remaining := amount
	for _, i := range order {
		if remaining == 0 {
			break
		}
		deficit := agents[i].Imbalance
		if deficit <= 0 {
			break
		}
		give := min(remaining, Amount(deficit))
		planned[i] += give
		remaining -= give
	}

	if remaining > 0 {
		split := remaining
		for _, i := range weighted {
			share, err := ProRata(split, Amount(positions[i].Weight), Amount(totalWeight))
			if err != nil {
				return nil, err
			}
			planned[i] += share
			remaining -= share
		}
		planned[weighted[0]] += remaining
	}

	return allocations(positions, planned), nil
}

// PlanUnbonding sources amount from agents, most over target first.
// totalPooled is the value the pool will hold once amount has left it. No
// agent is asked for more than it has staked.
func PlanUnbonding(totalWeight uint64, totalPooled Amount, positions []AgentPosition, amount Amount) ([]Allocation, error) {
	if amount == 0 {
		return nil, nil
	}

	available, err := totalStaked(positions)
	if err != nil {
		return nil, err
	}
	if available < amount {
		return nil, fmt.Errorf("need %s, staked %s: %w", amount, available, ErrInsufficientStake)
	}

	agents, err := imbalances(totalWeight, totalPooled, positions)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(agents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return agents[order[a]].Imbalance < agents[order[b]].Imbalance
	})

	planned := make([]Amount, len(positions))
	remaining := amount
	for _, i := range order {
		if remaining == 0 {
			break
		}
		if agents[i].Imbalance >= 0 {
			break
		}
		over := Amount(-agents[i].Imbalance)
		take := min(remaining, over, positions[i].Staked)
		planned[i] += take
		remaining -= take
	}

	for _, i := range order {
		if remaining == 0 {
			break
		}
		take := min(remaining, positions[i].Staked-planned[i])
		planned[i] += take
		remaining -= take
	}

	return allocations(positions, planned), nil
}

func totalStaked(positions []AgentPosition) (Amount, error) {
	var total Amount
	for _, position := range positions {
		var err error
		if total, err = AddAmounts(total, position.Staked); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func allocations(positions []AgentPosition, planned []Amount) []Allocation {
	result := make([]Allocation, 0, len(positions))
	for i, amount := range planned {
		if amount == 0 {
			continue
		}
		result = append(result, Allocation{Account: positions[i].Account, Amount: amount})
	}
	return result
}

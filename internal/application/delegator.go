package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
	"github.com/rs/zerolog"
)

// Delegator spreads pooled funds across the registered staking agents.
type Delegator struct {
	registry ports.Registry
	agents   ports.AgentDirectory
	logger   zerolog.Logger
}

func NewDelegator(registry ports.Registry, agents ports.AgentDirectory, logger zerolog.Logger) *Delegator {
	return &Delegator{registry: registry, agents: agents, logger: logger}
}

type agentSet struct {
	totalWeight uint64
	positions   []domain.AgentPosition
	handles     map[domain.AccountID]ports.StakingAgent
}

func (d *Delegator) load(ctx context.Context) (agentSet, error) {
	totalWeight, registered, err := d.registry.GetAgents(ctx)
	if err != nil {
		return agentSet{}, fmt.Errorf("get agents: %w", err)
	}

	set := agentSet{
		totalWeight: totalWeight,
		positions:   make([]domain.AgentPosition, 0, len(registered)),
		handles:     make(map[domain.AccountID]ports.StakingAgent, len(registered)),
	}
	for _, entry := range registered {
		agent, err := d.agents.Agent(ctx, entry.Account)
		if err != nil {
			return agentSet{}, fmt.Errorf("resolve agent %s: %w", entry.Account, err)
		}
		staked, err := agent.StakedValue(ctx)
		if err != nil {
			return agentSet{}, fmt.Errorf("staked value of %s: %w", entry.Account, err)
		}

		set.positions = append(set.positions, domain.AgentPosition{
			Account: entry.Account,
			Weight:  entry.Weight,
			Staked:  staked,
		})
		set.handles[entry.Account] = agent
	}

	return set, nil
}

// WeightImbalances reports per-agent targets against totalPooled.
func (d *Delegator) WeightImbalances(ctx context.Context, totalPooled domain.Amount) (domain.WeightImbalances, error) {
	set, err := d.load(ctx)
	if err != nil {
		return domain.WeightImbalances{}, err
	}
	return domain.ComputeImbalances(set.totalWeight, totalPooled, set.positions)
}

type plan struct {
	set         agentSet
	allocations []domain.Allocation
}

// planBonding decides where amount goes. totalPooled must already include it.
func (d *Delegator) planBonding(ctx context.Context, totalPooled, amount domain.Amount) (plan, error) {
	set, err := d.load(ctx)
	if err != nil {
		return plan{}, err
	}
	allocations, err := domain.PlanBonding(set.totalWeight, totalPooled, set.positions, amount)
	if err != nil {
		return plan{}, fmt.Errorf("plan bonding: %w", err)
	}
	return plan{set: set, allocations: allocations}, nil
}

func (d *Delegator) bond(ctx context.Context, p plan) error {
	for _, allocation := range p.allocations {
		if err := p.set.handles[allocation.Account].Deposit(ctx, allocation.Amount); err != nil {
			return fmt.Errorf("deposit %s to %s: %w", allocation.Amount, allocation.Account, err)
		}
		d.logger.Debug().
			Str("agent", string(allocation.Account)).
			Stringer("amount", allocation.Amount).
			Msg("agent deposit")
	}
	return nil
}

// DelegateBonding deposits amount, already counted in pool.TotalPooled, with
// the most underweight agents.
func (d *Delegator) DelegateBonding(ctx context.Context, pool *domain.PoolState, amount domain.Amount) error {
	p, err := d.planBonding(ctx, pool.TotalPooled, amount)
	if err != nil {
		return err
	}
	return d.bond(ctx, p)
}

// planUnbonding decides which agents release amount, measuring imbalances
// against the pool value that remains afterwards.
func (d *Delegator) planUnbonding(ctx context.Context, pool domain.PoolState, amount domain.Amount) (plan, domain.Amount, error) {
	remaining, err := domain.SubAmount(pool.TotalPooled, amount)
	if err != nil {
		return plan{}, 0, fmt.Errorf("unbond %s of %s pooled: %w", amount, pool.TotalPooled, err)
	}

	set, err := d.load(ctx)
	if err != nil {
		return plan{}, 0, err
	}
	allocations, err := domain.PlanUnbonding(set.totalWeight, remaining, set.positions, amount)
	if err != nil {
		return plan{}, 0, fmt.Errorf("plan unbonding: %w", err)
	}
	return plan{set: set, allocations: allocations}, remaining, nil
}

func (d *Delegator) unbond(ctx context.Context, p plan) error {
	for _, allocation := range p.allocations {
		if err := p.set.handles[allocation.Account].StartUnbond(ctx, allocation.Amount); err != nil {
			return fmt.Errorf("start unbond %s on %s: %w", allocation.Amount, allocation.Account, err)
		}
		d.logger.Debug().
			Str("agent", string(allocation.Account)).
			Stringer("amount", allocation.Amount).
			Msg("agent unbond started")
	}
	return nil
}

// DelegateUnbonding asks agents to start unbonding amount and removes it
// from pool.TotalPooled.
func (d *Delegator) DelegateUnbonding(ctx context.Context, pool *domain.PoolState, amount domain.Amount) error {
	if amount == 0 {
		return nil
	}

	p, remaining, err := d.planUnbonding(ctx, *pool, amount)
	if err != nil {
		return err
	}
	if err := d.unbond(ctx, p); err != nil {
		return err
	}

	pool.TotalPooled = remaining
	return nil
}

// DelegateWithdrawUnbonded collects matured unbonding funds from every
// agent. Agents with nothing ready are skipped.
func (d *Delegator) DelegateWithdrawUnbonded(ctx context.Context) (domain.Amount, error) {
	_, registered, err := d.registry.GetAgents(ctx)
	if err != nil {
		return 0, fmt.Errorf("get agents: %w", err)
	}

	var total domain.Amount
	for _, entry := range registered {
		agent, err := d.agents.Agent(ctx, entry.Account)
		if err != nil {
			return 0, fmt.Errorf("resolve agent %s: %w", entry.Account, err)
		}

		amount, err := agent.WithdrawUnbonded(ctx)
		if errors.Is(err, domain.ErrNothingToWithdraw) {
			d.logger.Warn().Str("agent", string(entry.Account)).Msg("nothing to withdraw")
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("withdraw unbonded from %s: %w", entry.Account, err)
		}

		if total, err = domain.AddAmounts(total, amount); err != nil {
			return 0, err
		}
	}

	return total, nil
}

// DelegateCompound restakes rewards on every agent and adds the compounded
// total to pool.TotalPooled. It returns the compounded and incentive sums.
func (d *Delegator) DelegateCompound(ctx context.Context, pool *domain.PoolState) (domain.Amount, domain.Amount, error) {
	_, registered, err := d.registry.GetAgents(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("get agents: %w", err)
	}

	var compounded, incentive domain.Amount
	for _, entry := range registered {
		agent, err := d.agents.Agent(ctx, entry.Account)
		if err != nil {
			return 0, 0, fmt.Errorf("resolve agent %s: %w", entry.Account, err)
		}

		restaked, paid, err := agent.Compound(ctx, pool.IncentivePercentage)
		if errors.Is(err, domain.ErrNothingToClaim) {
			continue
		}
		if err != nil {
			return 0, 0, fmt.Errorf("compound %s: %w", entry.Account, err)
		}

		if compounded, err = domain.AddAmounts(compounded, restaked); err != nil {
			return 0, 0, err
		}
		if incentive, err = domain.AddAmounts(incentive, paid); err != nil {
			return 0, 0, err
		}
	}

	pooled, err := domain.AddAmounts(pool.TotalPooled, compounded)
	if err != nil {
		return 0, 0, err
	}
	pool.TotalPooled = pooled

	return compounded, incentive, nil
}

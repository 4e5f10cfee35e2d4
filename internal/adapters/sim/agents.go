package sim

import (
	"context"
	"fmt"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
)

type registry struct {
	chain *Chain
}

func (c *Chain) Registry() ports.Registry {
	return registry{chain: c}
}

func (r registry) GetAgents(_ context.Context) (uint64, []ports.RegisteredAgent, error) {
	r.chain.mu.Lock()
	defer r.chain.mu.Unlock()

	var total uint64
	agents := make([]ports.RegisteredAgent, 0, len(r.chain.state.Agents))
	for _, agent := range r.chain.state.Agents {
		next := total + agent.Weight
		if next < total {
			return 0, nil, domain.ErrArithmeticOverflow
		}
		total = next
		agents = append(agents, ports.RegisteredAgent{Account: agent.Account, Weight: agent.Weight})
	}
	return total, agents, nil
}

type directory struct {
	chain *Chain
}

func (c *Chain) Agents() ports.AgentDirectory {
	return directory{chain: c}
}

func (d directory) Agent(_ context.Context, account domain.AccountID) (ports.StakingAgent, error) {
	d.chain.mu.Lock()
	defer d.chain.mu.Unlock()

	if d.chain.indexOf(account) < 0 {
		return nil, fmt.Errorf("agent %s: %w", account, ErrAgentNotFound)
	}
	return &agent{chain: d.chain, account: account}, nil
}

// agent mirrors a nomination agent: it stakes what the vault deposits,
// releases unbonded chunks after the unbonding period and restakes rewards.
type agent struct {
	chain   *Chain
	account domain.AccountID
}

func (a *agent) locate() (*AgentState, error) {
	i := a.chain.indexOf(a.account)
	if i < 0 {
		return nil, fmt.Errorf("agent %s: %w", a.account, ErrAgentNotFound)
	}
	return &a.chain.state.Agents[i], nil
}

func (a *agent) Deposit(_ context.Context, amount domain.Amount) error {
	c := a.chain
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := a.locate()
	if err != nil {
		return err
	}
	staked, err := domain.AddAmounts(state.Staked, amount)
	if err != nil {
		return err
	}
	if err := c.debit(c.state.Balances, c.vault, amount); err != nil {
		return fmt.Errorf("deposit to %s: %w", a.account, err)
	}
	state.Staked = staked
	return nil
}

func (a *agent) StartUnbond(_ context.Context, amount domain.Amount) error {
	c := a.chain
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := a.locate()
	if err != nil {
		return err
	}
	if state.Staked < amount {
		return fmt.Errorf("agent %s stakes %s, asked %s: %w", a.account, state.Staked, amount, domain.ErrInsufficientStake)
	}

	state.Staked -= amount
	state.Unbonding = append(state.Unbonding, UnbondChunk{
		Amount:    amount,
		ReleaseAt: c.clock.Now().Add(c.unbondingPeriod),
	})
	return nil
}

func (a *agent) WithdrawUnbonded(_ context.Context) (domain.Amount, error) {
	c := a.chain
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := a.locate()
	if err != nil {
		return 0, err
	}

	now := c.clock.Now()
	var released domain.Amount
	pending := state.Unbonding[:0:0]
	for _, chunk := range state.Unbonding {
		if now.Before(chunk.ReleaseAt) {
			pending = append(pending, chunk)
			continue
		}
		if released, err = domain.AddAmounts(released, chunk.Amount); err != nil {
			return 0, err
		}
	}
	if released == 0 {
		return 0, domain.ErrNothingToWithdraw
	}

	if err := c.credit(c.state.Balances, c.vault, released); err != nil {
		return 0, err
	}
	state.Unbonding = pending
	return released, nil
}

func (a *agent) Compound(_ context.Context, incentive domain.Bips) (domain.Amount, domain.Amount, error) {
	c := a.chain
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := a.locate()
	if err != nil {
		return 0, 0, err
	}
	if state.Rewards == 0 {
		return 0, 0, nil
	}

	paid, err := domain.ProRata(state.Rewards, domain.Amount(incentive), domain.Amount(domain.BIPS))
	if err != nil {
		return 0, 0, err
	}
	compounded := state.Rewards - paid
	staked, err := domain.AddAmounts(state.Staked, compounded)
	if err != nil {
		return 0, 0, err
	}
	if err := c.credit(c.state.Balances, c.vault, paid); err != nil {
		return 0, 0, err
	}

	state.Staked = staked
	state.Rewards = 0
	return compounded, paid, nil
}

func (a *agent) StakedValue(_ context.Context) (domain.Amount, error) {
	a.chain.mu.Lock()
	defer a.chain.mu.Unlock()

	state, err := a.locate()
	if err != nil {
		return 0, err
	}
	return state.Staked, nil
}

func (a *agent) UnbondingValue(_ context.Context) (domain.Amount, error) {
	a.chain.mu.Lock()
	defer a.chain.mu.Unlock()

	state, err := a.locate()
	if err != nil {
		return 0, err
	}
	var total domain.Amount
	for _, chunk := range state.Unbonding {
		if total, err = domain.AddAmounts(total, chunk.Amount); err != nil {
			return 0, err
		}
	}
	return total, nil
}

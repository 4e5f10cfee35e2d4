// Package sim is an in-process stand-in for the chain the vault runs on: a
// base-asset ledger, the receipt-token ledger, the agent registry and the
// staking agents themselves.
package sim

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrAgentNotFound         = errors.New("agent not found")
	ErrAgentExists           = errors.New("agent already registered")
	ErrAgentNotEmpty         = errors.New("agent still holds stake")
)

type UnbondChunk struct {
	Amount    domain.Amount
	ReleaseAt time.Time
}

type AgentState struct {
	Account   domain.AccountID
	Weight    uint64
	Staked    domain.Amount
	Rewards   domain.Amount
	Unbonding []UnbondChunk
}

// State is a plain copy of everything the chain holds, used to persist it
// between runs.
type State struct {
	Balances   map[domain.AccountID]domain.Amount
	Shares     map[domain.AccountID]domain.Amount
	Allowances map[domain.AccountID]map[domain.AccountID]domain.Amount
	Supply     domain.Amount
	Agents     []AgentState
}

type Chain struct {
	mu sync.Mutex

	vault           domain.AccountID
	unbondingPeriod time.Duration
	clock           ports.Clock
	state           State
}

func New(vault domain.AccountID, unbondingPeriod time.Duration, clock ports.Clock) *Chain {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	chain := &Chain{vault: vault, unbondingPeriod: unbondingPeriod, clock: clock}
	chain.Restore(State{})
	return chain
}

// Restore replaces the chain contents with a copy of state.
func (c *Chain) Restore(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = cloneState(state)
}

// Snapshot returns a copy of the chain contents.
func (c *Chain) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

func cloneState(state State) State {
	clone := State{
		Balances:   make(map[domain.AccountID]domain.Amount, len(state.Balances)),
		Shares:     make(map[domain.AccountID]domain.Amount, len(state.Shares)),
		Allowances: make(map[domain.AccountID]map[domain.AccountID]domain.Amount, len(state.Allowances)),
		Supply:     state.Supply,
		Agents:     make([]AgentState, 0, len(state.Agents)),
	}
	for account, amount := range state.Balances {
		clone.Balances[account] = amount
	}
	for account, amount := range state.Shares {
		clone.Shares[account] = amount
	}
	for owner, spenders := range state.Allowances {
		copied := make(map[domain.AccountID]domain.Amount, len(spenders))
		for spender, amount := range spenders {
			copied[spender] = amount
		}
		clone.Allowances[owner] = copied
	}
	for _, agent := range state.Agents {
		agent.Unbonding = append([]UnbondChunk(nil), agent.Unbonding...)
		clone.Agents = append(clone.Agents, agent)
	}
	return clone
}

// Fund credits account with newly created base asset.
func (c *Chain) Fund(account domain.AccountID, amount domain.Amount) error {
	if strings.TrimSpace(string(account)) == "" {
		return fmt.Errorf("account is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	balance, err := domain.AddAmounts(c.state.Balances[account], amount)
	if err != nil {
		return err
	}
	c.state.Balances[account] = balance
	return nil
}

// Approve lets spender move up to amount of owner's receipt tokens.
func (c *Chain) Approve(owner, spender domain.AccountID, amount domain.Amount) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Allowances[owner] == nil {
		c.state.Allowances[owner] = map[domain.AccountID]domain.Amount{}
	}
	c.state.Allowances[owner][spender] = amount
}

func (c *Chain) Allowance(owner, spender domain.AccountID) domain.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Allowances[owner][spender]
}

func (c *Chain) AddAgent(account domain.AccountID, weight uint64) error {
	if strings.TrimSpace(string(account)) == "" {
		return fmt.Errorf("agent account is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(account) >= 0 {
		return fmt.Errorf("agent %s: %w", account, ErrAgentExists)
	}
	c.state.Agents = append(c.state.Agents, AgentState{Account: account, Weight: weight})
	return nil
}

func (c *Chain) UpdateAgent(account domain.AccountID, weight uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(account)
	if i < 0 {
		return fmt.Errorf("agent %s: %w", account, ErrAgentNotFound)
	}
	c.state.Agents[i].Weight = weight
	return nil
}

// RemoveAgent unregisters an agent that holds no stake and nothing unbonding.
func (c *Chain) RemoveAgent(account domain.AccountID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(account)
	if i < 0 {
		return fmt.Errorf("agent %s: %w", account, ErrAgentNotFound)
	}
	agent := c.state.Agents[i]
	if agent.Staked > 0 || len(agent.Unbonding) > 0 {
		return fmt.Errorf("agent %s: %w", account, ErrAgentNotEmpty)
	}

	c.state.Agents = append(c.state.Agents[:i:i], c.state.Agents[i+1:]...)
	return nil
}

// Reward credits validator rewards to an agent for the next compound.
func (c *Chain) Reward(account domain.AccountID, amount domain.Amount) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(account)
	if i < 0 {
		return fmt.Errorf("agent %s: %w", account, ErrAgentNotFound)
	}
	rewards, err := domain.AddAmounts(c.state.Agents[i].Rewards, amount)
	if err != nil {
		return err
	}
	c.state.Agents[i].Rewards = rewards
	return nil
}

// AgentStates lists agents in registration order.
func (c *Chain) AgentStates() []AgentState {
	return c.Snapshot().Agents
}

func (c *Chain) indexOf(account domain.AccountID) int {
	for i, agent := range c.state.Agents {
		if agent.Account == account {
			return i
		}
	}
	return -1
}

func (c *Chain) debit(balances map[domain.AccountID]domain.Amount, account domain.AccountID, amount domain.Amount) error {
	balance := balances[account]
	if balance < amount {
		return fmt.Errorf("%s holds %s, needs %s: %w", account, balance, amount, ErrInsufficientBalance)
	}
	balances[account] = balance - amount
	return nil
}

func (c *Chain) credit(balances map[domain.AccountID]domain.Amount, account domain.AccountID, amount domain.Amount) error {
	balance, err := domain.AddAmounts(balances[account], amount)
	if err != nil {
		return err
	}
	balances[account] = balance
	return nil
}

func (c *Chain) move(balances map[domain.AccountID]domain.Amount, from, to domain.AccountID, amount domain.Amount) error {
	if _, err := domain.AddAmounts(balances[to], amount); err != nil {
		return err
	}
	if err := c.debit(balances, from, amount); err != nil {
		return err
	}
	return c.credit(balances, to, amount)
}

func sortedAccounts(values map[domain.AccountID]domain.Amount) []domain.AccountID {
	accounts := make([]domain.AccountID, 0, len(values))
	for account := range values {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })
	return accounts
}

// Holders lists base-asset and receipt-token balances by account.
func (c *Chain) Holders() (base, shares []domain.AccountID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sortedAccounts(c.state.Balances), sortedAccounts(c.state.Shares)
}

package ports

import (
	"context"

	"github.com/bnema/stakevault/internal/domain"
)

// StakingAgent holds one stake position with a single validator. Agents own
// their staked and unbonding counters; the vault only instructs them.
type StakingAgent interface {
	Deposit(ctx context.Context, amount domain.Amount) error
	StartUnbond(ctx context.Context, amount domain.Amount) error
	// WithdrawUnbonded returns released funds to the vault. It fails with
	// domain.ErrNothingToWithdraw when no unbonding chunk has matured.
	WithdrawUnbonded(ctx context.Context) (domain.Amount, error)
	// Compound restakes pending rewards and pays incentive bips of them to
	// the vault.
	Compound(ctx context.Context, incentive domain.Bips) (compounded domain.Amount, paid domain.Amount, err error)
	StakedValue(ctx context.Context) (domain.Amount, error)
	UnbondingValue(ctx context.Context) (domain.Amount, error)
}

type AgentDirectory interface {
	Agent(ctx context.Context, account domain.AccountID) (StakingAgent, error)
}

type RegisteredAgent struct {
	Account domain.AccountID
	Weight  uint64
}

// Registry lists agents in registration order together with the sum of
// their weights.
type Registry interface {
	GetAgents(ctx context.Context) (uint64, []RegisteredAgent, error)
}

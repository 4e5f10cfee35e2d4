package application

import (
	"time"

	"github.com/bnema/stakevault/internal/domain"
)

// RateScale is the share amount priced to express the exchange rate.
const RateScale domain.Amount = 1_000_000_000

type BatchInfo struct {
	ID                domain.BatchID
	TotalShares       domain.Amount
	ValueAtRedemption *domain.Amount
	RedemptionTime    *time.Time
}

type AgentStatus struct {
	domain.WeightImbalance
	Unbonding domain.Amount
}

type Status struct {
	Vault               domain.AccountID
	Roles               domain.Roles
	CreationTime        time.Time
	AsOf                time.Time
	CurrentBatch        domain.BatchID
	TotalPooled         domain.Amount
	TotalSharesMinted   domain.Amount
	VirtualShares       domain.Amount
	TotalShares         domain.Amount
	ValuePerScale       domain.Amount
	FeePercentage       domain.Bips
	IncentivePercentage domain.Bips
	MinimumStake        domain.Amount
	Era                 time.Duration
	CooldownPeriod      time.Duration
	TotalWeight         uint64
	Agents              []AgentStatus
	Batches             []BatchInfo
}

package application

import "github.com/bnema/stakevault/internal/domain"

type InitializeCommand struct {
	Owner  domain.AccountID
	Params domain.Params
}

type StakeResult struct {
	Shares        domain.Amount
	VirtualShares domain.Amount
}

type UnlockResult struct {
	UnlockID domain.UnlockID
	BatchID  domain.BatchID
}

type BatchUnlockResult struct {
	Batches     []domain.FinalizedBatch
	TotalShares domain.Amount
	TotalValue  domain.Amount
}

type RedeemResult struct {
	Withdrawn domain.Amount
	Payout    domain.Amount
	BatchID   domain.BatchID
}

type CompoundResult struct {
	Compounded domain.Amount
	Incentive  domain.Amount
}

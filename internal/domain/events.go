package domain

type EventType string

const (
	EventStaked                        EventType = "vault.staked"
	EventCompounded                    EventType = "vault.compounded"
	EventUnlockRequested               EventType = "vault.unlock_requested"
	EventUnlockCanceled                EventType = "vault.unlock_canceled"
	EventBatchUnlockSent               EventType = "vault.batch_unlock_sent"
	EventUnlockRedeemed                EventType = "vault.unlock_redeemed"
	EventFeesWithdrawn                 EventType = "vault.fees_withdrawn"
	EventFeesAdjusted                  EventType = "vault.fees_adjusted"
	EventIncentiveAdjusted             EventType = "vault.incentive_adjusted"
	EventMinimumStakeAdjusted          EventType = "vault.minimum_stake_adjusted"
	EventOwnershipTransferred          EventType = "vault.ownership_transferred"
	EventRoleAdjustFeeTransferred      EventType = "vault.role_adjust_fee_transferred"
	EventRoleAdjustFeeAdminTransferred EventType = "vault.role_adjust_fee_admin_transferred"
)

// Event is a fact emitted after a vault operation has committed.
type Event interface {
	EventType() EventType
}

type Staked struct {
	Staker        AccountID
	Amount        Amount
	NewShares     Amount
	VirtualShares Amount
}

type Compounded struct {
	Caller        AccountID
	Amount        Amount
	Incentive     Amount
	VirtualShares Amount
}

type UnlockRequested struct {
	Staker   AccountID
	Shares   Amount
	UnlockID UnlockID
	BatchID  BatchID
}

type UnlockCanceled struct {
	Staker   AccountID
	Shares   Amount
	UnlockID UnlockID
	BatchID  BatchID
}

// BatchUnlockSent is emitted once per finalized batch.
type BatchUnlockSent struct {
	BatchID       BatchID
	Shares        Amount
	VirtualShares Amount
	SpotValue     Amount
}

type UnlockRedeemed struct {
	Staker   AccountID
	Amount   Amount
	UnlockID UnlockID
	BatchID  BatchID
}

type FeesWithdrawn struct {
	Shares Amount
}

type FeesAdjusted struct {
	NewFee        Bips
	VirtualShares Amount
}

type IncentiveAdjusted struct {
	NewIncentive Bips
}

type MinimumStakeAdjusted struct {
	NewMinimumStake Amount
}

type OwnershipTransferred struct {
	NewAccount AccountID
}

type RoleAdjustFeeTransferred struct {
	NewAccount AccountID
}

type RoleAdjustFeeAdminTransferred struct {
	NewAccount AccountID
}

func (Staked) EventType() EventType                        { return EventStaked }
func (Compounded) EventType() EventType                    { return EventCompounded }
func (UnlockRequested) EventType() EventType               { return EventUnlockRequested }
func (UnlockCanceled) EventType() EventType                { return EventUnlockCanceled }
func (BatchUnlockSent) EventType() EventType               { return EventBatchUnlockSent }
func (UnlockRedeemed) EventType() EventType                { return EventUnlockRedeemed }
func (FeesWithdrawn) EventType() EventType                 { return EventFeesWithdrawn }
func (FeesAdjusted) EventType() EventType                  { return EventFeesAdjusted }
func (IncentiveAdjusted) EventType() EventType             { return EventIncentiveAdjusted }
func (MinimumStakeAdjusted) EventType() EventType          { return EventMinimumStakeAdjusted }
func (OwnershipTransferred) EventType() EventType          { return EventOwnershipTransferred }
func (RoleAdjustFeeTransferred) EventType() EventType      { return EventRoleAdjustFeeTransferred }
func (RoleAdjustFeeAdminTransferred) EventType() EventType { return EventRoleAdjustFeeAdminTransferred }

package domain

import "errors"

var (
	ErrUnauthorized            = errors.New("caller lacks the required role")
	ErrVaultNotInitialized     = errors.New("vault not initialized")
	ErrVaultAlreadyInitialized = errors.New("vault already initialized")
	ErrMinimumStake            = errors.New("stake below minimum")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidPercent          = errors.New("percentage must be below 10000 bips")
	ErrInvalidPeriod           = errors.New("period must be positive")
	ErrNoChange                = errors.New("value unchanged")

	ErrUnlockRequestNotFound = errors.New("unlock request not found")
	ErrBatchNotFound         = errors.New("batch not found")
	ErrBatchNotClosed        = errors.New("batch window has not elapsed")
	ErrDuplicateBatch        = errors.New("batch ids must be strictly ascending")
	ErrBatchAlreadyFinalized = errors.New("batch already finalized")
	ErrBatchWindowClosed     = errors.New("request batch window has closed")
	ErrBatchNotFinalized     = errors.New("batch not finalized")
	ErrCooldownActive        = errors.New("cooldown period has not elapsed")

	ErrNoAgents          = errors.New("no weighted agents registered")
	ErrInsufficientStake = errors.New("insufficient stake across agents")
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
	ErrNothingToClaim    = errors.New("nothing to claim")

	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrDivisionByZero     = errors.New("division by zero")
)

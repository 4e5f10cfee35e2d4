package domain

import (
	"fmt"
	"strings"
	"time"
)

type AccountID string

type Role string

const (
	RoleOwner          Role = "owner"
	RoleAdjustFee      Role = "adjust_fee"
	RoleAdjustFeeAdmin Role = "adjust_fee_admin"
)

type Roles struct {
	Owner          AccountID
	AdjustFee      AccountID
	AdjustFeeAdmin AccountID
}

func (r Roles) Holder(role Role) AccountID {
	switch role {
	case RoleOwner:
		return r.Owner
	case RoleAdjustFee:
		return r.AdjustFee
	case RoleAdjustFeeAdmin:
		return r.AdjustFeeAdmin
	default:
		return ""
	}
}

// Authorize fails unless caller holds role.
func (r Roles) Authorize(role Role, caller AccountID) error {
	holder := r.Holder(role)
	if holder == "" || holder != caller {
		return fmt.Errorf("%w: %s required", ErrUnauthorized, role)
	}
	return nil
}

// Params are the tunables a vault is created with.
type Params struct {
	Era                 time.Duration
	CooldownPeriod      time.Duration
	FeePercentage       Bips
	IncentivePercentage Bips
	MinimumStake        Amount
}

func DefaultParams() Params {
	return Params{
		Era:                 24 * time.Hour,
		CooldownPeriod:      14 * 24 * time.Hour,
		FeePercentage:       200,
		IncentivePercentage: 100,
		MinimumStake:        1_000_000,
	}
}

func (p Params) Validate() error {
	if p.Era <= 0 {
		return fmt.Errorf("era: %w", ErrInvalidPeriod)
	}
	if p.CooldownPeriod < 0 {
		return fmt.Errorf("cooldown: %w", ErrInvalidPeriod)
	}
	if p.FeePercentage >= BIPS {
		return fmt.Errorf("fee: %w", ErrInvalidPercent)
	}
	if p.IncentivePercentage >= BIPS {
		return fmt.Errorf("incentive: %w", ErrInvalidPercent)
	}
	return nil
}

// VaultState is the single aggregate every vault operation reads and writes.
type VaultState struct {
	Pool    PoolState
	Roles   Roles
	Unlocks map[AccountID]UserUnlocks
	Batches map[BatchID]UnlockBatch
}

// NewVaultState creates an empty vault whose three roles start with owner.
func NewVaultState(owner AccountID, params Params, now time.Time) (VaultState, error) {
	if strings.TrimSpace(string(owner)) == "" {
		return VaultState{}, fmt.Errorf("owner is required")
	}
	if err := params.Validate(); err != nil {
		return VaultState{}, err
	}

	return VaultState{
		Pool: PoolState{
			FeePercentage:       params.FeePercentage,
			IncentivePercentage: params.IncentivePercentage,
			MinimumStake:        params.MinimumStake,
			CreationTime:        now,
			Era:                 params.Era,
			CooldownPeriod:      params.CooldownPeriod,
			LastFeeUpdate:       now,
		},
		Roles: Roles{
			Owner:          owner,
			AdjustFee:      owner,
			AdjustFeeAdmin: owner,
		},
		Unlocks: map[AccountID]UserUnlocks{},
		Batches: map[BatchID]UnlockBatch{},
	}, nil
}

// Clone returns a deep copy so an operation can work on a scratch state and
// discard it on failure.
func (s VaultState) Clone() VaultState {
	clone := VaultState{
		Pool:    s.Pool,
		Roles:   s.Roles,
		Unlocks: make(map[AccountID]UserUnlocks, len(s.Unlocks)),
		Batches: make(map[BatchID]UnlockBatch, len(s.Batches)),
	}

	for user, unlocks := range s.Unlocks {
		clone.Unlocks[user] = unlocks.clone()
	}
	for id, batch := range s.Batches {
		clone.Batches[id] = batch.Clone()
	}

	return clone
}

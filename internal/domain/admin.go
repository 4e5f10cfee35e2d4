package domain

import (
	"fmt"
	"strings"
	"time"
)

// AdjustFee switches the fee percentage. Fees up to now are accrued at the
// previous percentage first.
func (s *VaultState) AdjustFee(caller AccountID, fee Bips, now time.Time) error {
	if err := s.Roles.Authorize(RoleAdjustFee, caller); err != nil {
		return err
	}
	if fee >= BIPS {
		return fmt.Errorf("fee %d: %w", fee, ErrInvalidPercent)
	}
	if fee == s.Pool.FeePercentage {
		return fmt.Errorf("fee: %w", ErrNoChange)
	}

	if err := s.Pool.UpdateFees(now); err != nil {
		return err
	}
	s.Pool.FeePercentage = fee
	return nil
}

func (s *VaultState) AdjustIncentive(caller AccountID, incentive Bips) error {
	if err := s.Roles.Authorize(RoleAdjustFee, caller); err != nil {
		return err
	}
	if incentive >= BIPS {
		return fmt.Errorf("incentive %d: %w", incentive, ErrInvalidPercent)
	}
	if incentive == s.Pool.IncentivePercentage {
		return fmt.Errorf("incentive: %w", ErrNoChange)
	}

	s.Pool.IncentivePercentage = incentive
	return nil
}

func (s *VaultState) AdjustMinimumStake(caller AccountID, minimum Amount) error {
	if err := s.Roles.Authorize(RoleOwner, caller); err != nil {
		return err
	}
	if minimum == s.Pool.MinimumStake {
		return fmt.Errorf("minimum stake: %w", ErrNoChange)
	}

	s.Pool.MinimumStake = minimum
	return nil
}

// TransferRole hands role to next. The owner role is transferred by its
// holder; both fee roles are transferred by the fee admin.
func (s *VaultState) TransferRole(role Role, caller, next AccountID) error {
	admin := RoleAdjustFeeAdmin
	if role == RoleOwner {
		admin = RoleOwner
	}
	if err := s.Roles.Authorize(admin, caller); err != nil {
		return err
	}
	if strings.TrimSpace(string(next)) == "" {
		return fmt.Errorf("new %s account is required", role)
	}

	current := s.Roles.Holder(role)
	if current == next {
		return fmt.Errorf("%s: %w", role, ErrNoChange)
	}

	switch role {
	case RoleOwner:
		s.Roles.Owner = next
	case RoleAdjustFee:
		s.Roles.AdjustFee = next
	case RoleAdjustFeeAdmin:
		s.Roles.AdjustFeeAdmin = next
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	return nil
}

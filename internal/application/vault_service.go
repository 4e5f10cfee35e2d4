package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Vault      domain.AccountID
	Repository ports.VaultStateRepository
	Registry   ports.Registry
	Agents     ports.AgentDirectory
	Shares     ports.ShareLedger
	Base       ports.BaseAsset
	Events     ports.EventPublisher
	Clock      ports.Clock
	Logger     zerolog.Logger
}

// VaultService runs one vault operation at a time. Each operation works on a
// clone of the stored state and saves it only after every collaborator call
// has succeeded.
type VaultService struct {
	mu sync.Mutex

	vault     domain.AccountID
	repo      ports.VaultStateRepository
	shares    ports.ShareLedger
	base      ports.BaseAsset
	events    ports.EventPublisher
	clock     ports.Clock
	logger    zerolog.Logger
	delegator *Delegator
}

func NewVaultService(deps Dependencies) (*VaultService, error) {
	if strings.TrimSpace(string(deps.Vault)) == "" {
		return nil, fmt.Errorf("vault account is required")
	}
	if deps.Repository == nil || deps.Registry == nil || deps.Agents == nil || deps.Shares == nil || deps.Base == nil {
		return nil, fmt.Errorf("vault service: missing dependency")
	}

	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &VaultService{
		vault:     deps.Vault,
		repo:      deps.Repository,
		shares:    deps.Shares,
		base:      deps.Base,
		events:    deps.Events,
		clock:     clock,
		logger:    deps.Logger,
		delegator: NewDelegator(deps.Registry, deps.Agents, deps.Logger),
	}, nil
}

func (s *VaultService) Vault() domain.AccountID {
	return s.vault
}

type mutation func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error)

func (s *VaultService) mutate(ctx context.Context, op string, fn mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load vault: %w", err)
	}

	state := stored.Clone()
	now := s.clock.Now()
	events, err := fn(ctx, &state, now)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	s.logger.Debug().Str("op", op).Time("at", now).Msg("vault operation committed")
	s.publish(ctx, events)
	return nil
}

func (s *VaultService) publish(ctx context.Context, events []domain.Event) {
	if s.events == nil {
		return
	}
	for _, event := range events {
		if err := s.events.Publish(ctx, event); err != nil {
			s.logger.Warn().Err(err).Str("event", string(event.EventType())).Msg("publish event")
		}
	}
}

func (s *VaultService) Initialize(ctx context.Context, cmd InitializeCommand) (domain.VaultState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		return domain.VaultState{}, domain.ErrVaultAlreadyInitialized
	case !errors.Is(err, domain.ErrVaultNotInitialized):
		return domain.VaultState{}, fmt.Errorf("load vault: %w", err)
	}

	state, err := domain.NewVaultState(cmd.Owner, cmd.Params, s.clock.Now())
	if err != nil {
		return domain.VaultState{}, err
	}
	if err := s.repo.Save(ctx, state); err != nil {
		return domain.VaultState{}, fmt.Errorf("save vault: %w", err)
	}

	s.logger.Info().Str("owner", string(cmd.Owner)).Msg("vault initialized")
	return state, nil
}

// Stake moves amount of base asset from caller into the vault, delegates it
// and mints receipt shares at the current rate.
func (s *VaultService) Stake(ctx context.Context, caller domain.AccountID, amount domain.Amount) (StakeResult, error) {
	var result StakeResult
	err := s.mutate(ctx, "stake", func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		shares, err := state.Pool.Deposit(amount, now)
		if err != nil {
			return nil, err
		}

		bonding, err := s.delegator.planBonding(ctx, state.Pool.TotalPooled, amount)
		if err != nil {
			return nil, err
		}

		if err := s.base.Transfer(ctx, caller, s.vault, amount); err != nil {
			return nil, fmt.Errorf("transfer stake: %w", err)
		}
		if err := s.delegator.bond(ctx, bonding); err != nil {
			return nil, err
		}
		if err := s.shares.Mint(ctx, caller, shares); err != nil {
			return nil, fmt.Errorf("mint shares: %w", err)
		}

		result = StakeResult{Shares: shares, VirtualShares: state.Pool.TotalSharesVirtual}
		return []domain.Event{domain.Staked{
			Staker:        caller,
			Amount:        amount,
			NewShares:     shares,
			VirtualShares: state.Pool.TotalSharesVirtual,
		}}, nil
	})
	return result, err
}

// RequestUnlock places shares of caller into the current batch window.
func (s *VaultService) RequestUnlock(ctx context.Context, caller domain.AccountID, shares domain.Amount) (UnlockResult, error) {
	var result UnlockResult
	err := s.mutate(ctx, "request_unlock", func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		request, err := state.RequestUnlock(caller, shares, now)
		if err != nil {
			return nil, err
		}

		if err := s.shares.TransferFrom(ctx, caller, s.vault, shares); err != nil {
			return nil, fmt.Errorf("take shares into custody: %w", err)
		}

		result = UnlockResult{UnlockID: request.ID, BatchID: request.BatchID}
		return []domain.Event{domain.UnlockRequested{
			Staker:   caller,
			Shares:   shares,
			UnlockID: request.ID,
			BatchID:  request.BatchID,
		}}, nil
	})
	return result, err
}

func (s *VaultService) CancelUnlockRequest(ctx context.Context, caller domain.AccountID, id domain.UnlockID) error {
	return s.mutate(ctx, "cancel_unlock", func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		request, err := state.CancelUnlock(caller, id, now)
		if err != nil {
			return nil, err
		}

		if err := s.shares.Transfer(ctx, caller, request.ShareAmount); err != nil {
			return nil, fmt.Errorf("refund shares: %w", err)
		}

		return []domain.Event{domain.UnlockCanceled{
			Staker:   caller,
			Shares:   request.ShareAmount,
			UnlockID: request.ID,
			BatchID:  request.BatchID,
		}}, nil
	})
}

// SendBatchUnlockRequests finalizes past batches at one rate snapshot,
// sources their value from the agents and burns their shares.
func (s *VaultService) SendBatchUnlockRequests(ctx context.Context, ids []domain.BatchID) (BatchUnlockResult, error) {
	var result BatchUnlockResult
	err := s.mutate(ctx, "send_batch_unlock", func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		finalized, err := state.FinalizeBatches(ids, now)
		if err != nil {
			return nil, err
		}

		if err := s.delegator.DelegateUnbonding(ctx, &state.Pool, finalized.TotalValue); err != nil {
			return nil, err
		}

		if err := state.Pool.BurnShares(finalized.TotalShares); err != nil {
			return nil, err
		}
		if finalized.TotalShares > 0 {
			if err := s.shares.Burn(ctx, finalized.TotalShares); err != nil {
				return nil, fmt.Errorf("burn shares: %w", err)
			}
		}

		result = BatchUnlockResult{
			Batches:     finalized.Batches,
			TotalShares: finalized.TotalShares,
			TotalValue:  finalized.TotalValue,
		}

		events := make([]domain.Event, 0, len(finalized.Batches))
		for _, batch := range finalized.Batches {
			events = append(events, domain.BatchUnlockSent{
				BatchID:       batch.ID,
				Shares:        batch.Shares,
				VirtualShares: finalized.VirtualShares,
				SpotValue:     batch.Value,
			})
		}
		return events, nil
	})
	return result, err
}

// DelegateWithdrawUnbonded pulls matured unbonding funds back into the vault.
func (s *VaultService) DelegateWithdrawUnbonded(ctx context.Context) (domain.Amount, error) {
	var withdrawn domain.Amount
	err := s.mutate(ctx, "withdraw_unbonded", func(ctx context.Context, _ *domain.VaultState, _ time.Time) ([]domain.Event, error) {
		var err error
		withdrawn, err = s.delegator.DelegateWithdrawUnbonded(ctx)
		return nil, err
	})
	return withdrawn, err
}

// Redeem pays user for one unlock request once its batch cooldown is over.
func (s *VaultService) Redeem(ctx context.Context, user domain.AccountID, id domain.UnlockID) (RedeemResult, error) {
	return s.redeem(ctx, user, id, false)
}

// RedeemWithWithdraw collects unbonded funds from every agent before paying.
func (s *VaultService) RedeemWithWithdraw(ctx context.Context, user domain.AccountID, id domain.UnlockID) (RedeemResult, error) {
	return s.redeem(ctx, user, id, true)
}

func (s *VaultService) redeem(ctx context.Context, user domain.AccountID, id domain.UnlockID, withdraw bool) (RedeemResult, error) {
	var result RedeemResult
	err := s.mutate(ctx, "redeem", func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		if withdraw {
			withdrawn, err := s.delegator.DelegateWithdrawUnbonded(ctx)
			if err != nil {
				return nil, err
			}
			result.Withdrawn = withdrawn
		}

		redemption, err := state.Redeem(user, id, now)
		if err != nil {
			return nil, err
		}

		if err := s.base.Transfer(ctx, s.vault, user, redemption.Payout); err != nil {
			return nil, fmt.Errorf("pay redemption: %w", err)
		}

		result.Payout = redemption.Payout
		result.BatchID = redemption.Request.BatchID
		return []domain.Event{domain.UnlockRedeemed{
			Staker:   user,
			Amount:   redemption.Payout,
			UnlockID: redemption.Request.ID,
			BatchID:  redemption.Request.BatchID,
		}}, nil
	})
	return result, err
}

// Compound restakes agent rewards and pays the incentive to caller.
func (s *VaultService) Compound(ctx context.Context, caller domain.AccountID) (CompoundResult, error) {
	var result CompoundResult
	err := s.mutate(ctx, "compound", func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		compounded, incentive, err := s.delegator.DelegateCompound(ctx, &state.Pool)
		if err != nil {
			return nil, err
		}

		if incentive > 0 {
			if err := s.base.Transfer(ctx, s.vault, caller, incentive); err != nil {
				return nil, fmt.Errorf("pay incentive: %w", err)
			}
		}

		virtual, err := state.Pool.VirtualSharesAt(now)
		if err != nil {
			return nil, err
		}

		result = CompoundResult{Compounded: compounded, Incentive: incentive}
		return []domain.Event{domain.Compounded{
			Caller:        caller,
			Amount:        compounded,
			Incentive:     incentive,
			VirtualShares: virtual,
		}}, nil
	})
	return result, err
}

// WithdrawFees mints the accrued fee shares to the owner.
func (s *VaultService) WithdrawFees(ctx context.Context, caller domain.AccountID) (domain.Amount, error) {
	var minted domain.Amount
	err := s.mutate(ctx, "withdraw_fees", func(ctx context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		if err := state.Roles.Authorize(domain.RoleOwner, caller); err != nil {
			return nil, err
		}
		if err := state.Pool.UpdateFees(now); err != nil {
			return nil, err
		}

		shares, err := state.Pool.ClaimFees()
		if err != nil {
			return nil, err
		}
		if shares > 0 {
			if err := s.shares.Mint(ctx, state.Roles.Owner, shares); err != nil {
				return nil, fmt.Errorf("mint fee shares: %w", err)
			}
		}

		minted = shares
		return []domain.Event{domain.FeesWithdrawn{Shares: shares}}, nil
	})
	return minted, err
}

func (s *VaultService) AdjustFee(ctx context.Context, caller domain.AccountID, fee domain.Bips) error {
	return s.mutate(ctx, "adjust_fee", func(_ context.Context, state *domain.VaultState, now time.Time) ([]domain.Event, error) {
		if err := state.AdjustFee(caller, fee, now); err != nil {
			return nil, err
		}
		return []domain.Event{domain.FeesAdjusted{NewFee: fee, VirtualShares: state.Pool.TotalSharesVirtual}}, nil
	})
}

func (s *VaultService) AdjustIncentive(ctx context.Context, caller domain.AccountID, incentive domain.Bips) error {
	return s.mutate(ctx, "adjust_incentive", func(_ context.Context, state *domain.VaultState, _ time.Time) ([]domain.Event, error) {
		if err := state.AdjustIncentive(caller, incentive); err != nil {
			return nil, err
		}
		return []domain.Event{domain.IncentiveAdjusted{NewIncentive: incentive}}, nil
	})
}

func (s *VaultService) AdjustMinimumStake(ctx context.Context, caller domain.AccountID, minimum domain.Amount) error {
	return s.mutate(ctx, "adjust_minimum_stake", func(_ context.Context, state *domain.VaultState, _ time.Time) ([]domain.Event, error) {
		if err := state.AdjustMinimumStake(caller, minimum); err != nil {
			return nil, err
		}
		return []domain.Event{domain.MinimumStakeAdjusted{NewMinimumStake: minimum}}, nil
	})
}

func (s *VaultService) TransferRoleOwner(ctx context.Context, caller, next domain.AccountID) error {
	return s.transferRole(ctx, domain.RoleOwner, caller, next, domain.OwnershipTransferred{NewAccount: next})
}

func (s *VaultService) TransferRoleAdjustFee(ctx context.Context, caller, next domain.AccountID) error {
	return s.transferRole(ctx, domain.RoleAdjustFee, caller, next, domain.RoleAdjustFeeTransferred{NewAccount: next})
}

func (s *VaultService) TransferRoleAdjustFeeAdmin(ctx context.Context, caller, next domain.AccountID) error {
	return s.transferRole(ctx, domain.RoleAdjustFeeAdmin, caller, next, domain.RoleAdjustFeeAdminTransferred{NewAccount: next})
}

func (s *VaultService) transferRole(ctx context.Context, role domain.Role, caller, next domain.AccountID, event domain.Event) error {
	return s.mutate(ctx, "transfer_role_"+string(role), func(_ context.Context, state *domain.VaultState, _ time.Time) ([]domain.Event, error) {
		if err := state.TransferRole(role, caller, next); err != nil {
			return nil, err
		}
		return []domain.Event{event}, nil
	})
}

func (s *VaultService) load(ctx context.Context) (domain.VaultState, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.Load(ctx)
	if err != nil {
		return domain.VaultState{}, time.Time{}, fmt.Errorf("load vault: %w", err)
	}
	return state, s.clock.Now(), nil
}

// Status reports the vault with fees accrued up to now. Nothing is saved.
func (s *VaultService) Status(ctx context.Context) (Status, error) {
	state, now, err := s.load(ctx)
	if err != nil {
		return Status{}, err
	}

	pool, err := state.Pool.At(now)
	if err != nil {
		return Status{}, err
	}
	totalShares, err := pool.TotalShares()
	if err != nil {
		return Status{}, err
	}
	value, err := pool.BaseFromShares(RateScale)
	if err != nil {
		return Status{}, err
	}

	agents, totalWeight, err := s.agentStatuses(ctx, pool.TotalPooled)
	if err != nil {
		return Status{}, err
	}

	return Status{
		Vault:               s.vault,
		Roles:               state.Roles,
		CreationTime:        pool.CreationTime,
		AsOf:                now,
		CurrentBatch:        pool.BatchIDAt(now),
		TotalPooled:         pool.TotalPooled,
		TotalSharesMinted:   pool.TotalSharesMinted,
		VirtualShares:       pool.TotalSharesVirtual,
		TotalShares:         totalShares,
		ValuePerScale:       value,
		FeePercentage:       pool.FeePercentage,
		IncentivePercentage: pool.IncentivePercentage,
		MinimumStake:        pool.MinimumStake,
		Era:                 pool.Era,
		CooldownPeriod:      pool.CooldownPeriod,
		TotalWeight:         totalWeight,
		Agents:              agents,
		Batches:             batchInfos(state),
	}, nil
}

func (s *VaultService) agentStatuses(ctx context.Context, totalPooled domain.Amount) ([]AgentStatus, uint64, error) {
	imbalances, err := s.delegator.WeightImbalances(ctx, totalPooled)
	if err != nil {
		return nil, 0, err
	}

	agents := make([]AgentStatus, 0, len(imbalances.Agents))
	for _, imbalance := range imbalances.Agents {
		agent, err := s.delegator.agents.Agent(ctx, imbalance.Account)
		if err != nil {
			return nil, 0, fmt.Errorf("resolve agent %s: %w", imbalance.Account, err)
		}
		unbonding, err := agent.UnbondingValue(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("unbonding value of %s: %w", imbalance.Account, err)
		}
		agents = append(agents, AgentStatus{WeightImbalance: imbalance, Unbonding: unbonding})
	}
	return agents, imbalances.TotalWeight, nil
}

func batchInfos(state domain.VaultState) []BatchInfo {
	infos := make([]BatchInfo, 0, len(state.Batches))
	for id, batch := range state.Batches {
		infos = append(infos, toBatchInfo(id, batch))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

func toBatchInfo(id domain.BatchID, batch domain.UnlockBatch) BatchInfo {
	copied := batch.Clone()
	return BatchInfo{
		ID:                id,
		TotalShares:       copied.TotalShares,
		ValueAtRedemption: copied.ValueAtRedemption,
		RedemptionTime:    copied.RedemptionTime,
	}
}

func (s *VaultService) CurrentBatchID(ctx context.Context) (domain.BatchID, error) {
	state, now, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return state.Pool.BatchIDAt(now), nil
}

func (s *VaultService) BatchInfo(ctx context.Context, id domain.BatchID) (BatchInfo, error) {
	state, _, err := s.load(ctx)
	if err != nil {
		return BatchInfo{}, err
	}
	batch, ok := state.Batches[id]
	if !ok {
		return BatchInfo{}, fmt.Errorf("batch %d: %w", id, domain.ErrBatchNotFound)
	}
	return toBatchInfo(id, batch), nil
}

func (s *VaultService) UnlockRequests(ctx context.Context, user domain.AccountID) ([]domain.UnlockRequest, error) {
	state, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return state.UnlockRequests(user), nil
}

// WeightImbalances computes agent imbalances against totalPooled, or against
// the vault's current pooled value when totalPooled is nil.
func (s *VaultService) WeightImbalances(ctx context.Context, totalPooled *domain.Amount) (domain.WeightImbalances, error) {
	state, _, err := s.load(ctx)
	if err != nil {
		return domain.WeightImbalances{}, err
	}

	pooled := state.Pool.TotalPooled
	if totalPooled != nil {
		pooled = *totalPooled
	}
	return s.delegator.WeightImbalances(ctx, pooled)
}

// SharesFromBase prices amount in receipt shares at the current rate.
func (s *VaultService) SharesFromBase(ctx context.Context, amount domain.Amount) (domain.Amount, error) {
	state, now, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	pool, err := state.Pool.At(now)
	if err != nil {
		return 0, err
	}
	return pool.SharesFromBase(amount)
}

// BaseFromShares prices shares in base asset at the current rate.
func (s *VaultService) BaseFromShares(ctx context.Context, shares domain.Amount) (domain.Amount, error) {
	state, now, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	pool, err := state.Pool.At(now)
	if err != nil {
		return 0, err
	}
	return pool.BaseFromShares(shares)
}

package domain

import (
	"fmt"
	"time"
)

// BatchID numbers era windows counted from the vault's creation.
type BatchID uint64

// UnlockID identifies an unlock request within one user's record. Ids are
// handed out by a per-user counter and never reused, so cancelling or
// redeeming one request never renumbers the others.
type UnlockID uint64

type UnlockRequest struct {
	ID           UnlockID
	CreationTime time.Time
	ShareAmount  Amount
	BatchID      BatchID
}

// UserUnlocks keeps a user's open requests in creation order.
type UserUnlocks struct {
	NextID   UnlockID
	Requests []UnlockRequest
}

func (u UserUnlocks) clone() UserUnlocks {
	requests := make([]UnlockRequest, len(u.Requests))
	copy(requests, u.Requests)
	return UserUnlocks{NextID: u.NextID, Requests: requests}
}

func (u UserUnlocks) index(id UnlockID) int {
	for i, request := range u.Requests {
		if request.ID == id {
			return i
		}
	}
	return -1
}

func (u *UserUnlocks) remove(i int) {
	u.Requests = append(u.Requests[:i:i], u.Requests[i+1:]...)
}

// UnlockBatch aggregates every request made within one era window. Both
// redemption fields are set together, exactly once, when the batch is
// finalized.
type UnlockBatch struct {
	TotalShares       Amount
	ValueAtRedemption *Amount
	RedemptionTime    *time.Time
}

func (b UnlockBatch) Finalized() bool {
	return b.RedemptionTime != nil && b.ValueAtRedemption != nil
}

func (b UnlockBatch) Clone() UnlockBatch {
	clone := UnlockBatch{TotalShares: b.TotalShares}
	if b.ValueAtRedemption != nil {
		value := *b.ValueAtRedemption
		clone.ValueAtRedemption = &value
	}
	if b.RedemptionTime != nil {
		at := *b.RedemptionTime
		clone.RedemptionTime = &at
	}
	return clone
}

// BatchIDAt returns the window now falls in.
func (p PoolState) BatchIDAt(now time.Time) BatchID {
	if p.Era <= 0 || now.Before(p.CreationTime) {
		return 0
	}
	return BatchID(now.Sub(p.CreationTime) / p.Era)
}

// RequestUnlock adds shares already held in vault custody to the current
// window's batch and records the request for user.
func (s *VaultState) RequestUnlock(user AccountID, shares Amount, now time.Time) (UnlockRequest, error) {
	if shares == 0 {
		return UnlockRequest{}, fmt.Errorf("unlock shares: %w", ErrInvalidAmount)
	}

	batchID := s.Pool.BatchIDAt(now)
	batch := s.Batches[batchID]
	if batch.Finalized() {
		return UnlockRequest{}, fmt.Errorf("batch %d: %w", batchID, ErrBatchAlreadyFinalized)
	}

	total, err := AddAmounts(batch.TotalShares, shares)
	if err != nil {
		return UnlockRequest{}, err
	}

	unlocks := s.Unlocks[user].clone()
	request := UnlockRequest{
		ID:           unlocks.NextID,
		CreationTime: now,
		ShareAmount:  shares,
		BatchID:      batchID,
	}
	unlocks.NextID++
	unlocks.Requests = append(unlocks.Requests, request)

	batch.TotalShares = total
	s.ensureMaps()
	s.Batches[batchID] = batch
	s.Unlocks[user] = unlocks

	return request, nil
}

// CancelUnlock removes a request made in the still-open window and returns it
// so the caller can refund its shares.
func (s *VaultState) CancelUnlock(user AccountID, id UnlockID, now time.Time) (UnlockRequest, error) {
	unlocks := s.Unlocks[user].clone()
	i := unlocks.index(id)
	if i < 0 {
		return UnlockRequest{}, fmt.Errorf("unlock %d: %w", id, ErrUnlockRequestNotFound)
	}

	request := unlocks.Requests[i]
	if request.BatchID != s.Pool.BatchIDAt(now) {
		return UnlockRequest{}, fmt.Errorf("unlock %d in batch %d: %w", id, request.BatchID, ErrBatchWindowClosed)
	}

	batch, ok := s.Batches[request.BatchID]
	if !ok {
		return UnlockRequest{}, fmt.Errorf("batch %d: %w", request.BatchID, ErrBatchNotFound)
	}
	remaining, err := SubAmount(batch.TotalShares, request.ShareAmount)
	if err != nil {
		return UnlockRequest{}, err
	}

	unlocks.remove(i)
	batch.TotalShares = remaining
	s.Batches[request.BatchID] = batch
	s.Unlocks[user] = unlocks

	return request, nil
}

// UnlockRequests returns a copy of user's open requests in creation order.
func (s VaultState) UnlockRequests(user AccountID) []UnlockRequest {
	return s.Unlocks[user].clone().Requests
}

type FinalizedBatch struct {
	ID     BatchID
	Shares Amount
	Value  Amount
}

// Finalization is the outcome of closing one or more past batches against a
// single exchange-rate snapshot.
type Finalization struct {
	Batches       []FinalizedBatch
	TotalShares   Amount
	TotalValue    Amount
	VirtualShares Amount
	At            time.Time
}

// FinalizeBatches prices the given past batches at the current rate and
// stamps them. Every precondition is checked before anything changes; the
// caller is responsible for sourcing TotalValue from the agents and burning
// TotalShares.
func (s *VaultState) FinalizeBatches(ids []BatchID, now time.Time) (Finalization, error) {
	if len(ids) == 0 {
		return Finalization{}, fmt.Errorf("no batch ids given: %w", ErrBatchNotFound)
	}

	current := s.Pool.BatchIDAt(now)
	for i, id := range ids {
		if id >= current {
			return Finalization{}, fmt.Errorf("batch %d (current %d): %w", id, current, ErrBatchNotClosed)
		}
		if i > 0 && id <= ids[i-1] {
			return Finalization{}, fmt.Errorf("batch %d after %d: %w", id, ids[i-1], ErrDuplicateBatch)
		}
	}

	batches := make([]UnlockBatch, 0, len(ids))
	for _, id := range ids {
		batch, ok := s.Batches[id]
		if !ok {
			return Finalization{}, fmt.Errorf("batch %d: %w", id, ErrBatchNotFound)
		}
		if batch.RedemptionTime != nil {
			return Finalization{}, fmt.Errorf("batch %d: %w", id, ErrBatchAlreadyFinalized)
		}
		batches = append(batches, batch)
	}

	pool, err := s.Pool.At(now)
	if err != nil {
		return Finalization{}, err
	}

	result := Finalization{
		Batches:       make([]FinalizedBatch, 0, len(ids)),
		VirtualShares: pool.TotalSharesVirtual,
		At:            now,
	}
	for i, batch := range batches {
		value, err := pool.BaseFromShares(batch.TotalShares)
		if err != nil {
			return Finalization{}, err
		}
		if result.TotalValue, err = AddAmounts(result.TotalValue, value); err != nil {
			return Finalization{}, err
		}
		if result.TotalShares, err = AddAmounts(result.TotalShares, batch.TotalShares); err != nil {
			return Finalization{}, err
		}
		result.Batches = append(result.Batches, FinalizedBatch{ID: ids[i], Shares: batch.TotalShares, Value: value})
	}

	s.Pool = pool
	for i, finalized := range result.Batches {
		value := finalized.Value
		at := now
		batch := batches[i]
		batch.ValueAtRedemption = &value
		batch.RedemptionTime = &at
		s.Batches[finalized.ID] = batch
	}

	return result, nil
}

type Redemption struct {
	Request UnlockRequest
	Payout  Amount
}

// Redeem settles one request of a finalized batch once the cooldown has
// elapsed and removes it from user's record.
func (s *VaultState) Redeem(user AccountID, id UnlockID, now time.Time) (Redemption, error) {
	unlocks := s.Unlocks[user].clone()
	i := unlocks.index(id)
	if i < 0 {
		return Redemption{}, fmt.Errorf("unlock %d: %w", id, ErrUnlockRequestNotFound)
	}
	request := unlocks.Requests[i]

	batch, ok := s.Batches[request.BatchID]
	if !ok || !batch.Finalized() {
		return Redemption{}, fmt.Errorf("batch %d: %w", request.BatchID, ErrBatchNotFinalized)
	}

	if now.Sub(*batch.RedemptionTime) < s.Pool.CooldownPeriod {
		ready := batch.RedemptionTime.Add(s.Pool.CooldownPeriod)
		return Redemption{}, fmt.Errorf("batch %d redeemable at %s: %w", request.BatchID, ready.Format(time.RFC3339), ErrCooldownActive)
	}

	payout, err := ProRata(request.ShareAmount, *batch.ValueAtRedemption, batch.TotalShares)
	if err != nil {
		return Redemption{}, err
	}

	unlocks.remove(i)
	s.Unlocks[user] = unlocks

	return Redemption{Request: request, Payout: payout}, nil
}

func (s *VaultState) ensureMaps() {
	if s.Unlocks == nil {
		s.Unlocks = map[AccountID]UserUnlocks{}
	}
	if s.Batches == nil {
		s.Batches = map[BatchID]UnlockBatch{}
	}
}

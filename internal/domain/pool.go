package domain

import (
	"fmt"
	"time"
)

// Year is the period over which the fee percentage is charged once.
const Year = 365 * 24 * time.Hour

// PoolState is the vault's accounting aggregate. The exchange rate between
// base asset and receipt shares is TotalPooled / TotalShares().
type PoolState struct {
	TotalPooled         Amount
	TotalSharesMinted   Amount
	TotalSharesVirtual  Amount
	FeePercentage       Bips
	IncentivePercentage Bips
	MinimumStake        Amount
	CreationTime        time.Time
	Era                 time.Duration
	CooldownPeriod      time.Duration
	LastFeeUpdate       time.Time
}

// TotalShares counts minted shares plus fee shares accrued so far. Call
// UpdateFees first when the value must reflect the current time.
func (p PoolState) TotalShares() (Amount, error) {
	return AddAmounts(p.TotalSharesMinted, p.TotalSharesVirtual)
}

// chargeable is the whole-millisecond time since the last fee update. The
// sub-millisecond remainder stays pending for the next update.
func (p PoolState) chargeable(now time.Time) time.Duration {
	if !now.After(p.LastFeeUpdate) {
		return 0
	}
	return now.Sub(p.LastFeeUpdate).Truncate(time.Millisecond)
}

// accruedSince returns fee shares owed for the time elapsed since the last
// fee update, linear in elapsed milliseconds.
func (p PoolState) accruedSince(now time.Time) (Amount, error) {
	elapsed := p.chargeable(now).Milliseconds()
	if p.FeePercentage == 0 || elapsed <= 0 {
		return 0, nil
	}

	totalShares, err := p.TotalShares()
	if err != nil {
		return 0, err
	}

	rate, err := mulAmount(uint64(elapsed), uint64(p.FeePercentage))
	if err != nil {
		return 0, err
	}

	return ProRata(totalShares, Amount(rate), Amount(uint64(BIPS)*uint64(Year.Milliseconds())))
}

// VirtualSharesAt reports the fee shares that would be claimable at now
// without mutating the pool.
func (p PoolState) VirtualSharesAt(now time.Time) (Amount, error) {
	accrued, err := p.accruedSince(now)
	if err != nil {
		return 0, err
	}
	return AddAmounts(p.TotalSharesVirtual, accrued)
}

// UpdateFees accrues fee shares up to now. It is a no-op when now is not
// after the last update. With a non-zero fee the clock only advances by the
// whole milliseconds charged. On error the pool is left untouched.
func (p *PoolState) UpdateFees(now time.Time) error {
	if !now.After(p.LastFeeUpdate) {
		return nil
	}
	if p.FeePercentage == 0 {
		p.LastFeeUpdate = now
		return nil
	}

	virtual, err := p.VirtualSharesAt(now)
	if err != nil {
		return err
	}

	p.TotalSharesVirtual = virtual
	p.LastFeeUpdate = p.LastFeeUpdate.Add(p.chargeable(now))
	return nil
}

// At returns a copy of the pool with fees accrued up to now.
func (p PoolState) At(now time.Time) (PoolState, error) {
	if err := p.UpdateFees(now); err != nil {
		return PoolState{}, err
	}
	return p, nil
}

// SharesFromBase converts base asset into receipt shares. The first deposit
// into an empty pool is priced 1:1.
func (p PoolState) SharesFromBase(amount Amount) (Amount, error) {
	if p.TotalPooled == 0 {
		return amount, nil
	}

	totalShares, err := p.TotalShares()
	if err != nil {
		return 0, err
	}

	return ProRata(amount, totalShares, p.TotalPooled)
}

// BaseFromShares converts receipt shares into base asset.
func (p PoolState) BaseFromShares(shares Amount) (Amount, error) {
	totalShares, err := p.TotalShares()
	if err != nil {
		return 0, err
	}
	if totalShares == 0 {
		return 0, nil
	}

	return ProRata(shares, p.TotalPooled, totalShares)
}

// ClaimFees moves the accrued virtual shares into the minted supply and
// returns how many shares the caller must mint. TotalPooled is unchanged.
func (p *PoolState) ClaimFees() (Amount, error) {
	shares := p.TotalSharesVirtual
	minted, err := AddAmounts(p.TotalSharesMinted, shares)
	if err != nil {
		return 0, err
	}

	p.TotalSharesMinted = minted
	p.TotalSharesVirtual = 0
	return shares, nil
}

// MintShares records newly issued receipt shares.
func (p *PoolState) MintShares(shares Amount) error {
	minted, err := AddAmounts(p.TotalSharesMinted, shares)
	if err != nil {
		return err
	}
	p.TotalSharesMinted = minted
	return nil
}

// BurnShares records destroyed receipt shares.
func (p *PoolState) BurnShares(shares Amount) error {
	minted, err := SubAmount(p.TotalSharesMinted, shares)
	if err != nil {
		return err
	}
	p.TotalSharesMinted = minted
	return nil
}

// Deposit accrues fees, prices amount at the current rate and records the
// minted shares and the pooled value.
func (p *PoolState) Deposit(amount Amount, now time.Time) (Amount, error) {
	if amount == 0 {
		return 0, fmt.Errorf("stake: %w", ErrInvalidAmount)
	}
	if amount < p.MinimumStake {
		return 0, fmt.Errorf("stake %s below %s: %w", amount, p.MinimumStake, ErrMinimumStake)
	}

	next, err := p.At(now)
	if err != nil {
		return 0, err
	}

	shares, err := next.SharesFromBase(amount)
	if err != nil {
		return 0, err
	}
	if shares == 0 {
		return 0, fmt.Errorf("stake %s mints no shares: %w", amount, ErrInvalidAmount)
	}

	if next.TotalPooled, err = AddAmounts(next.TotalPooled, amount); err != nil {
		return 0, err
	}
	if err := next.MintShares(shares); err != nil {
		return 0, err
	}

	*p = next
	return shares, nil
}

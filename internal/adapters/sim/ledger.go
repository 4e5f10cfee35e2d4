package sim

import (
	"context"
	"fmt"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
)

type baseAsset struct {
	chain *Chain
}

// Base returns the base-asset ledger.
func (c *Chain) Base() ports.BaseAsset {
	return baseAsset{chain: c}
}

func (b baseAsset) Transfer(_ context.Context, from, to domain.AccountID, amount domain.Amount) error {
	b.chain.mu.Lock()
	defer b.chain.mu.Unlock()
	return b.chain.move(b.chain.state.Balances, from, to, amount)
}

func (b baseAsset) BalanceOf(_ context.Context, account domain.AccountID) (domain.Amount, error) {
	b.chain.mu.Lock()
	defer b.chain.mu.Unlock()
	return b.chain.state.Balances[account], nil
}

// shareLedger is the receipt token with the vault as sole minter.
type shareLedger struct {
	chain *Chain
}

// Shares returns the receipt-token ledger bound to the vault account.
func (c *Chain) Shares() ports.ShareLedger {
	return shareLedger{chain: c}
}

func (l shareLedger) Mint(_ context.Context, to domain.AccountID, amount domain.Amount) error {
	c := l.chain
	c.mu.Lock()
	defer c.mu.Unlock()

	supply, err := domain.AddAmounts(c.state.Supply, amount)
	if err != nil {
		return err
	}
	if err := c.credit(c.state.Shares, to, amount); err != nil {
		return err
	}
	c.state.Supply = supply
	return nil
}

func (l shareLedger) Burn(_ context.Context, amount domain.Amount) error {
	c := l.chain
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.debit(c.state.Shares, c.vault, amount); err != nil {
		return fmt.Errorf("burn: %w", err)
	}
	c.state.Supply -= amount
	return nil
}

func (l shareLedger) Transfer(_ context.Context, to domain.AccountID, amount domain.Amount) error {
	c := l.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.move(c.state.Shares, c.vault, to, amount)
}

func (l shareLedger) TransferFrom(_ context.Context, from, to domain.AccountID, amount domain.Amount) error {
	c := l.chain
	c.mu.Lock()
	defer c.mu.Unlock()

	allowed := c.state.Allowances[from][c.vault]
	if allowed < amount {
		return fmt.Errorf("%s allows %s, needs %s: %w", from, allowed, amount, ErrInsufficientAllowance)
	}
	if err := c.move(c.state.Shares, from, to, amount); err != nil {
		return err
	}
	if spenders := c.state.Allowances[from]; spenders != nil {
		spenders[c.vault] = allowed - amount
	}
	return nil
}

func (l shareLedger) BalanceOf(_ context.Context, account domain.AccountID) (domain.Amount, error) {
	l.chain.mu.Lock()
	defer l.chain.mu.Unlock()
	return l.chain.state.Shares[account], nil
}

func (l shareLedger) TotalSupply(_ context.Context) (domain.Amount, error) {
	l.chain.mu.Lock()
	defer l.chain.mu.Unlock()
	return l.chain.state.Supply, nil
}

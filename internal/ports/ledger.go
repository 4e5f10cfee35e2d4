package ports

import (
	"context"

	"github.com/bnema/stakevault/internal/domain"
)

// ShareLedger is the receipt token as seen by the vault. Burn and Transfer
// move tokens out of vault custody; TransferFrom spends the vault's
// allowance on from.
type ShareLedger interface {
	Mint(ctx context.Context, to domain.AccountID, amount domain.Amount) error
	Burn(ctx context.Context, amount domain.Amount) error
	Transfer(ctx context.Context, to domain.AccountID, amount domain.Amount) error
	TransferFrom(ctx context.Context, from, to domain.AccountID, amount domain.Amount) error
	BalanceOf(ctx context.Context, account domain.AccountID) (domain.Amount, error)
	TotalSupply(ctx context.Context) (domain.Amount, error)
}

type BaseAsset interface {
	Transfer(ctx context.Context, from, to domain.AccountID, amount domain.Amount) error
	BalanceOf(ctx context.Context, account domain.AccountID) (domain.Amount, error)
}

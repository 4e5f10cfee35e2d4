package ports

import (
	"context"

	"github.com/bnema/stakevault/internal/domain"
)

// VaultStateRepository loads and saves the vault aggregate. Load returns
// domain.ErrVaultNotInitialized when nothing has been saved yet.
type VaultStateRepository interface {
	Load(ctx context.Context) (domain.VaultState, error)
	Save(ctx context.Context, state domain.VaultState) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

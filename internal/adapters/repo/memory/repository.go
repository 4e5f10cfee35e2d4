// Package memory keeps the vault aggregate in process. The CLI loads it from
// the state file at the start of a command and writes it back at the end.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/stakevault/internal/domain"
)

type Repository struct {
	mu    sync.RWMutex
	state *domain.VaultState
}

// New seeds the repository. A nil state means the vault is not initialized.
func New(state *domain.VaultState) *Repository {
	repo := &Repository{}
	if state != nil {
		clone := state.Clone()
		repo.state = &clone
	}
	return repo
}

func (r *Repository) Load(ctx context.Context) (domain.VaultState, error) {
	if err := ctx.Err(); err != nil {
		return domain.VaultState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == nil {
		return domain.VaultState{}, domain.ErrVaultNotInitialized
	}
	return r.state.Clone(), nil
}

func (r *Repository) Save(ctx context.Context, state domain.VaultState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := state.Clone()
	r.state = &clone
	return nil
}

// State returns a copy of the last saved state, or nil.
func (r *Repository) State() *domain.VaultState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == nil {
		return nil
	}
	clone := r.state.Clone()
	return &clone
}

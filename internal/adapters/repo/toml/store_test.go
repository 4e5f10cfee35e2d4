package toml

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/stakevault/internal/adapters/sim"
	"github.com/bnema/stakevault/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()

	cfg := viper.New()
	cfg.Set(StatePathKey, filepath.Join(t.TempDir(), "state.toml"))

	store, err := NewStateStore(cfg)
	require.NoError(t, err)
	return store
}

func testSnapshot(t *testing.T) Snapshot {
	t.Helper()

	createdAt := time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC)
	vault, err := domain.NewVaultState("owner", domain.DefaultParams(), createdAt)
	require.NoError(t, err)

	_, err = vault.Pool.Deposit(5_000_000, createdAt)
	require.NoError(t, err)
	_, err = vault.RequestUnlock("alice", 1_000_000, createdAt.Add(90*time.Minute+123*time.Millisecond))
	require.NoError(t, err)
	_, err = vault.RequestUnlock("alice", 500_000, createdAt.Add(2*time.Hour))
	require.NoError(t, err)
	_, err = vault.FinalizeBatches([]domain.BatchID{0}, createdAt.Add(25*time.Hour))
	require.NoError(t, err)
	_, err = vault.RequestUnlock("bob", 250_000, createdAt.Add(26*time.Hour))
	require.NoError(t, err)

	return Snapshot{
		Vault: &vault,
		Chain: sim.State{
			Balances: map[domain.AccountID]domain.Amount{"alice": 10, "vault": 20},
			Shares:   map[domain.AccountID]domain.Amount{"alice": 3_500_000, "vault": 250_000},
			Allowances: map[domain.AccountID]map[domain.AccountID]domain.Amount{
				"bob": {"vault": 750_000},
			},
			Supply: 3_750_000,
			Agents: []sim.AgentState{
				{
					Account: "agent-1",
					Weight:  2,
					Staked:  3_000_000,
					Rewards: 7,
					Unbonding: []sim.UnbondChunk{
						{Amount: 1_500_000, ReleaseAt: createdAt.Add(15 * 24 * time.Hour)},
					},
				},
				{Account: "agent-2", Weight: 1, Staked: 500_000},
			},
		},
	}
}

func TestStateStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	snapshot := testSnapshot(t)

	require.NoError(t, store.Save(context.Background(), snapshot))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestStateStoreLoadMissingFileReturnsEmptySnapshot(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got.Vault)
	assert.Empty(t, got.Chain.Balances)
	assert.Empty(t, got.Chain.Agents)
	assert.Zero(t, got.Chain.Supply)
}

func TestStateStoreKeepsFullAmountRange(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	snapshot := Snapshot{Chain: sim.State{
		Balances:   map[domain.AccountID]domain.Amount{"whale": math.MaxUint64},
		Shares:     map[domain.AccountID]domain.Amount{},
		Allowances: map[domain.AccountID]map[domain.AccountID]domain.Amount{},
		Supply:     math.MaxUint64,
	}}

	require.NoError(t, store.Save(context.Background(), snapshot))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(math.MaxUint64), got.Chain.Balances["whale"])
	assert.Equal(t, domain.Amount(math.MaxUint64), got.Chain.Supply)
}

func TestStateStoreWritesVersionAndPrivatePermissions(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), testSnapshot(t)))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "2026-02-28T10:00:00Z")

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(stateFileMode), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(store.Path()), ".state-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStateStoreRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("version = [\n"), stateFileMode))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode state file")
}

func TestStateStoreRejectsFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("version = 2\n"), stateFileMode))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported state schema version 2")
}

func TestStateStoreRejectsBadAmount(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	contents := "version = 1\n\n[chain]\nsupply = '-4'\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(contents), stateFileMode))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode chain supply")
}

func TestStateStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Save(ctx, Snapshot{}), context.Canceled)

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewStateStoreDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStateStore(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".stakevault", "state.toml"), store.Path())

	require.NoError(t, store.Save(context.Background(), Snapshot{}))

	info, err := os.Stat(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(stateDirMode), info.Mode().Perm())
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/stakevault/internal/adapters/events"
	"github.com/bnema/stakevault/internal/adapters/logging"
	statusadapter "github.com/bnema/stakevault/internal/adapters/render/status"
	"github.com/bnema/stakevault/internal/adapters/repo/memory"
	tomlrepo "github.com/bnema/stakevault/internal/adapters/repo/toml"
	"github.com/bnema/stakevault/internal/adapters/sim"
	"github.com/bnema/stakevault/internal/application"
	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".stakevault"
	configFileName = "config.toml"
	envPrefix      = "SV"

	callerKey         = "caller"
	vaultAccountKey   = "vault.account"
	vaultEraKey       = "vault.era"
	vaultCooldownKey  = "vault.cooldown"
	vaultFeeKey       = "vault.fee_bips"
	vaultIncentiveKey = "vault.incentive_bips"
	vaultMinStakeKey  = "vault.minimum_stake"
	chainUnbondingKey = "chain.unbonding_period"

	defaultVaultAccount = "vault"
	defaultUnbonding    = 28 * 24 * time.Hour
)

var (
	errNotInitialized = errors.New("vault is not initialized; run `sv init` first")
	errCallerRequired = errors.New("caller is required (use --as or set SV_CALLER)")
)

type globalOptions struct {
	caller string
	at     string
}

type app struct {
	cfg            *viper.Viper
	store          *tomlrepo.StateStore
	logger         zerolog.Logger
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
	opts           *globalOptions
}

func wireApp(opts *globalOptions) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	store, err := tomlrepo.NewStateStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	return &app{
		cfg:            cfg,
		store:          store,
		logger:         logger,
		statusRenderer: statusadapter.Render,
		opts:           opts,
	}, nil
}

func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()

	defaults := domain.DefaultParams()
	cfg.SetDefault(vaultAccountKey, defaultVaultAccount)
	cfg.SetDefault(vaultEraKey, defaults.Era)
	cfg.SetDefault(vaultCooldownKey, defaults.CooldownPeriod)
	cfg.SetDefault(vaultFeeKey, uint16(defaults.FeePercentage))
	cfg.SetDefault(vaultIncentiveKey, uint16(defaults.IncentivePercentage))
	cfg.SetDefault(vaultMinStakeKey, uint64(defaults.MinimumStake))
	cfg.SetDefault(chainUnbondingKey, defaultUnbonding)
	cfg.SetDefault(logging.LevelKey, logging.DefaultLevel)
	cfg.SetDefault(logging.FormatKey, logging.FormatText)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	path := filepath.Join(homeDir, configDirName, configFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	cfg.SetConfigFile(path)
	if err := cfg.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return cfg, nil
}

func (a *app) vaultAccount() domain.AccountID {
	return domain.AccountID(a.cfg.GetString(vaultAccountKey))
}

func (a *app) defaultParams() (domain.Params, error) {
	fee, err := a.bips(vaultFeeKey)
	if err != nil {
		return domain.Params{}, err
	}
	incentive, err := a.bips(vaultIncentiveKey)
	if err != nil {
		return domain.Params{}, err
	}

	return domain.Params{
		Era:                 a.cfg.GetDuration(vaultEraKey),
		CooldownPeriod:      a.cfg.GetDuration(vaultCooldownKey),
		FeePercentage:       fee,
		IncentivePercentage: incentive,
		MinimumStake:        domain.Amount(a.cfg.GetUint64(vaultMinStakeKey)),
	}, nil
}

func (a *app) bips(key string) (domain.Bips, error) {
	value := a.cfg.GetUint32(key)
	if value >= uint32(domain.BIPS) {
		return 0, fmt.Errorf("%s: %w", key, domain.ErrInvalidPercent)
	}
	return domain.Bips(value), nil
}

func (a *app) caller() (domain.AccountID, error) {
	caller := strings.TrimSpace(a.opts.caller)
	if caller == "" {
		caller = strings.TrimSpace(a.cfg.GetString(callerKey))
	}
	if caller == "" {
		return "", errCallerRequired
	}
	return domain.AccountID(caller), nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (a *app) clock() (ports.Clock, error) {
	if strings.TrimSpace(a.opts.at) == "" {
		return ports.SystemClock{}, nil
	}

	at, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(a.opts.at))
	if err != nil {
		return nil, fmt.Errorf("invalid --at %q: expected RFC3339", a.opts.at)
	}
	return fixedClock{now: at.UTC()}, nil
}

// session is one command's unit of work: the stored snapshot restored into
// an in-process chain and vault repository.
type session struct {
	clock   ports.Clock
	chain   *sim.Chain
	repo    *memory.Repository
	service *application.VaultService
}

func (a *app) open(ctx context.Context) (*session, error) {
	clock, err := a.clock()
	if err != nil {
		return nil, err
	}

	snapshot, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	vault := a.vaultAccount()
	chain := sim.New(vault, a.cfg.GetDuration(chainUnbondingKey), clock)
	chain.Restore(snapshot.Chain)
	repo := memory.New(snapshot.Vault)

	service, err := application.NewVaultService(application.Dependencies{
		Vault:      vault,
		Repository: repo,
		Registry:   chain.Registry(),
		Agents:     chain.Agents(),
		Shares:     chain.Shares(),
		Base:       chain.Base(),
		Events:     events.NewLogPublisher(a.logger, clock),
		Clock:      clock,
		Logger:     a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("wire vault service: %w", err)
	}

	return &session{clock: clock, chain: chain, repo: repo, service: service}, nil
}

// update runs fn in a session and saves the snapshot only when fn succeeds.
func (a *app) update(ctx context.Context, fn func(*session) error) error {
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return explain(err)
	}

	if err := a.store.Save(ctx, tomlrepo.Snapshot{Vault: s.repo.State(), Chain: s.chain.Snapshot()}); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// view runs fn in a session that is never saved.
func (a *app) view(ctx context.Context, fn func(*session) error) error {
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	return explain(fn(s))
}

func explain(err error) error {
	if errors.Is(err, domain.ErrVaultNotInitialized) {
		return errNotInitialized
	}
	return err
}

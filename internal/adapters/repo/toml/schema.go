package toml

import "fmt"

const currentSchemaVersion = 1

// stateFileSchema holds amounts as decimal strings so the full uint64 range
// survives TOML's signed integers.
type stateFileSchema struct {
	Version int          `toml:"version"`
	Vault   *vaultSchema `toml:"vault,omitempty"`
	Chain   chainSchema  `toml:"chain"`
}

func (s *stateFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s stateFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type vaultSchema struct {
	Pool    poolSchema          `toml:"pool"`
	Roles   rolesSchema         `toml:"roles"`
	Unlocks []userUnlocksSchema `toml:"unlocks"`
	Batches []batchSchema       `toml:"batches"`
}

type poolSchema struct {
	TotalPooled        string `toml:"total_pooled"`
	TotalSharesMinted  string `toml:"total_shares_minted"`
	TotalSharesVirtual string `toml:"total_shares_virtual"`
	FeeBips            uint16 `toml:"fee_bips"`
	IncentiveBips      uint16 `toml:"incentive_bips"`
	MinimumStake       string `toml:"minimum_stake"`
	CreationTime       string `toml:"creation_time"`
	Era                string `toml:"era"`
	CooldownPeriod     string `toml:"cooldown_period"`
	LastFeeUpdate      string `toml:"last_fee_update"`
}

type rolesSchema struct {
	Owner          string `toml:"owner"`
	AdjustFee      string `toml:"adjust_fee"`
	AdjustFeeAdmin string `toml:"adjust_fee_admin"`
}

type userUnlocksSchema struct {
	User     string                `toml:"user"`
	NextID   uint64                `toml:"next_id"`
	Requests []unlockRequestSchema `toml:"requests"`
}

type unlockRequestSchema struct {
	ID           uint64 `toml:"id"`
	CreationTime string `toml:"creation_time"`
	Shares       string `toml:"shares"`
	BatchID      uint64 `toml:"batch_id"`
}

type batchSchema struct {
	ID                uint64 `toml:"id"`
	TotalShares       string `toml:"total_shares"`
	ValueAtRedemption string `toml:"value_at_redemption,omitempty"`
	RedemptionTime    string `toml:"redemption_time,omitempty"`
}

type chainSchema struct {
	Supply     string            `toml:"supply"`
	Balances   []balanceSchema   `toml:"balances"`
	Shares     []balanceSchema   `toml:"shares"`
	Allowances []allowanceSchema `toml:"allowances"`
	Agents     []agentSchema     `toml:"agents"`
}

type balanceSchema struct {
	Account string `toml:"account"`
	Amount  string `toml:"amount"`
}

type allowanceSchema struct {
	Owner   string `toml:"owner"`
	Spender string `toml:"spender"`
	Amount  string `toml:"amount"`
}

type agentSchema struct {
	Account   string        `toml:"account"`
	Weight    uint64        `toml:"weight"`
	Staked    string        `toml:"staked"`
	Rewards   string        `toml:"rewards"`
	Unbonding []chunkSchema `toml:"unbonding"`
}

type chunkSchema struct {
	Amount    string `toml:"amount"`
	ReleaseAt string `toml:"release_at"`
}

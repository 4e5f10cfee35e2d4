package toml

import (
	"fmt"
	"sort"
	"time"

	"github.com/bnema/stakevault/internal/adapters/sim"
	"github.com/bnema/stakevault/internal/domain"
)

func toSchema(snapshot Snapshot) stateFileSchema {
	file := stateFileSchema{Chain: toChainSchema(snapshot.Chain)}
	if snapshot.Vault != nil {
		vault := toVaultSchema(*snapshot.Vault)
		file.Vault = &vault
	}
	return file
}

func fromSchema(file stateFileSchema) (Snapshot, error) {
	chain, err := fromChainSchema(file.Chain)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{Chain: chain}
	if file.Vault != nil {
		vault, err := fromVaultSchema(*file.Vault)
		if err != nil {
			return Snapshot{}, err
		}
		snapshot.Vault = &vault
	}
	return snapshot, nil
}

func toVaultSchema(state domain.VaultState) vaultSchema {
	pool := state.Pool
	schema := vaultSchema{
		Pool: poolSchema{
			TotalPooled:        pool.TotalPooled.String(),
			TotalSharesMinted:  pool.TotalSharesMinted.String(),
			TotalSharesVirtual: pool.TotalSharesVirtual.String(),
			FeeBips:            uint16(pool.FeePercentage),
			IncentiveBips:      uint16(pool.IncentivePercentage),
			MinimumStake:       pool.MinimumStake.String(),
			CreationTime:       formatTime(pool.CreationTime),
			Era:                pool.Era.String(),
			CooldownPeriod:     pool.CooldownPeriod.String(),
			LastFeeUpdate:      formatTime(pool.LastFeeUpdate),
		},
		Roles: rolesSchema{
			Owner:          string(state.Roles.Owner),
			AdjustFee:      string(state.Roles.AdjustFee),
			AdjustFeeAdmin: string(state.Roles.AdjustFeeAdmin),
		},
		Unlocks: make([]userUnlocksSchema, 0, len(state.Unlocks)),
		Batches: make([]batchSchema, 0, len(state.Batches)),
	}

	for user, unlocks := range state.Unlocks {
		requests := make([]unlockRequestSchema, 0, len(unlocks.Requests))
		for _, request := range unlocks.Requests {
			requests = append(requests, unlockRequestSchema{
				ID:           uint64(request.ID),
				CreationTime: formatTime(request.CreationTime),
				Shares:       request.ShareAmount.String(),
				BatchID:      uint64(request.BatchID),
			})
		}
		schema.Unlocks = append(schema.Unlocks, userUnlocksSchema{
			User:     string(user),
			NextID:   uint64(unlocks.NextID),
			Requests: requests,
		})
	}
	sort.Slice(schema.Unlocks, func(i, j int) bool { return schema.Unlocks[i].User < schema.Unlocks[j].User })

	for id, batch := range state.Batches {
		encoded := batchSchema{ID: uint64(id), TotalShares: batch.TotalShares.String()}
		if batch.ValueAtRedemption != nil {
			encoded.ValueAtRedemption = batch.ValueAtRedemption.String()
		}
		if batch.RedemptionTime != nil {
			encoded.RedemptionTime = formatTime(*batch.RedemptionTime)
		}
		schema.Batches = append(schema.Batches, encoded)
	}
	sort.Slice(schema.Batches, func(i, j int) bool { return schema.Batches[i].ID < schema.Batches[j].ID })

	return schema
}

func fromVaultSchema(schema vaultSchema) (domain.VaultState, error) {
	var (
		pool = domain.PoolState{
			FeePercentage:       domain.Bips(schema.Pool.FeeBips),
			IncentivePercentage: domain.Bips(schema.Pool.IncentiveBips),
		}
		err error
	)

	amounts := []struct {
		field string
		raw   string
		dst   *domain.Amount
	}{
		{"total_pooled", schema.Pool.TotalPooled, &pool.TotalPooled},
		{"total_shares_minted", schema.Pool.TotalSharesMinted, &pool.TotalSharesMinted},
		{"total_shares_virtual", schema.Pool.TotalSharesVirtual, &pool.TotalSharesVirtual},
		{"minimum_stake", schema.Pool.MinimumStake, &pool.MinimumStake},
	}
	for _, amount := range amounts {
		if *amount.dst, err = parseAmount(amount.raw); err != nil {
			return domain.VaultState{}, fmt.Errorf("decode pool %s: %w", amount.field, err)
		}
	}

	if pool.CreationTime, err = parseTime(schema.Pool.CreationTime); err != nil {
		return domain.VaultState{}, fmt.Errorf("decode pool creation_time: %w", err)
	}
	if pool.LastFeeUpdate, err = parseTime(schema.Pool.LastFeeUpdate); err != nil {
		return domain.VaultState{}, fmt.Errorf("decode pool last_fee_update: %w", err)
	}
	if pool.Era, err = parseDuration(schema.Pool.Era); err != nil {
		return domain.VaultState{}, fmt.Errorf("decode pool era: %w", err)
	}
	if pool.CooldownPeriod, err = parseDuration(schema.Pool.CooldownPeriod); err != nil {
		return domain.VaultState{}, fmt.Errorf("decode pool cooldown_period: %w", err)
	}

	state := domain.VaultState{
		Pool: pool,
		Roles: domain.Roles{
			Owner:          domain.AccountID(schema.Roles.Owner),
			AdjustFee:      domain.AccountID(schema.Roles.AdjustFee),
			AdjustFeeAdmin: domain.AccountID(schema.Roles.AdjustFeeAdmin),
		},
		Unlocks: make(map[domain.AccountID]domain.UserUnlocks, len(schema.Unlocks)),
		Batches: make(map[domain.BatchID]domain.UnlockBatch, len(schema.Batches)),
	}

	for _, user := range schema.Unlocks {
		unlocks := domain.UserUnlocks{
			NextID:   domain.UnlockID(user.NextID),
			Requests: make([]domain.UnlockRequest, 0, len(user.Requests)),
		}
		for _, request := range user.Requests {
			shares, err := parseAmount(request.Shares)
			if err != nil {
				return domain.VaultState{}, fmt.Errorf("decode unlock %s/%d: %w", user.User, request.ID, err)
			}
			created, err := parseTime(request.CreationTime)
			if err != nil {
				return domain.VaultState{}, fmt.Errorf("decode unlock %s/%d: %w", user.User, request.ID, err)
			}
			unlocks.Requests = append(unlocks.Requests, domain.UnlockRequest{
				ID:           domain.UnlockID(request.ID),
				CreationTime: created,
				ShareAmount:  shares,
				BatchID:      domain.BatchID(request.BatchID),
			})
		}
		state.Unlocks[domain.AccountID(user.User)] = unlocks
	}

	for _, encoded := range schema.Batches {
		batch, err := fromBatchSchema(encoded)
		if err != nil {
			return domain.VaultState{}, fmt.Errorf("decode batch %d: %w", encoded.ID, err)
		}
		state.Batches[domain.BatchID(encoded.ID)] = batch
	}

	return state, nil
}

func fromBatchSchema(schema batchSchema) (domain.UnlockBatch, error) {
	total, err := parseAmount(schema.TotalShares)
	if err != nil {
		return domain.UnlockBatch{}, err
	}

	batch := domain.UnlockBatch{TotalShares: total}
	if schema.ValueAtRedemption != "" {
		value, err := parseAmount(schema.ValueAtRedemption)
		if err != nil {
			return domain.UnlockBatch{}, err
		}
		batch.ValueAtRedemption = &value
	}
	if schema.RedemptionTime != "" {
		at, err := parseTime(schema.RedemptionTime)
		if err != nil {
			return domain.UnlockBatch{}, err
		}
		batch.RedemptionTime = &at
	}
	return batch, nil
}

func toChainSchema(state sim.State) chainSchema {
	schema := chainSchema{
		Supply:     state.Supply.String(),
		Balances:   toBalanceSchemas(state.Balances),
		Shares:     toBalanceSchemas(state.Shares),
		Allowances: make([]allowanceSchema, 0),
		Agents:     make([]agentSchema, 0, len(state.Agents)),
	}

	for owner, spenders := range state.Allowances {
		for spender, amount := range spenders {
			schema.Allowances = append(schema.Allowances, allowanceSchema{
				Owner:   string(owner),
				Spender: string(spender),
				Amount:  amount.String(),
			})
		}
	}
	sort.Slice(schema.Allowances, func(i, j int) bool {
		left, right := schema.Allowances[i], schema.Allowances[j]
		if left.Owner != right.Owner {
			return left.Owner < right.Owner
		}
		return left.Spender < right.Spender
	})

	for _, agent := range state.Agents {
		chunks := make([]chunkSchema, 0, len(agent.Unbonding))
		for _, chunk := range agent.Unbonding {
			chunks = append(chunks, chunkSchema{Amount: chunk.Amount.String(), ReleaseAt: formatTime(chunk.ReleaseAt)})
		}
		schema.Agents = append(schema.Agents, agentSchema{
			Account:   string(agent.Account),
			Weight:    agent.Weight,
			Staked:    agent.Staked.String(),
			Rewards:   agent.Rewards.String(),
			Unbonding: chunks,
		})
	}

	return schema
}

func toBalanceSchemas(balances map[domain.AccountID]domain.Amount) []balanceSchema {
	schemas := make([]balanceSchema, 0, len(balances))
	for account, amount := range balances {
		schemas = append(schemas, balanceSchema{Account: string(account), Amount: amount.String()})
	}
	sort.Slice(schemas, func(i, j int) bool { return schemas[i].Account < schemas[j].Account })
	return schemas
}

func fromChainSchema(schema chainSchema) (sim.State, error) {
	supply, err := parseAmount(schema.Supply)
	if err != nil {
		return sim.State{}, fmt.Errorf("decode chain supply: %w", err)
	}

	state := sim.State{
		Supply:     supply,
		Allowances: map[domain.AccountID]map[domain.AccountID]domain.Amount{},
	}
	if state.Balances, err = fromBalanceSchemas(schema.Balances); err != nil {
		return sim.State{}, fmt.Errorf("decode chain balances: %w", err)
	}
	if state.Shares, err = fromBalanceSchemas(schema.Shares); err != nil {
		return sim.State{}, fmt.Errorf("decode chain shares: %w", err)
	}

	for _, allowance := range schema.Allowances {
		amount, err := parseAmount(allowance.Amount)
		if err != nil {
			return sim.State{}, fmt.Errorf("decode allowance %s/%s: %w", allowance.Owner, allowance.Spender, err)
		}
		owner := domain.AccountID(allowance.Owner)
		if state.Allowances[owner] == nil {
			state.Allowances[owner] = map[domain.AccountID]domain.Amount{}
		}
		state.Allowances[owner][domain.AccountID(allowance.Spender)] = amount
	}

	for _, encoded := range schema.Agents {
		agent := sim.AgentState{Account: domain.AccountID(encoded.Account), Weight: encoded.Weight}
		if agent.Staked, err = parseAmount(encoded.Staked); err != nil {
			return sim.State{}, fmt.Errorf("decode agent %s: %w", encoded.Account, err)
		}
		if agent.Rewards, err = parseAmount(encoded.Rewards); err != nil {
			return sim.State{}, fmt.Errorf("decode agent %s: %w", encoded.Account, err)
		}
		for _, chunk := range encoded.Unbonding {
			amount, err := parseAmount(chunk.Amount)
			if err != nil {
				return sim.State{}, fmt.Errorf("decode agent %s: %w", encoded.Account, err)
			}
			releaseAt, err := parseTime(chunk.ReleaseAt)
			if err != nil {
				return sim.State{}, fmt.Errorf("decode agent %s: %w", encoded.Account, err)
			}
			agent.Unbonding = append(agent.Unbonding, sim.UnbondChunk{Amount: amount, ReleaseAt: releaseAt})
		}
		state.Agents = append(state.Agents, agent)
	}

	return state, nil
}

func fromBalanceSchemas(schemas []balanceSchema) (map[domain.AccountID]domain.Amount, error) {
	balances := make(map[domain.AccountID]domain.Amount, len(schemas))
	for _, entry := range schemas {
		amount, err := parseAmount(entry.Amount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Account, err)
		}
		balances[domain.AccountID(entry.Account)] = amount
	}
	return balances, nil
}

func parseAmount(raw string) (domain.Amount, error) {
	if raw == "" {
		return 0, nil
	}
	return domain.ParseAmount(raw)
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}

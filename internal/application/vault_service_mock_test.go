package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
	"github.com/bnema/stakevault/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() any {
	return mock.Anything
}

type mockedService struct {
	repo     *mocks.MockVaultStateRepository
	registry *mocks.MockRegistry
	agents   *mocks.MockAgentDirectory
	shares   *mocks.MockShareLedger
	base     *mocks.MockBaseAsset
	events   *mocks.MockEventPublisher
	clock    *mocks.MockClock
	service  *VaultService
}

func newMockedService(t *testing.T) mockedService {
	t.Helper()

	m := mockedService{
		repo:     mocks.NewMockVaultStateRepository(t),
		registry: mocks.NewMockRegistry(t),
		agents:   mocks.NewMockAgentDirectory(t),
		shares:   mocks.NewMockShareLedger(t),
		base:     mocks.NewMockBaseAsset(t),
		events:   mocks.NewMockEventPublisher(t),
		clock:    mocks.NewMockClock(t),
	}

	service, err := NewVaultService(Dependencies{
		Vault:      testVault,
		Repository: m.repo,
		Registry:   m.registry,
		Agents:     m.agents,
		Shares:     m.shares,
		Base:       m.base,
		Events:     m.events,
		Clock:      m.clock,
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)
	m.service = service
	return m
}

func storedVault(t *testing.T) domain.VaultState {
	t.Helper()

	state, err := domain.NewVaultState("owner", noFeeParams(), testEpoch)
	require.NoError(t, err)
	return state
}

// expectAgents registers agents with weight 1 each, resolvable through the
// directory.
func (m mockedService) expectAgents(agents map[domain.AccountID]*mocks.MockStakingAgent, order ...domain.AccountID) {
	registered := make([]ports.RegisteredAgent, 0, len(order))
	for _, account := range order {
		registered = append(registered, ports.RegisteredAgent{Account: account, Weight: 1})
		m.agents.EXPECT().Agent(mockAnyContext(), account).Return(agents[account], nil)
	}
	m.registry.EXPECT().GetAgents(mockAnyContext()).Return(uint64(len(order)), registered, nil)
}

func TestStakeDoesNotSaveWhenTransferFails(t *testing.T) {
	m := newMockedService(t)
	agent := mocks.NewMockStakingAgent(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)
	m.clock.EXPECT().Now().Return(testEpoch)
	m.expectAgents(map[domain.AccountID]*mocks.MockStakingAgent{"agent-1": agent}, "agent-1")
	agent.EXPECT().StakedValue(mockAnyContext()).Return(domain.Amount(0), nil)

	transferErr := errors.New("insufficient balance")
	m.base.EXPECT().Transfer(mockAnyContext(), domain.AccountID("alice"), testVault, domain.Amount(500)).Return(transferErr)

	_, err := m.service.Stake(context.Background(), "alice", 500)
	require.ErrorIs(t, err, transferErr)
	assert.Contains(t, err.Error(), "transfer stake")
}

func TestStakeSavesAndPublishesAfterCollaborators(t *testing.T) {
	m := newMockedService(t)
	agent := mocks.NewMockStakingAgent(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)
	m.clock.EXPECT().Now().Return(testEpoch)
	m.expectAgents(map[domain.AccountID]*mocks.MockStakingAgent{"agent-1": agent}, "agent-1")
	agent.EXPECT().StakedValue(mockAnyContext()).Return(domain.Amount(0), nil)

	var calls []string
	m.base.EXPECT().Transfer(mockAnyContext(), domain.AccountID("alice"), testVault, domain.Amount(500)).
		Run(func(context.Context, domain.AccountID, domain.AccountID, domain.Amount) { calls = append(calls, "transfer") }).
		Return(nil)
	agent.EXPECT().Deposit(mockAnyContext(), domain.Amount(500)).
		Run(func(context.Context, domain.Amount) { calls = append(calls, "deposit") }).
		Return(nil)
	m.shares.EXPECT().Mint(mockAnyContext(), domain.AccountID("alice"), domain.Amount(500)).
		Run(func(context.Context, domain.AccountID, domain.Amount) { calls = append(calls, "mint") }).
		Return(nil)
	m.repo.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(state domain.VaultState) bool {
		return state.Pool.TotalPooled == 500 && state.Pool.TotalSharesMinted == 500
	})).
		Run(func(context.Context, domain.VaultState) { calls = append(calls, "save") }).
		Return(nil)
	m.events.EXPECT().Publish(mockAnyContext(), domain.Staked{Staker: "alice", Amount: 500, NewShares: 500}).
		Run(func(context.Context, domain.Event) { calls = append(calls, "publish") }).
		Return(nil)

	result, err := m.service.Stake(context.Background(), "alice", 500)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(500), result.Shares)
	assert.Equal(t, []string{"transfer", "deposit", "mint", "save", "publish"}, calls)
}

func TestPublishFailureDoesNotFailCommittedOperation(t *testing.T) {
	m := newMockedService(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)
	m.clock.EXPECT().Now().Return(testEpoch)
	m.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)
	m.events.EXPECT().Publish(mockAnyContext(), domain.IncentiveAdjusted{NewIncentive: 250}).Return(errors.New("broker down"))

	require.NoError(t, m.service.AdjustIncentive(context.Background(), "owner", 250))
}

func TestSaveFailureSkipsPublish(t *testing.T) {
	m := newMockedService(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)
	m.clock.EXPECT().Now().Return(testEpoch)
	saveErr := errors.New("disk full")
	m.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(saveErr)

	err := m.service.AdjustMinimumStake(context.Background(), "owner", 7)
	require.ErrorIs(t, err, saveErr)
	assert.Contains(t, err.Error(), "save vault")
}

func TestWithdrawUnbondedSkipsAgentsWithNothingReady(t *testing.T) {
	m := newMockedService(t)
	idle := mocks.NewMockStakingAgent(t)
	ready := mocks.NewMockStakingAgent(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)
	m.clock.EXPECT().Now().Return(testEpoch)
	m.expectAgents(map[domain.AccountID]*mocks.MockStakingAgent{"agent-1": idle, "agent-2": ready}, "agent-1", "agent-2")
	idle.EXPECT().WithdrawUnbonded(mockAnyContext()).Return(domain.Amount(0), domain.ErrNothingToWithdraw)
	ready.EXPECT().WithdrawUnbonded(mockAnyContext()).Return(domain.Amount(30), nil)
	m.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)

	withdrawn, err := m.service.DelegateWithdrawUnbonded(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(30), withdrawn)
}

func TestWithdrawUnbondedPropagatesAgentFailure(t *testing.T) {
	m := newMockedService(t)
	broken := mocks.NewMockStakingAgent(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)
	m.clock.EXPECT().Now().Return(testEpoch)
	m.expectAgents(map[domain.AccountID]*mocks.MockStakingAgent{"agent-1": broken}, "agent-1")
	agentErr := errors.New("agent unreachable")
	broken.EXPECT().WithdrawUnbonded(mockAnyContext()).Return(domain.Amount(0), agentErr)

	_, err := m.service.DelegateWithdrawUnbonded(context.Background())
	require.ErrorIs(t, err, agentErr)
}

func TestCompoundSkipsAgentsWithNothingToClaim(t *testing.T) {
	m := newMockedService(t)
	idle := mocks.NewMockStakingAgent(t)
	earning := mocks.NewMockStakingAgent(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)
	m.clock.EXPECT().Now().Return(testEpoch)
	m.expectAgents(map[domain.AccountID]*mocks.MockStakingAgent{"agent-1": idle, "agent-2": earning}, "agent-1", "agent-2")
	idle.EXPECT().Compound(mockAnyContext(), domain.Bips(100)).Return(domain.Amount(0), domain.Amount(0), domain.ErrNothingToClaim)
	earning.EXPECT().Compound(mockAnyContext(), domain.Bips(100)).Return(domain.Amount(99), domain.Amount(1), nil)
	m.base.EXPECT().Transfer(mockAnyContext(), testVault, domain.AccountID("keeper"), domain.Amount(1)).Return(nil)
	m.repo.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(state domain.VaultState) bool {
		return state.Pool.TotalPooled == 99
	})).Return(nil)
	m.events.EXPECT().Publish(mockAnyContext(), domain.Compounded{Caller: "keeper", Amount: 99, Incentive: 1}).Return(nil)

	result, err := m.service.Compound(context.Background(), "keeper")
	require.NoError(t, err)
	assert.Equal(t, CompoundResult{Compounded: 99, Incentive: 1}, result)
}

func TestSendBatchDoesNotSaveWhenUnbondFails(t *testing.T) {
	m := newMockedService(t)
	agent := mocks.NewMockStakingAgent(t)

	state := storedVault(t)
	_, err := state.Pool.Deposit(1_000, testEpoch)
	require.NoError(t, err)
	_, err = state.RequestUnlock("alice", 400, testEpoch)
	require.NoError(t, err)

	m.repo.EXPECT().Load(mockAnyContext()).Return(state, nil)
	m.clock.EXPECT().Now().Return(testEpoch.Add(noFeeParams().Era))
	m.expectAgents(map[domain.AccountID]*mocks.MockStakingAgent{"agent-1": agent}, "agent-1")
	agent.EXPECT().StakedValue(mockAnyContext()).Return(domain.Amount(1_000), nil)
	unbondErr := errors.New("unbond rejected")
	agent.EXPECT().StartUnbond(mockAnyContext(), domain.Amount(400)).Return(unbondErr)

	_, err = m.service.SendBatchUnlockRequests(context.Background(), []domain.BatchID{0})
	require.ErrorIs(t, err, unbondErr)
}

func TestInitializeRejectsExistingVault(t *testing.T) {
	m := newMockedService(t)

	m.repo.EXPECT().Load(mockAnyContext()).Return(storedVault(t), nil)

	_, err := m.service.Initialize(context.Background(), InitializeCommand{Owner: "owner", Params: noFeeParams()})
	require.ErrorIs(t, err, domain.ErrVaultAlreadyInitialized)
}

func TestInitializePropagatesLoadFailure(t *testing.T) {
	m := newMockedService(t)

	loadErr := errors.New("permission denied")
	m.repo.EXPECT().Load(mockAnyContext()).Return(domain.VaultState{}, loadErr)

	_, err := m.service.Initialize(context.Background(), InitializeCommand{Owner: "owner", Params: noFeeParams()})
	require.ErrorIs(t, err, loadErr)
}

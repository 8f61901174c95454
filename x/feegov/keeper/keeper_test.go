package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clobchain/clobcore/pubsub"
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/types"
)

const testPool = sdk.PoolID(7)

func id(a sdk.AccountID) *sdk.AccountID { return &a }

func TestParams(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	require.Equal(t, types.DefaultParams(), keeper.GetParams(ctx))

	params := types.DefaultParams()
	params.VolatileFees.MaxTakerFee = 2000000
	require.Nil(t, keeper.SetParams(ctx, params))
	require.Equal(t, params, keeper.GetParams(ctx))

	params.Curve.ExcessWeight = sdk.NewDec(3)
	err := keeper.SetParams(ctx, params)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidParams, err.Code())
}

func TestInitPool(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	ctx = ctx.WithEpoch(3)

	require.Nil(t, keeper.InitPool(ctx, testPool, true))
	err := keeper.InitPool(ctx, testPool, false)
	require.Equal(t, types.CodePoolExists, err.Code())

	gov, found := keeper.GetGovernance(ctx, testPool)
	require.True(t, found)
	require.True(t, gov.Stable())
	require.Equal(t, uint64(3), gov.Epoch())
	require.Equal(t, types.DefaultParams().DefaultTradeParams, gov.TradeParams())

	_, found = keeper.GetGovernance(ctx, sdk.PoolID(8))
	require.False(t, found)
	err = keeper.SubmitProposal(ctx, sdk.PoolID(8), Owner, 500000, 200000, 0, 0)
	require.Equal(t, types.CodePoolNotFound, err.Code())
}

func TestKeeperScenario(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	require.Nil(t, keeper.InitPool(ctx, testPool, false))

	require.Nil(t, keeper.AdjustStake(ctx, testPool, 0, 300))
	ctx = ctx.WithEpoch(1)
	require.Nil(t, keeper.Refresh(ctx, testPool))

	gov, _ := keeper.GetGovernance(ctx, testPool)
	require.Equal(t, uint64(300), gov.VotingPower())
	require.Equal(t, uint64(150), gov.Quorum())

	require.Nil(t, keeper.SubmitProposal(ctx, testPool, Owner, 500000, 200000, 10000, 1000))
	winner, err := keeper.Vote(ctx, testPool, nil, id(Owner), 100)
	require.Nil(t, err)
	require.Nil(t, winner)

	winner, err = keeper.CastVote(ctx, testPool, Bob, id(Owner), 200000)
	require.Nil(t, err)
	require.Equal(t, Owner, winner.Proposer)

	require.Nil(t, keeper.SubmitProposal(ctx, testPool, Alice, 600000, 300000, 20000, 1000))
	winner, err = keeper.CastVote(ctx, testPool, Bob, id(Alice), 200000)
	require.Nil(t, err)
	require.Equal(t, Alice, winner.Proposer)

	ctx = ctx.WithEpoch(2)
	require.Equal(t, []sdk.PoolID{testPool}, keeper.RefreshAll(ctx))
	tp, err := keeper.GetTradeParams(ctx, testPool)
	require.Nil(t, err)
	require.Equal(t, types.TradeParams{TakerFee: 600000, MakerFee: 300000, StakeRequired: 20000}, tp)

	gov, _ = keeper.GetGovernance(ctx, testPool)
	require.Empty(t, gov.Proposals())
	require.Empty(t, gov.Votes())
	require.Equal(t, uint64(2), gov.Epoch())
}

// a rejected call must leave the stored record untouched
func TestFailedCallLeavesRecord(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	require.Nil(t, keeper.InitPool(ctx, testPool, false))
	require.Nil(t, keeper.AdjustStake(ctx, testPool, 0, 300))
	require.Nil(t, keeper.Refresh(ctx, testPool))
	require.Nil(t, keeper.SubmitProposal(ctx, testPool, Owner, 500000, 200000, 10000, 1000))
	_, err := keeper.Vote(ctx, testPool, nil, id(Owner), 50)
	require.Nil(t, err)

	kvs := ctx.KVStore(keyFeeGov)
	before := kvs.Get(GetGovernanceKey(testPool))

	err = keeper.SubmitProposal(ctx, testPool, Owner, 500000, 200000, 10000, 1000)
	require.Equal(t, types.CodeDuplicateProposal, err.Code())
	err = keeper.SubmitProposal(ctx, testPool, Alice, 1, 200000, 10000, 1000)
	require.Equal(t, types.CodeInvalidTakerFee, err.Code())
	_, err = keeper.Vote(ctx, testPool, id(Owner), id(Alice), 50)
	require.Equal(t, types.CodeProposalNotFound, err.Code())
	_, err = keeper.CastVote(ctx, testPool, Bob, id(Alice), 50)
	require.Equal(t, types.CodeProposalNotFound, err.Code())

	require.Equal(t, before, kvs.Get(GetGovernanceKey(testPool)))
	votes, ok := func() (uint64, bool) {
		gov, _ := keeper.GetGovernance(ctx, testPool)
		return gov.ProposalVotes(Owner)
	}()
	require.True(t, ok)
	require.Equal(t, uint64(50), votes)
}

func TestGetGovernanceReturnsCopy(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	require.Nil(t, keeper.InitPool(ctx, testPool, false))

	gov, _ := keeper.GetGovernance(ctx, testPool)
	gov.AdjustVotingPower(0, 1000)

	stored, _ := keeper.GetGovernance(ctx, testPool)
	require.Equal(t, uint64(0), stored.VotingPower())
}

func TestAdjustStakeUnderflowPanics(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	require.Nil(t, keeper.InitPool(ctx, testPool, false))
	require.Panics(t, func() {
		keeper.AdjustStake(ctx, testPool, 10, 0) // nolint: errcheck
	})
}

func TestIteratePools(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	for _, pool := range []sdk.PoolID{300, 2, 256, 1} {
		require.Nil(t, keeper.InitPool(ctx, pool, false))
	}

	var seen []sdk.PoolID
	keeper.IteratePools(ctx, func(pool sdk.PoolID, gov *types.FeeGovernance) bool {
		seen = append(seen, pool)
		return pool == 256
	})
	require.Equal(t, []sdk.PoolID{1, 2, 256}, seen)
	require.Equal(t, []sdk.PoolID{1, 2, 256, 300}, keeper.GetPools(ctx))

	keeper.DeleteGovernance(ctx, 2)
	require.Equal(t, []sdk.PoolID{1, 256, 300}, keeper.GetPools(ctx))
}

// replicas running the same calls must commit the same app hash
func TestDeterministicAppHash(t *testing.T) {
	run := func() sdk.CommitID {
		ctx, keeper, ms := CreateTestInput(t)
		for _, pool := range []sdk.PoolID{1, 2} {
			require.Nil(t, keeper.InitPool(ctx, pool, pool == 2))
			require.Nil(t, keeper.AdjustStake(ctx, pool, 0, 1000))
		}
		ms.Commit()

		ctx = ctx.WithEpoch(1)
		keeper.RefreshAll(ctx)
		require.Nil(t, keeper.SubmitProposal(ctx, 1, Alice, 600000, 300000, 1, 2))
		require.Nil(t, keeper.SubmitProposal(ctx, 1, Bob, 700000, 300000, 1, 2))
		_, err := keeper.CastVote(ctx, 1, Owner, id(Bob), 600)
		require.Nil(t, err)
		_, err = keeper.CastVote(ctx, 1, Alice, id(Alice), 400)
		require.Nil(t, err)
		require.Nil(t, keeper.SubmitProposal(ctx, 2, Alice, 60000, 30000, 1, 2))
		return ms.Commit()
	}

	first, second := run(), run()
	require.Equal(t, int64(2), first.Version)
	require.NotEmpty(t, first.Hash)
	require.Equal(t, first, second)
}

func TestReloadFromStore(t *testing.T) {
	ctx, keeper, ms := CreateTestInput(t)
	require.Nil(t, keeper.InitPool(ctx, testPool, false))
	require.Nil(t, keeper.AdjustStake(ctx, testPool, 0, 500))
	cid := ms.Commit()

	// a fresh keeper has an empty cache and decodes from the store
	fresh := NewKeeper(MakeTestCodec(), keyFeeGov, nil, types.DefaultCodespace)
	gov, found := fresh.GetGovernance(ctx, testPool)
	require.True(t, found)
	require.Equal(t, uint64(500), gov.VotingPower())
	require.Equal(t, cid, ms.LastCommitID())
}

func TestMixedVotesReload(t *testing.T) {
	ctx, keeper, ms := CreateTestInput(t)
	require.Nil(t, keeper.InitPool(ctx, testPool, false))
	require.Nil(t, keeper.SubmitProposal(ctx, testPool, Owner, 500000, 200000, 10000, 1000))

	_, err := keeper.CastVote(ctx, testPool, Bob, id(Owner), 40)
	require.Nil(t, err)
	_, err = keeper.Vote(ctx, testPool, nil, id(Owner), 10)
	require.Nil(t, err)

	// Bob's 40 are not up for grabs, the anonymous 10 are
	_, err = keeper.Vote(ctx, testPool, id(Owner), nil, 40)
	require.Equal(t, types.CodeInsufficientVotes, err.Code())
	_, err = keeper.Vote(ctx, testPool, id(Owner), nil, 10)
	require.Nil(t, err)
	ms.Commit()

	fresh := NewKeeper(MakeTestCodec(), keyFeeGov, nil, types.DefaultCodespace)
	var gov *types.FeeGovernance
	require.NotPanics(t, func() { gov, _ = fresh.GetGovernance(ctx, testPool) })
	votes, _ := gov.ProposalVotes(Owner)
	require.Equal(t, uint64(40), votes)

	// the reloaded record still lets Bob take his vote back
	_, err = fresh.CastVote(ctx, testPool, Bob, nil, 0)
	require.Nil(t, err)
	gov, _ = fresh.GetGovernance(ctx, testPool)
	votes, _ = gov.ProposalVotes(Owner)
	require.Equal(t, uint64(0), votes)
}

type recordingHooks struct {
	winners   []types.Proposal
	refreshed []types.TradeParams
}

func (h *recordingHooks) OnQuorumReached(ctx sdk.Context, pool sdk.PoolID, winner types.Proposal) {
	h.winners = append(h.winners, winner)
}

func (h *recordingHooks) OnEpochRefreshed(ctx sdk.Context, pool sdk.PoolID, active types.TradeParams) {
	h.refreshed = append(h.refreshed, active)
}

func TestHooksAndEvents(t *testing.T) {
	ctx, keeper, _ := CreateTestInput(t)
	hooks := &recordingHooks{}
	keeper = keeper.WithHooks(hooks)
	require.Panics(t, func() { keeper.WithHooks(hooks) })

	publisher := pubsub.NewPublisher("feegov-test", nil)
	require.Nil(t, publisher.Start())
	defer publisher.Stop() // nolint: errcheck
	keeper = keeper.WithPublisher(publisher)

	sub, err := publisher.NewSubscriber("test")
	require.Nil(t, err)
	events := make(chan types.QuorumReachedEvent, 1)
	require.Nil(t, sub.Subscribe(types.QuorumTopic, func(event pubsub.Event) {
		events <- event.(types.QuorumReachedEvent)
	}))

	require.Nil(t, keeper.InitPool(ctx, testPool, false))
	require.Nil(t, keeper.SubmitProposal(ctx, testPool, Owner, 500000, 200000, 10000, 1000))
	// quorum is 0 before the first refresh, any vote makes a winner
	_, sdkErr := keeper.Vote(ctx, testPool, nil, id(Owner), 1)
	require.Nil(t, sdkErr)
	sub.Wait()

	require.Len(t, hooks.winners, 1)
	require.Equal(t, Owner, hooks.winners[0].Proposer)
	event := <-events
	require.Equal(t, testPool, event.Pool)
	require.Equal(t, uint64(1), event.Winner.VotesFor)
	require.Equal(t, uint64(0), event.Epoch)
	require.Equal(t, uint64(0), event.Quorum)

	require.Nil(t, keeper.Refresh(ctx.WithEpoch(1), testPool))
	require.Equal(t, []types.TradeParams{{TakerFee: 500000, MakerFee: 200000, StakeRequired: 10000}}, hooks.refreshed)

	// the event carries the epoch and quorum the vote was counted against
	require.Nil(t, keeper.AdjustStake(ctx.WithEpoch(1), testPool, 0, 300))
	ctx2 := ctx.WithEpoch(2)
	require.Nil(t, keeper.Refresh(ctx2, testPool))
	require.Nil(t, keeper.SubmitProposal(ctx2, testPool, Bob, 600000, 300000, 10000, 0))
	_, sdkErr = keeper.Vote(ctx2, testPool, nil, id(Bob), 150)
	require.Nil(t, sdkErr)
	sub.Wait()

	event = <-events
	require.Equal(t, uint64(2), event.Epoch)
	require.Equal(t, uint64(150), event.Quorum)
	require.Equal(t, Bob, event.Winner.Proposer)
}

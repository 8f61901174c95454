package feegov

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/keeper"
	"github.com/clobchain/clobcore/x/feegov/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	ctx, k, _ := keeper.CreateTestInput(t)
	require.Nil(t, ValidateGenesis(DefaultGenesisState()))
	InitGenesis(ctx, k, DefaultGenesisState())

	require.Nil(t, k.InitPool(ctx, 2, false))
	require.Nil(t, k.InitPool(ctx, 1, true))
	require.Nil(t, k.AdjustStake(ctx, 2, 0, 1000))
	require.Nil(t, k.SubmitProposal(ctx, 2, keeper.Alice, 600000, 300000, 5, 9))
	owner := keeper.Alice
	_, err := k.CastVote(ctx, 2, keeper.Bob, &owner, 10)
	require.Nil(t, err)

	exported := ExportGenesis(ctx, k)
	require.Nil(t, ValidateGenesis(exported))
	require.Len(t, exported.Pools, 2)
	require.Equal(t, sdk.PoolID(1), exported.Pools[0].Pool)

	ctx2, k2, _ := keeper.CreateTestInput(t)
	InitGenesis(ctx2, k2, exported)
	require.Equal(t, exported, ExportGenesis(ctx2, k2))

	gov, found := k2.GetGovernance(ctx2, 2)
	require.True(t, found)
	votes, ok := gov.ProposalVotes(keeper.Alice)
	require.True(t, ok)
	require.Equal(t, uint64(10), votes)
}

func TestValidateGenesis(t *testing.T) {
	params := types.DefaultParams()
	gov := types.NewFeeGovernance(0, params)

	unsorted := NewGenesisState(params, []PoolGovernance{
		{Pool: 2, State: gov.State()},
		{Pool: 1, State: gov.State()},
	})
	require.NotNil(t, ValidateGenesis(unsorted))

	broken := gov.State()
	broken.Votes = []types.VoteRecord{{Voter: keeper.Bob, Target: keeper.Alice, HasTarget: true, Weight: 1}}
	require.NotNil(t, ValidateGenesis(NewGenesisState(params, []PoolGovernance{{Pool: 1, State: broken}})))

	badParams := params
	badParams.StableFees.MinTakerFee = badParams.StableFees.MaxTakerFee + 1
	require.NotNil(t, ValidateGenesis(NewGenesisState(badParams, nil)))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/clobchain/clobcore/types"
)

var (
	owner = sdk.MustAccountIDFromHex("000000000000000000000000000000000000000000000000000000000000000a")
	alice = sdk.MustAccountIDFromHex("00000000000000000000000000000000000000000000000000000000000000a1")
	bob   = sdk.MustAccountIDFromHex("00000000000000000000000000000000000000000000000000000000000000b0")
)

func id(a sdk.AccountID) *sdk.AccountID { return &a }

// scenarioA builds the state every scenario below starts from.
func scenarioA(t *testing.T) *FeeGovernance {
	g := NewFeeGovernance(0, DefaultParams())
	g.AdjustVotingPower(0, 300)
	require.Equal(t, uint64(300), g.VotingPower())
	require.Equal(t, uint64(0), g.Quorum())

	g.Refresh(1)
	require.Equal(t, uint64(150), g.Quorum())
	require.Equal(t, uint64(1), g.Epoch())

	require.Nil(t, g.AddProposal(500000, 200000, 10000, 1000, owner))
	return g
}

func TestScenarioA(t *testing.T) {
	g := scenarioA(t)

	winner, err := g.Vote(nil, id(owner), 100)
	require.Nil(t, err)
	require.Nil(t, winner)

	winner, err = g.Vote(nil, id(owner), 200000)
	require.Nil(t, err)
	require.NotNil(t, winner)
	require.Equal(t, TradeParams{TakerFee: 500000, MakerFee: 200000, StakeRequired: 10000}, winner.TradeParams())
	require.Equal(t, uint64(1000), winner.ExtraParam)
	require.Equal(t, uint64(200100), winner.VotesFor)
}

func TestScenarioBMoveVote(t *testing.T) {
	g := scenarioA(t)
	_, err := g.Vote(nil, id(owner), 100)
	require.Nil(t, err)
	_, err = g.Vote(nil, id(owner), 200000)
	require.Nil(t, err)

	require.Nil(t, g.AddProposal(600000, 300000, 20000, 1000, alice))
	winner, err := g.Vote(id(owner), id(alice), 200000)
	require.Nil(t, err)
	require.NotNil(t, winner)
	require.Equal(t, alice, winner.Proposer)
	require.Equal(t, TradeParams{TakerFee: 600000, MakerFee: 300000, StakeRequired: 20000}, g.NextTradeParams())

	votes, ok := g.ProposalVotes(owner)
	require.True(t, ok)
	require.Equal(t, uint64(100), votes)
	require.True(t, votes < g.Quorum())
	votes, ok = g.ProposalVotes(alice)
	require.True(t, ok)
	require.Equal(t, uint64(200000), votes)
}

func TestScenarioCDuplicateProposal(t *testing.T) {
	g := scenarioA(t)
	err := g.AddProposal(600000, 300000, 20000, 1000, owner)
	require.NotNil(t, err)
	require.Equal(t, CodeDuplicateProposal, err.Code())
	require.Len(t, g.Proposals(), 1)

	// a new epoch clears the way
	g.Refresh(2)
	require.Nil(t, g.AddProposal(600000, 300000, 20000, 1000, owner))
}

func TestScenarioDProposalNotFound(t *testing.T) {
	g := scenarioA(t)
	winner, err := g.Vote(nil, id(bob), 100)
	require.Nil(t, winner)
	require.NotNil(t, err)
	require.Equal(t, CodeProposalNotFound, err.Code())

	// the failing call must not have touched the valid side
	_, err = g.Vote(id(owner), id(bob), 0)
	require.Equal(t, CodeProposalNotFound, err.Code())
	votes, _ := g.ProposalVotes(owner)
	require.Equal(t, uint64(0), votes)
}

func TestScenarioEStableBounds(t *testing.T) {
	g := scenarioA(t)
	g.SetStable(true)
	err := g.AddProposal(200000, 50000, 10000, 1000, alice)
	require.NotNil(t, err)
	require.Equal(t, CodeInvalidTakerFee, err.Code())

	require.Nil(t, g.AddProposal(100000, 50000, 10000, 1000, alice))
}

func TestAddProposalFeeBounds(t *testing.T) {
	cases := []struct {
		name     string
		stable   bool
		taker    uint64
		maker    uint64
		expected sdk.CodeType
	}{
		{"volatile ok", false, 500000, 200000, sdk.CodeOK},
		{"volatile taker too low", false, 499999, 200000, CodeInvalidTakerFee},
		{"volatile taker too high", false, 1000001, 200000, CodeInvalidTakerFee},
		{"volatile maker too low", false, 500000, 199999, CodeInvalidMakerFee},
		{"volatile maker above cap", false, 1000000, 500001, CodeInvalidMakerFee},
		{"volatile maker at cap", false, 1000000, 500000, sdk.CodeOK},
		{"stable ok", true, 50000, 20000, sdk.CodeOK},
		{"stable maker at cap", true, 60000, 50000, sdk.CodeOK},
		{"stable maker above cap", true, 100000, 50001, CodeInvalidMakerFee},
		{"stable taker too low", true, 49999, 20000, CodeInvalidTakerFee},
	}
	for _, c := range cases {
		g := NewFeeGovernance(0, DefaultParams())
		g.SetStable(c.stable)
		err := g.AddProposal(c.taker, c.maker, 0, 0, owner)
		if c.expected == sdk.CodeOK {
			require.Nil(t, err, c.name)
		} else {
			require.NotNil(t, err, c.name)
			require.Equal(t, c.expected, err.Code(), c.name)
			require.Empty(t, g.Proposals(), c.name)
		}
	}
}

func TestMakerCappedByTaker(t *testing.T) {
	params := DefaultParams()
	params.VolatileFees.MaxMakerFee = 900000
	g := NewFeeGovernance(0, params)
	err := g.AddProposal(600000, 700000, 0, 0, owner)
	require.NotNil(t, err)
	require.Equal(t, CodeInvalidMakerFee, err.Code())
	require.Nil(t, g.AddProposal(600000, 600000, 0, 0, owner))
}

func TestWinnerTieBreak(t *testing.T) {
	g := NewFeeGovernance(0, DefaultParams())
	g.AdjustVotingPower(0, 100)
	g.Refresh(1)

	require.Nil(t, g.AddProposal(600000, 300000, 1, 0, bob))
	require.Nil(t, g.AddProposal(700000, 300000, 2, 0, alice))

	winner, err := g.Vote(nil, id(bob), 80)
	require.Nil(t, err)
	require.Equal(t, bob, winner.Proposer)

	winner, err = g.Vote(nil, id(alice), 80)
	require.Nil(t, err)
	require.Equal(t, alice, winner.Proposer, "equal votes go to the lower proposer id")

	winner, err = g.Vote(nil, id(bob), 1)
	require.Nil(t, err)
	require.Equal(t, bob, winner.Proposer)
}

func TestNoWinnerKeepsTradeParams(t *testing.T) {
	g := scenarioA(t)
	current := g.TradeParams()
	require.Equal(t, DefaultParams().DefaultTradeParams, current)

	winner, err := g.Vote(nil, id(owner), 200)
	require.Nil(t, err)
	require.NotNil(t, winner)

	// withdrawing drops below quorum and un-stages the winner
	winner, err = g.Vote(id(owner), nil, 200)
	require.Nil(t, err)
	require.Nil(t, winner)
	require.Equal(t, current, g.NextTradeParams())

	g.Refresh(2)
	require.Equal(t, current, g.TradeParams())
}

func TestRefreshPromotesWinner(t *testing.T) {
	g := scenarioA(t)
	_, err := g.Vote(nil, id(owner), 150)
	require.Nil(t, err)

	g.Refresh(2)
	require.Equal(t, TradeParams{TakerFee: 500000, MakerFee: 200000, StakeRequired: 10000}, g.TradeParams())
	require.Empty(t, g.Proposals())
	require.Empty(t, g.Votes())

	// refresh with an unchanged epoch still clears
	require.Nil(t, g.AddProposal(500000, 200000, 10000, 1000, owner))
	g.Refresh(2)
	require.Empty(t, g.Proposals())
	require.Equal(t, uint64(2), g.Epoch())
}

func TestCastVote(t *testing.T) {
	g := scenarioA(t)
	require.Nil(t, g.AddProposal(600000, 300000, 20000, 1000, alice))

	_, err := g.CastVote(bob, id(owner), 100)
	require.Nil(t, err)
	votes, _ := g.ProposalVotes(owner)
	require.Equal(t, uint64(100), votes)

	// moving the vote takes the old weight along and applies the new one
	winner, err := g.CastVote(bob, id(alice), 160)
	require.Nil(t, err)
	require.Equal(t, alice, winner.Proposer)
	votes, _ = g.ProposalVotes(owner)
	require.Equal(t, uint64(0), votes)
	votes, _ = g.ProposalVotes(alice)
	require.Equal(t, uint64(160), votes)

	record, ok := g.GetVote(bob)
	require.True(t, ok)
	require.Equal(t, alice, *record.TargetID())
	require.Equal(t, uint64(160), record.Weight)

	// unknown target fails and leaves the record in place
	_, err = g.CastVote(bob, id(sdk.AccountID{0xff}), 1)
	require.Equal(t, CodeProposalNotFound, err.Code())
	record, _ = g.GetVote(bob)
	require.Equal(t, uint64(160), record.Weight)

	winner, err = g.CastVote(bob, nil, 0)
	require.Nil(t, err)
	require.Nil(t, winner)
	_, ok = g.GetVote(bob)
	require.False(t, ok)
	votes, _ = g.ProposalVotes(alice)
	require.Equal(t, uint64(0), votes)
}

func TestVoteUnderflowPanics(t *testing.T) {
	g := scenarioA(t)
	require.Panics(t, func() {
		g.Vote(id(owner), nil, 1)
	})
}

func TestVoteKeepsAttributedWeight(t *testing.T) {
	g := scenarioA(t)
	require.Nil(t, g.AddProposal(600000, 300000, 20000, 1000, alice))
	_, err := g.CastVote(bob, id(owner), 40)
	require.Nil(t, err)

	_, err = g.Vote(id(owner), id(alice), 40)
	require.Equal(t, CodeInsufficientVotes, err.Code())
	votes, _ := g.ProposalVotes(owner)
	require.Equal(t, uint64(40), votes)

	// moving onto the same proposal changes nothing and is allowed
	_, err = g.Vote(id(owner), id(owner), 40)
	require.Nil(t, err)

	_, err = g.Vote(nil, id(owner), 5)
	require.Nil(t, err)
	_, err = g.Vote(id(owner), id(alice), 5)
	require.Nil(t, err)
	votes, _ = g.ProposalVotes(owner)
	require.Equal(t, uint64(40), votes)

	_, err = NewFeeGovernanceFromState(g.State())
	require.Nil(t, err)
}

func TestAdjustVotingPower(t *testing.T) {
	g := NewFeeGovernance(0, DefaultParams())
	threshold := DefaultStakeThreshold

	g.AdjustVotingPower(0, threshold+1000)
	require.Equal(t, threshold+500, g.VotingPower())
	require.Equal(t, uint64(0), g.Quorum())

	g.AdjustVotingPower(threshold+1000, 10)
	require.Equal(t, uint64(10), g.VotingPower())

	require.Panics(t, func() { g.AdjustVotingPower(11, 0) })
	require.Equal(t, uint64(10), g.VotingPower())
}

func TestAdjustVotingPowerRoundTrip(t *testing.T) {
	stakes := []uint64{0, 1, 300, DefaultStakeThreshold - 1, DefaultStakeThreshold, DefaultStakeThreshold + 1, DefaultStakeThreshold * 3, 1 << 62}
	for _, old := range stakes {
		for _, next := range stakes {
			g := NewFeeGovernance(0, DefaultParams())
			g.AdjustVotingPower(0, 1<<62)
			before := g.VotingPower()
			g.AdjustVotingPower(0, old)
			base := g.VotingPower()
			g.AdjustVotingPower(old, next)
			g.AdjustVotingPower(next, old)
			require.Equal(t, base, g.VotingPower(), "old %d new %d", old, next)
			g.AdjustVotingPower(old, 0)
			require.Equal(t, before, g.VotingPower())
		}
	}
}

func TestCurveMonotonic(t *testing.T) {
	curve := DefaultVotingPowerCurve()
	stakes := []uint64{0, 1, 2, 999, curve.Threshold - 1, curve.Threshold, curve.Threshold + 1, curve.Threshold + 2, curve.Threshold * 2, 1 << 40, 1<<64 - 1}
	prev := uint64(0)
	for _, s := range stakes {
		c := curve.Contribution(s)
		require.True(t, c >= prev, "contribution(%d) = %d < %d", s, c, prev)
		require.True(t, c <= s)
		prev = c
	}
	require.Equal(t, curve.Threshold, curve.Contribution(curve.Threshold))
	require.Equal(t, curve.Threshold+1, curve.Contribution(curve.Threshold+3))
}

func TestCurveValidate(t *testing.T) {
	curve := DefaultVotingPowerCurve()
	require.Nil(t, curve.Validate())
	curve.ExcessWeight = sdk.NewDecWithPrec(11, 1)
	require.NotNil(t, curve.Validate())
	curve.ExcessWeight = sdk.NewDec(-1)
	require.NotNil(t, curve.Validate())
}

func TestStateRoundTrip(t *testing.T) {
	g := scenarioA(t)
	require.Nil(t, g.AddProposal(600000, 300000, 20000, 7, alice))
	_, err := g.CastVote(bob, id(alice), 40)
	require.Nil(t, err)
	_, err = g.Vote(nil, id(owner), 20)
	require.Nil(t, err)
	g.SetStable(true)

	state := g.State()
	require.Equal(t, owner, state.Proposals[0].Proposer)
	require.Equal(t, alice, state.Proposals[1].Proposer)

	restored, err := NewFeeGovernanceFromState(state)
	require.Nil(t, err)
	require.Equal(t, state, restored.State())
	require.True(t, restored.Stable())

	bz := MsgCdc.MustMarshalBinaryLengthPrefixed(state)
	var decoded GovernanceState
	MsgCdc.MustUnmarshalBinaryLengthPrefixed(bz, &decoded)
	restored, err = NewFeeGovernanceFromState(decoded)
	require.Nil(t, err)
	require.Equal(t, bz, MsgCdc.MustMarshalBinaryLengthPrefixed(restored.State()))
}

func TestStateRejectsBrokenInvariants(t *testing.T) {
	g := scenarioA(t)
	_, err := g.CastVote(bob, id(owner), 40)
	require.Nil(t, err)

	state := g.State()
	state.Proposals[0].VotesFor = 39
	_, err = NewFeeGovernanceFromState(state)
	require.Equal(t, CodeInvalidState, err.Code())

	state = g.State()
	state.Votes[0].Target = alice
	_, err = NewFeeGovernanceFromState(state)
	require.Equal(t, CodeInvalidState, err.Code())

	state = g.State()
	state.Proposals = append(state.Proposals, state.Proposals[0])
	_, err = NewFeeGovernanceFromState(state)
	require.Equal(t, CodeInvalidState, err.Code())
}

func TestCloneIsIndependent(t *testing.T) {
	g := scenarioA(t)
	c := g.Clone()
	_, err := c.Vote(nil, id(owner), 10)
	require.Nil(t, err)

	votes, _ := g.ProposalVotes(owner)
	require.Equal(t, uint64(0), votes)
	votes, _ = c.ProposalVotes(owner)
	require.Equal(t, uint64(10), votes)
}

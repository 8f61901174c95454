package types

import (
	"fmt"

	sdk "github.com/clobchain/clobcore/types"
)

// GovernanceState is the persisted form of FeeGovernance. Slices are ordered
// by account id so equal values always encode to equal bytes.
type GovernanceState struct {
	Epoch           uint64       `json:"epoch"`
	Stable          bool         `json:"stable"`
	Params          Params       `json:"params"`
	VotingPower     uint64       `json:"voting_power"`
	Quorum          uint64       `json:"quorum"`
	Proposals       []Proposal   `json:"proposals"`
	Votes           []VoteRecord `json:"votes"`
	TradeParams     TradeParams  `json:"trade_params"`
	NextTradeParams TradeParams  `json:"next_trade_params"`
}

func (g *FeeGovernance) State() GovernanceState {
	return GovernanceState{
		Epoch:           g.epoch,
		Stable:          g.stable,
		Params:          g.params,
		VotingPower:     g.votingPower,
		Quorum:          g.quorum,
		Proposals:       g.Proposals(),
		Votes:           g.Votes(),
		TradeParams:     g.tradeParams,
		NextTradeParams: g.nextTradeParams,
	}
}

// NewFeeGovernanceFromState rebuilds a FeeGovernance and checks the invariants a
// sequence of mutators could have produced.
func NewFeeGovernanceFromState(state GovernanceState) (*FeeGovernance, sdk.Error) {
	if err := state.Params.UpdateCheck(); err != nil {
		return nil, ErrInvalidState(DefaultCodespace, err.Error())
	}

	g := NewFeeGovernance(state.Epoch, state.Params)
	g.stable = state.Stable
	g.votingPower = state.VotingPower
	g.quorum = state.Quorum
	g.tradeParams = state.TradeParams
	g.nextTradeParams = state.NextTradeParams

	for i, p := range state.Proposals {
		if i > 0 && state.Proposals[i-1].Proposer.Compare(p.Proposer) >= 0 {
			return nil, ErrInvalidState(DefaultCodespace, "proposals are not sorted by proposer or contain duplicates")
		}
		proposal := p
		g.proposals[p.Proposer] = &proposal
	}

	attributed := make(map[sdk.AccountID]uint64)
	for i, v := range state.Votes {
		if i > 0 && state.Votes[i-1].Voter.Compare(v.Voter) >= 0 {
			return nil, ErrInvalidState(DefaultCodespace, "votes are not sorted by voter or contain duplicates")
		}
		if !v.HasTarget {
			return nil, ErrInvalidState(DefaultCodespace, fmt.Sprintf("vote of %s has no target", v.Voter))
		}
		if _, ok := g.proposals[v.Target]; !ok {
			return nil, ErrInvalidState(DefaultCodespace, fmt.Sprintf("vote of %s targets unknown proposal %s", v.Voter, v.Target))
		}
		sum, ok := sdk.AddUint64(attributed[v.Target], v.Weight)
		if !ok {
			return nil, ErrInvalidState(DefaultCodespace, fmt.Sprintf("votes on %s overflow", v.Target))
		}
		attributed[v.Target] = sum
		g.votes[v.Voter] = v
	}
	for _, p := range state.Proposals {
		if weight := attributed[p.Proposer]; p.VotesFor < weight {
			return nil, ErrInvalidState(DefaultCodespace,
				fmt.Sprintf("proposal %s has %d votes, less than the %d attributed to it", p.Proposer, p.VotesFor, weight))
		}
	}
	return g, nil
}

package types

import (
	"fmt"
	"sort"

	sdk "github.com/clobchain/clobcore/types"
)

// FeeGovernance is the fee-voting state of one pool.
//
// Proposals and votes live for a single epoch. The quorum is half of the voting
// power observed at the last Refresh and is not updated by stake changes in
// between. Every mutator validates before it writes, so a returned error means
// the value is unchanged.
type FeeGovernance struct {
	epoch  uint64
	stable bool
	params Params

	votingPower uint64
	quorum      uint64

	proposals map[sdk.AccountID]*Proposal
	votes     map[sdk.AccountID]VoteRecord

	tradeParams     TradeParams
	nextTradeParams TradeParams
}

func NewFeeGovernance(epoch uint64, params Params) *FeeGovernance {
	return &FeeGovernance{
		epoch:           epoch,
		params:          params,
		proposals:       make(map[sdk.AccountID]*Proposal),
		votes:           make(map[sdk.AccountID]VoteRecord),
		tradeParams:     params.DefaultTradeParams,
		nextTradeParams: params.DefaultTradeParams,
	}
}

// SetStable selects the fee regime checked by later AddProposal calls.
func (g *FeeGovernance) SetStable(stable bool) {
	g.stable = stable
}

func (g *FeeGovernance) AddProposal(takerFee, makerFee, stakeRequired, extraParam uint64, proposer sdk.AccountID) sdk.Error {
	if err := g.params.Bounds(g.stable).Check(DefaultCodespace, takerFee, makerFee); err != nil {
		return err
	}
	if _, ok := g.proposals[proposer]; ok {
		return ErrDuplicateProposal(DefaultCodespace, proposer)
	}
	proposal := NewProposal(proposer, takerFee, makerFee, stakeRequired, extraParam)
	g.proposals[proposer] = &proposal
	return nil
}

// Vote moves weight from oldTarget to newTarget, either of which may be nil, and
// returns the proposal that currently wins, or nil if none reaches quorum. Weight
// attributed to voters by CastVote cannot be moved this way.
func (g *FeeGovernance) Vote(oldTarget, newTarget *sdk.AccountID, weight uint64) (*Proposal, sdk.Error) {
	from, err := g.lookup(oldTarget)
	if err != nil {
		return nil, err
	}
	to, err := g.lookup(newTarget)
	if err != nil {
		return nil, err
	}
	// weight beyond VotesFor is left to moveVotes, which panics on underflow
	if from != nil && from != to && weight <= from.VotesFor {
		if free := from.VotesFor - g.attributedTo(from.Proposer); weight > free {
			return nil, ErrInsufficientVotes(DefaultCodespace, from.Proposer, free, weight)
		}
	}
	g.moveVotes(from, weight, to, weight)
	return g.settle(), nil
}

// attributedTo sums the voter-attributed weight resting on proposer's proposal.
// Vote may only move the rest.
func (g *FeeGovernance) attributedTo(proposer sdk.AccountID) uint64 {
	var sum uint64
	for _, v := range g.votes {
		if v.HasTarget && v.Target == proposer {
			sum += v.Weight
		}
	}
	return sum
}

// CastVote replaces whatever voter placed before with weight on target. A nil
// target withdraws the voter's support altogether.
func (g *FeeGovernance) CastVote(voter sdk.AccountID, target *sdk.AccountID, weight uint64) (*Proposal, sdk.Error) {
	to, err := g.lookup(target)
	if err != nil {
		return nil, err
	}

	var (
		from       *Proposal
		fromWeight uint64
	)
	if prev, ok := g.votes[voter]; ok && prev.HasTarget {
		// a recorded target always has a live proposal, both are cleared together on Refresh
		from = g.proposals[prev.Target]
		fromWeight = prev.Weight
	}

	g.moveVotes(from, fromWeight, to, weight)
	if target == nil {
		delete(g.votes, voter)
	} else {
		g.votes[voter] = VoteRecord{Voter: voter, Target: *target, HasTarget: true, Weight: weight}
	}
	return g.settle(), nil
}

// AdjustVotingPower replaces the contribution of oldStake by that of newStake.
// The quorum is left alone until the next Refresh.
func (g *FeeGovernance) AdjustVotingPower(oldStake, newStake uint64) {
	oldPower := g.params.Curve.Contribution(oldStake)
	newPower := g.params.Curve.Contribution(newStake)

	var (
		power uint64
		ok    bool
	)
	if newPower >= oldPower {
		power, ok = sdk.AddUint64(g.votingPower, newPower-oldPower)
	} else {
		power, ok = sdk.SubUint64(g.votingPower, oldPower-newPower)
	}
	if !ok {
		panic(fmt.Sprintf("voting power out of range: power %d, adjust %d -> %d", g.votingPower, oldStake, newStake))
	}
	g.votingPower = power
}

// Refresh opens epoch newEpoch: it rebases the quorum, drops every proposal and
// vote and activates the trade params picked during the closing epoch.
func (g *FeeGovernance) Refresh(newEpoch uint64) {
	g.quorum = g.votingPower / 2
	g.proposals = make(map[sdk.AccountID]*Proposal)
	g.votes = make(map[sdk.AccountID]VoteRecord)
	g.epoch = newEpoch
	g.tradeParams = g.nextTradeParams
}

func (g *FeeGovernance) lookup(target *sdk.AccountID) (*Proposal, sdk.Error) {
	if target == nil {
		return nil, nil
	}
	p, ok := g.proposals[*target]
	if !ok {
		return nil, ErrProposalNotFound(DefaultCodespace, *target)
	}
	return p, nil
}

// moveVotes takes fromWeight off from and puts toWeight on to. Both checks run
// before either side is written.
func (g *FeeGovernance) moveVotes(from *Proposal, fromWeight uint64, to *Proposal, toWeight uint64) {
	var fromVotes uint64
	if from != nil {
		var ok bool
		fromVotes, ok = sdk.SubUint64(from.VotesFor, fromWeight)
		if !ok {
			panic(fmt.Sprintf("vote weight underflow: proposal %s has %d, removing %d", from.Proposer, from.VotesFor, fromWeight))
		}
	}
	var toVotes uint64
	if to != nil {
		base := to.VotesFor
		if to == from {
			base = fromVotes
		}
		var ok bool
		toVotes, ok = sdk.AddUint64(base, toWeight)
		if !ok {
			panic(fmt.Sprintf("vote weight overflow: proposal %s has %d, adding %d", to.Proposer, base, toWeight))
		}
	}
	if from != nil {
		from.VotesFor = fromVotes
	}
	if to != nil {
		to.VotesFor = toVotes
	}
}

// settle picks the winner and stages its trade params for the next epoch.
func (g *FeeGovernance) settle() *Proposal {
	winner := g.winner()
	if winner == nil {
		g.nextTradeParams = g.tradeParams
		return nil
	}
	g.nextTradeParams = winner.TradeParams()
	res := *winner
	return &res
}

// winner is the proposal at or above quorum with the most votes, the lowest
// proposer id breaking ties.
func (g *FeeGovernance) winner() *Proposal {
	var best *Proposal
	for _, p := range g.proposals {
		if p.VotesFor < g.quorum {
			continue
		}
		if best == nil || p.VotesFor > best.VotesFor ||
			(p.VotesFor == best.VotesFor && p.Proposer.Compare(best.Proposer) < 0) {
			best = p
		}
	}
	return best
}

//nolint
func (g *FeeGovernance) Epoch() uint64                { return g.epoch }
func (g *FeeGovernance) Stable() bool                 { return g.stable }
func (g *FeeGovernance) Params() Params               { return g.params }
func (g *FeeGovernance) VotingPower() uint64          { return g.votingPower }
func (g *FeeGovernance) Quorum() uint64               { return g.quorum }
func (g *FeeGovernance) TradeParams() TradeParams     { return g.tradeParams }
func (g *FeeGovernance) NextTradeParams() TradeParams { return g.nextTradeParams }

// Proposals returns copies of the active proposals ordered by proposer id.
func (g *FeeGovernance) Proposals() []Proposal {
	res := make([]Proposal, 0, len(g.proposals))
	for _, p := range g.proposals {
		res = append(res, *p)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Proposer.Compare(res[j].Proposer) < 0
	})
	return res
}

// ProposalVotes returns the weight behind proposer's proposal, false if there is none.
func (g *FeeGovernance) ProposalVotes(proposer sdk.AccountID) (uint64, bool) {
	p, ok := g.proposals[proposer]
	if !ok {
		return 0, false
	}
	return p.VotesFor, true
}

func (g *FeeGovernance) GetProposal(proposer sdk.AccountID) (Proposal, bool) {
	p, ok := g.proposals[proposer]
	if !ok {
		return Proposal{}, false
	}
	return *p, true
}

// Votes returns the attributed votes ordered by voter id.
func (g *FeeGovernance) Votes() []VoteRecord {
	res := make([]VoteRecord, 0, len(g.votes))
	for _, v := range g.votes {
		res = append(res, v)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Voter.Compare(res[j].Voter) < 0
	})
	return res
}

func (g *FeeGovernance) GetVote(voter sdk.AccountID) (VoteRecord, bool) {
	v, ok := g.votes[voter]
	return v, ok
}

func (g *FeeGovernance) Clone() *FeeGovernance {
	c := *g
	c.proposals = make(map[sdk.AccountID]*Proposal, len(g.proposals))
	for id, p := range g.proposals {
		cp := *p
		c.proposals[id] = &cp
	}
	c.votes = make(map[sdk.AccountID]VoteRecord, len(g.votes))
	for id, v := range g.votes {
		c.votes[id] = v
	}
	return &c
}

func (g *FeeGovernance) String() string {
	return fmt.Sprintf("FeeGovernance{Epoch: %d, Stable: %t, VotingPower: %d, Quorum: %d, Proposals: %d, Votes: %d, TradeParams: %s}",
		g.epoch, g.stable, g.votingPower, g.quorum, len(g.proposals), len(g.votes), g.tradeParams)
}

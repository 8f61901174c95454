package types

import (
	"fmt"

	sdk "github.com/clobchain/clobcore/types"
)

// TradeParams are the fee rates (scaled by sdk.FloatScaling) and the stake a
// maker needs for the reduced maker fee.
type TradeParams struct {
	TakerFee      uint64 `json:"taker_fee"`
	MakerFee      uint64 `json:"maker_fee"`
	StakeRequired uint64 `json:"stake_required"`
}

func (tp TradeParams) String() string {
	return fmt.Sprintf("TradeParams{TakerFee: %d, MakerFee: %d, StakeRequired: %d}",
		tp.TakerFee, tp.MakerFee, tp.StakeRequired)
}

// Proposal is one proposer's fee tier for the current epoch.
// ExtraParam is stored and exported as given and never interpreted.
type Proposal struct {
	Proposer      sdk.AccountID `json:"proposer"`
	TakerFee      uint64        `json:"taker_fee"`
	MakerFee      uint64        `json:"maker_fee"`
	StakeRequired uint64        `json:"stake_required"`
	ExtraParam    uint64        `json:"extra_param"`
	VotesFor      uint64        `json:"votes_for"`
}

func NewProposal(proposer sdk.AccountID, takerFee, makerFee, stakeRequired, extraParam uint64) Proposal {
	return Proposal{
		Proposer:      proposer,
		TakerFee:      takerFee,
		MakerFee:      makerFee,
		StakeRequired: stakeRequired,
		ExtraParam:    extraParam,
	}
}

func (p Proposal) TradeParams() TradeParams {
	return TradeParams{
		TakerFee:      p.TakerFee,
		MakerFee:      p.MakerFee,
		StakeRequired: p.StakeRequired,
	}
}

func (p Proposal) String() string {
	return fmt.Sprintf(`Proposal
  Proposer:       %s
  Taker Fee:      %d
  Maker Fee:      %d
  Stake Required: %d
  Extra Param:    %d
  Votes For:      %d`, p.Proposer, p.TakerFee, p.MakerFee, p.StakeRequired, p.ExtraParam, p.VotesFor)
}

// VoteRecord is the weight a voter has placed, and on whom. HasTarget false means
// the voter currently backs no proposal.
type VoteRecord struct {
	Voter     sdk.AccountID `json:"voter"`
	Target    sdk.AccountID `json:"target"`
	HasTarget bool          `json:"has_target"`
	Weight    uint64        `json:"weight"`
}

func (v VoteRecord) TargetID() *sdk.AccountID {
	if !v.HasTarget {
		return nil
	}
	target := v.Target
	return &target
}

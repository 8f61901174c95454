package types

import (
	sdk "github.com/clobchain/clobcore/types"
)

// name to identify transaction routes
const MsgRoute = "feegov"

// Verify interface at compile time
var _, _, _ sdk.Msg = MsgSubmitProposal{}, MsgVote{}, MsgAdjustStake{}

//______________________________________________________________________

// MsgSubmitProposal proposes a fee tier for the current epoch of a pool.
type MsgSubmitProposal struct {
	Pool          sdk.PoolID    `json:"pool"`
	Proposer      sdk.AccountID `json:"proposer"`
	TakerFee      uint64        `json:"taker_fee"`
	MakerFee      uint64        `json:"maker_fee"`
	StakeRequired uint64        `json:"stake_required"`
	ExtraParam    uint64        `json:"extra_param"`
}

func NewMsgSubmitProposal(pool sdk.PoolID, proposer sdk.AccountID, takerFee, makerFee, stakeRequired, extraParam uint64) MsgSubmitProposal {
	return MsgSubmitProposal{
		Pool:          pool,
		Proposer:      proposer,
		TakerFee:      takerFee,
		MakerFee:      makerFee,
		StakeRequired: stakeRequired,
		ExtraParam:    extraParam,
	}
}

//nolint
func (msg MsgSubmitProposal) Route() string { return MsgRoute }
func (msg MsgSubmitProposal) Type() string  { return "submit_proposal" }

// get the bytes for the message signer to sign on
func (msg MsgSubmitProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(MsgCdc.MustMarshalJSON(msg))
}

// quick validity check, fee bounds depend on the pool and are checked by the keeper
func (msg MsgSubmitProposal) ValidateBasic() sdk.Error {
	if msg.Proposer.Empty() {
		return sdk.ErrInvalidAddress("proposer is empty")
	}
	if msg.TakerFee > sdk.FloatScaling || msg.MakerFee > sdk.FloatScaling {
		return ErrInvalidParams(DefaultCodespace, "fees should be no greater than 100%")
	}
	return nil
}

//______________________________________________________________________

// MsgVote places Weight from Voter on Target's proposal, replacing the voter's
// previous vote. A nil Target withdraws it.
type MsgVote struct {
	Pool   sdk.PoolID     `json:"pool"`
	Voter  sdk.AccountID  `json:"voter"`
	Target *sdk.AccountID `json:"target"`
	Weight uint64         `json:"weight"`
}

func NewMsgVote(pool sdk.PoolID, voter sdk.AccountID, target *sdk.AccountID, weight uint64) MsgVote {
	return MsgVote{
		Pool:   pool,
		Voter:  voter,
		Target: target,
		Weight: weight,
	}
}

//nolint
func (msg MsgVote) Route() string { return MsgRoute }
func (msg MsgVote) Type() string  { return "vote" }

// get the bytes for the message signer to sign on
func (msg MsgVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(MsgCdc.MustMarshalJSON(msg))
}

// quick validity check
func (msg MsgVote) ValidateBasic() sdk.Error {
	if msg.Voter.Empty() {
		return sdk.ErrInvalidAddress("voter is empty")
	}
	if msg.Target != nil && msg.Target.Empty() {
		return sdk.ErrInvalidAddress("target is empty")
	}
	return nil
}

//______________________________________________________________________

// MsgAdjustStake reports a change of Owner's stake in Pool.
type MsgAdjustStake struct {
	Pool     sdk.PoolID    `json:"pool"`
	Owner    sdk.AccountID `json:"owner"`
	OldStake uint64        `json:"old_stake"`
	NewStake uint64        `json:"new_stake"`
}

func NewMsgAdjustStake(pool sdk.PoolID, owner sdk.AccountID, oldStake, newStake uint64) MsgAdjustStake {
	return MsgAdjustStake{
		Pool:     pool,
		Owner:    owner,
		OldStake: oldStake,
		NewStake: newStake,
	}
}

//nolint
func (msg MsgAdjustStake) Route() string { return MsgRoute }
func (msg MsgAdjustStake) Type() string  { return "adjust_stake" }

// get the bytes for the message signer to sign on
func (msg MsgAdjustStake) GetSignBytes() []byte {
	return sdk.MustSortJSON(MsgCdc.MustMarshalJSON(msg))
}

// quick validity check
func (msg MsgAdjustStake) ValidateBasic() sdk.Error {
	if msg.Owner.Empty() {
		return sdk.ErrInvalidAddress("owner is empty")
	}
	if msg.OldStake == msg.NewStake {
		return ErrInvalidParams(DefaultCodespace, "stake is unchanged")
	}
	return nil
}

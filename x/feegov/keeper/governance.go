package keeper

import (
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/types"
)

// InitPool creates the governance record of a new pool at the context's epoch
// with the params currently in force.
func (k Keeper) InitPool(ctx sdk.Context, pool sdk.PoolID, stable bool) sdk.Error {
	if k.HasGovernance(ctx, pool) {
		return types.ErrPoolExists(k.codespace, pool)
	}
	gov := types.NewFeeGovernance(ctx.Epoch(), k.GetParams(ctx))
	gov.SetStable(stable)
	k.SetGovernance(ctx, pool, gov)
	k.Logger(ctx).Info("pool governance initialized", "pool", pool, "epoch", ctx.Epoch(), "stable", stable)
	return nil
}

func (k Keeper) SetStable(ctx sdk.Context, pool sdk.PoolID, stable bool) sdk.Error {
	return k.update(ctx, pool, func(gov *types.FeeGovernance) sdk.Error {
		gov.SetStable(stable)
		return nil
	})
}

func (k Keeper) SubmitProposal(ctx sdk.Context, pool sdk.PoolID, proposer sdk.AccountID,
	takerFee, makerFee, stakeRequired, extraParam uint64) sdk.Error {
	err := k.update(ctx, pool, func(gov *types.FeeGovernance) sdk.Error {
		return gov.AddProposal(takerFee, makerFee, stakeRequired, extraParam, proposer)
	})
	if err != nil {
		return err
	}
	k.metrics.ProposalsSubmitted.Add(1)
	k.Logger(ctx).Debug("proposal submitted", "pool", pool, "proposer", proposer,
		"taker_fee", takerFee, "maker_fee", makerFee, "stake_required", stakeRequired)
	return nil
}

// Vote moves unattributed weight between proposals, see FeeGovernance.Vote.
func (k Keeper) Vote(ctx sdk.Context, pool sdk.PoolID, oldTarget, newTarget *sdk.AccountID, weight uint64) (*types.Proposal, sdk.Error) {
	var winner *types.Proposal
	var epoch, quorum uint64
	err := k.update(ctx, pool, func(gov *types.FeeGovernance) (err sdk.Error) {
		winner, err = gov.Vote(oldTarget, newTarget, weight)
		epoch, quorum = gov.Epoch(), gov.Quorum()
		return err
	})
	if err != nil {
		return nil, err
	}
	k.afterVote(ctx, pool, epoch, quorum, winner)
	return winner, nil
}

// CastVote records voter's vote, see FeeGovernance.CastVote.
func (k Keeper) CastVote(ctx sdk.Context, pool sdk.PoolID, voter sdk.AccountID, target *sdk.AccountID, weight uint64) (*types.Proposal, sdk.Error) {
	var winner *types.Proposal
	var epoch, quorum uint64
	err := k.update(ctx, pool, func(gov *types.FeeGovernance) (err sdk.Error) {
		winner, err = gov.CastVote(voter, target, weight)
		epoch, quorum = gov.Epoch(), gov.Quorum()
		return err
	})
	if err != nil {
		return nil, err
	}
	k.afterVote(ctx, pool, epoch, quorum, winner)
	return winner, nil
}

// AdjustStake applies a stake change to the pool's voting power. Accounting that
// would drive the voting power out of range panics.
func (k Keeper) AdjustStake(ctx sdk.Context, pool sdk.PoolID, oldStake, newStake uint64) sdk.Error {
	return k.update(ctx, pool, func(gov *types.FeeGovernance) sdk.Error {
		gov.AdjustVotingPower(oldStake, newStake)
		return nil
	})
}

// Refresh moves the pool to the context's epoch.
func (k Keeper) Refresh(ctx sdk.Context, pool sdk.PoolID) sdk.Error {
	var active types.TradeParams
	err := k.update(ctx, pool, func(gov *types.FeeGovernance) sdk.Error {
		gov.Refresh(ctx.Epoch())
		active = gov.TradeParams()
		return nil
	})
	if err != nil {
		return err
	}
	k.OnEpochRefreshed(ctx, pool, active)
	k.Logger(ctx).Info("pool governance refreshed", "pool", pool, "epoch", ctx.Epoch(),
		"taker_fee", active.TakerFee, "maker_fee", active.MakerFee)
	return nil
}

// RefreshAll refreshes every pool, in pool id order, and returns them.
func (k Keeper) RefreshAll(ctx sdk.Context) []sdk.PoolID {
	pools := k.GetPools(ctx)
	for _, pool := range pools {
		if err := k.Refresh(ctx, pool); err != nil {
			// the pool was listed from the same store a moment ago
			panic(err)
		}
	}
	return pools
}

// GetTradeParams returns the fees active in the pool's current epoch.
func (k Keeper) GetTradeParams(ctx sdk.Context, pool sdk.PoolID) (types.TradeParams, sdk.Error) {
	gov, ok := k.GetGovernance(ctx, pool)
	if !ok {
		return types.TradeParams{}, types.ErrPoolNotFound(k.codespace, pool)
	}
	return gov.TradeParams(), nil
}

func (k Keeper) afterVote(ctx sdk.Context, pool sdk.PoolID, epoch, quorum uint64, winner *types.Proposal) {
	k.metrics.Votes.Add(1)
	if winner == nil {
		return
	}
	k.metrics.QuorumReached.Add(1)
	k.OnQuorumReached(ctx, pool, *winner)
	if k.publisher != nil {
		k.publisher.Publish(types.QuorumReachedEvent{
			Pool:   pool,
			Epoch:  epoch,
			Quorum: quorum,
			Winner: *winner,
		})
	}
	k.Logger(ctx).Debug("proposal above quorum", "pool", pool, "proposer", winner.Proposer, "votes", winner.VotesFor)
}

package feegov

import (
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/keeper"
	"github.com/clobchain/clobcore/x/feegov/tags"
	"github.com/clobchain/clobcore/x/feegov/types"
)

// Handle all "feegov" type messages.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case types.MsgSubmitProposal:
			return handleMsgSubmitProposal(ctx, k, msg)
		case types.MsgVote:
			return handleMsgVote(ctx, k, msg)
		case types.MsgAdjustStake:
			return handleMsgAdjustStake(ctx, k, msg)
		default:
			errMsg := "Unrecognized feegov msg type"
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgSubmitProposal(ctx sdk.Context, k keeper.Keeper, msg types.MsgSubmitProposal) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}
	err := k.SubmitProposal(ctx, msg.Pool, msg.Proposer, msg.TakerFee, msg.MakerFee, msg.StakeRequired, msg.ExtraParam)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(
			tags.Action, tags.ActionSubmitProposal,
			tags.Pool, msg.Pool.String(),
			tags.Proposer, msg.Proposer.String(),
		),
	}
}

func handleMsgVote(ctx sdk.Context, k keeper.Keeper, msg types.MsgVote) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}
	winner, err := k.CastVote(ctx, msg.Pool, msg.Voter, msg.Target, msg.Weight)
	if err != nil {
		return err.Result()
	}

	resTags := sdk.NewTags(
		tags.Action, tags.ActionVote,
		tags.Pool, msg.Pool.String(),
		tags.Voter, msg.Voter.String(),
	)
	if msg.Target != nil {
		resTags = resTags.AppendTag(tags.Target, []byte(msg.Target.String()))
	}

	var data []byte
	if winner != nil {
		resTags = resTags.AppendTag(tags.Action, tags.ActionQuorumReached)
		resTags = resTags.AppendTag(tags.Winner, []byte(winner.Proposer.String()))
		data = winner.Proposer.Bytes()
	}
	return sdk.Result{
		Data: data,
		Tags: resTags,
	}
}

func handleMsgAdjustStake(ctx sdk.Context, k keeper.Keeper, msg types.MsgAdjustStake) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}
	if err := k.AdjustStake(ctx, msg.Pool, msg.OldStake, msg.NewStake); err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: sdk.NewTags(
			tags.Action, tags.ActionAdjustStake,
			tags.Pool, msg.Pool.String(),
			tags.Owner, msg.Owner.String(),
		),
	}
}

// EndEpoch is called at every epoch boundary, ctx carries the new epoch.
func EndEpoch(ctx sdk.Context, k keeper.Keeper) (resTags sdk.Tags) {
	logger := ctx.Logger().With("module", "x/feegov")

	pools := k.RefreshAll(ctx)
	for _, pool := range pools {
		resTags = resTags.AppendTag(tags.Action, tags.ActionRefresh)
		resTags = resTags.AppendTag(tags.Pool, []byte(pool.String()))
	}
	logger.Info("fee governance epoch ended", "epoch", ctx.Epoch(), "pools", len(pools))
	return resTags
}

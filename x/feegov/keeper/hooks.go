package keeper

import (
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/types"
)

var _ types.FeeGovHooks = Keeper{}

// Implements FeeGovHooks
func (k Keeper) OnQuorumReached(ctx sdk.Context, pool sdk.PoolID, winner types.Proposal) {
	if k.hooks != nil {
		k.hooks.OnQuorumReached(ctx, pool, winner)
	}
}

// Implements FeeGovHooks
func (k Keeper) OnEpochRefreshed(ctx sdk.Context, pool sdk.PoolID, active types.TradeParams) {
	if k.hooks != nil {
		k.hooks.OnEpochRefreshed(ctx, pool, active)
	}
}

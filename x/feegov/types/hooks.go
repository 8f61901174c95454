package types

import (
	sdk "github.com/clobchain/clobcore/types"
)

// FeeGovHooks lets other modules react to governance outcomes.
type FeeGovHooks interface {
	OnQuorumReached(ctx sdk.Context, pool sdk.PoolID, winner Proposal)
	OnEpochRefreshed(ctx sdk.Context, pool sdk.PoolID, active TradeParams)
}

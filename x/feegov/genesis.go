package feegov

import (
	"fmt"

	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/keeper"
	"github.com/clobchain/clobcore/x/feegov/types"
)

// PoolGovernance is the exported governance record of one pool.
type PoolGovernance struct {
	Pool  sdk.PoolID            `json:"pool"`
	State types.GovernanceState `json:"state"`
}

// GenesisState - all fee governance state that must be provided at genesis
type GenesisState struct {
	Params types.Params     `json:"params"`
	Pools  []PoolGovernance `json:"pools"`
}

func NewGenesisState(params types.Params, pools []PoolGovernance) GenesisState {
	return GenesisState{
		Params: params,
		Pools:  pools,
	}
}

// get raw genesis raw message for testing
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params: types.DefaultParams(),
	}
}

// InitGenesis sets the params and every pool record.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(err)
	}
	for _, pg := range data.Pools {
		gov, err := types.NewFeeGovernanceFromState(pg.State)
		if err != nil {
			panic(err)
		}
		k.SetGovernance(ctx, pg.Pool, gov)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper, pools in id order.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) GenesisState {
	var pools []PoolGovernance
	k.IteratePools(ctx, func(pool sdk.PoolID, gov *types.FeeGovernance) bool {
		pools = append(pools, PoolGovernance{Pool: pool, State: gov.State()})
		return false
	})
	return NewGenesisState(k.GetParams(ctx), pools)
}

// ValidateGenesis checks the params, the pool order and every record.
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.UpdateCheck(); err != nil {
		return err
	}
	for i, pg := range data.Pools {
		if i > 0 && data.Pools[i-1].Pool >= pg.Pool {
			return fmt.Errorf("pools are not sorted by id or contain duplicates at %s", pg.Pool)
		}
		if _, err := types.NewFeeGovernanceFromState(pg.State); err != nil {
			return fmt.Errorf("pool %s: %s", pg.Pool, err.Msg())
		}
	}
	return nil
}

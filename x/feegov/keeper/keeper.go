package keeper

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/clobchain/clobcore/codec"
	"github.com/clobchain/clobcore/pubsub"
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/types"
)

// keeper of the fee governance store
type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec
	cache    *govCache
	metrics  *Metrics
	hooks    types.FeeGovHooks

	// optional, events are only published when set
	publisher *pubsub.Publisher

	// codespace
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, metrics *Metrics, codespace sdk.CodespaceType) Keeper {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		cache:     newGovCache(defaultCacheSize),
		metrics:   metrics,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/feegov")
}

// Set the governance hooks
func (k Keeper) WithHooks(h types.FeeGovHooks) Keeper {
	if k.hooks != nil {
		panic("cannot set feegov hooks twice")
	}
	k.hooks = h
	return k
}

// Set the publisher QuorumReachedEvents go to
func (k Keeper) WithPublisher(publisher *pubsub.Publisher) Keeper {
	k.publisher = publisher
	return k
}

// return the codespace
func (k Keeper) Codespace() sdk.CodespaceType {
	return k.codespace
}

//_________________________________________________________________________
// params

// GetParams returns the stored params, or the defaults before any were set.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := ctx.KVStore(k.storeKey).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &params)
	return params
}

// SetParams applies to pools initialized afterwards; existing pools keep the
// params captured at their initialization.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) sdk.Error {
	if err := params.UpdateCheck(); err != nil {
		return types.ErrInvalidParams(k.codespace, err.Error())
	}
	ctx.KVStore(k.storeKey).Set(ParamsKey, k.cdc.MustMarshalBinaryLengthPrefixed(params))
	return nil
}

//_________________________________________________________________________
// governance records

// GetGovernance returns a copy of the pool's governance record.
func (k Keeper) GetGovernance(ctx sdk.Context, pool sdk.PoolID) (*types.FeeGovernance, bool) {
	bz := ctx.KVStore(k.storeKey).Get(GetGovernanceKey(pool))
	if bz == nil {
		return nil, false
	}
	if gov, ok := k.cache.get(pool, bz); ok {
		return gov, true
	}
	gov := k.mustDecode(bz)
	k.cache.add(pool, bz, gov)
	return gov, true
}

func (k Keeper) HasGovernance(ctx sdk.Context, pool sdk.PoolID) bool {
	return ctx.KVStore(k.storeKey).Has(GetGovernanceKey(pool))
}

// SetGovernance stores gov as the pool's record.
func (k Keeper) SetGovernance(ctx sdk.Context, pool sdk.PoolID, gov *types.FeeGovernance) {
	bz := k.cdc.MustMarshalBinaryLengthPrefixed(gov.State())
	ctx.KVStore(k.storeKey).Set(GetGovernanceKey(pool), bz)
	k.cache.add(pool, bz, gov)
	k.recordGauges(pool, gov)
}

// DeleteGovernance removes the pool's record on pool teardown.
func (k Keeper) DeleteGovernance(ctx sdk.Context, pool sdk.PoolID) {
	ctx.KVStore(k.storeKey).Delete(GetGovernanceKey(pool))
	k.cache.remove(pool)
}

// IteratePools walks the governance records in pool id order.
func (k Keeper) IteratePools(ctx sdk.Context, fn func(pool sdk.PoolID, gov *types.FeeGovernance) (stop bool)) {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), GovernanceKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		pool := poolFromGovernanceKey(iterator.Key())
		if fn(pool, k.mustDecode(iterator.Value())) {
			break
		}
	}
}

// GetPools lists the ids of every pool with a governance record.
func (k Keeper) GetPools(ctx sdk.Context) (pools []sdk.PoolID) {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), GovernanceKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		pools = append(pools, poolFromGovernanceKey(iterator.Key()))
	}
	return pools
}

func (k Keeper) mustDecode(bz []byte) *types.FeeGovernance {
	var state types.GovernanceState
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &state)
	gov, err := types.NewFeeGovernanceFromState(state)
	if err != nil {
		panic(fmt.Sprintf("corrupted governance record: %s", err.Msg()))
	}
	return gov
}

// update loads the pool's record, applies fn and stores the result only if fn succeeds.
func (k Keeper) update(ctx sdk.Context, pool sdk.PoolID, fn func(gov *types.FeeGovernance) sdk.Error) sdk.Error {
	gov, ok := k.GetGovernance(ctx, pool)
	if !ok {
		return types.ErrPoolNotFound(k.codespace, pool)
	}
	if err := fn(gov); err != nil {
		return err
	}
	k.SetGovernance(ctx, pool, gov)
	return nil
}

func (k Keeper) recordGauges(pool sdk.PoolID, gov *types.FeeGovernance) {
	label := pool.String()
	k.metrics.VotingPower.With(poolLabel, label).Set(float64(gov.VotingPower()))
	k.metrics.Quorum.With(poolLabel, label).Set(float64(gov.Quorum()))
	k.metrics.Proposals.With(poolLabel, label).Set(float64(len(gov.Proposals())))
}

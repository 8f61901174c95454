package keeper

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clobchain/clobcore/codec"
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/orderbook/types"
)

// Keeper keeps the resting orders of every pool in one ordered index.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/orderbook")
}

// NextSequence hands out the pool's next order sequence number, starting at 1.
func (k Keeper) NextSequence(ctx sdk.Context, pool sdk.PoolID) uint64 {
	store := ctx.KVStore(k.storeKey)
	seq := sdk.BigEndianToUint64(store.Get(GetSequenceKey(pool))) + 1
	store.Set(GetSequenceKey(pool), sdk.Uint64ToBigEndian(seq))
	return seq
}

// PlaceOrder keys a new order with the pool's next sequence and rests it.
func (k Keeper) PlaceOrder(ctx sdk.Context, pool sdk.PoolID, isBid bool, price uint64,
	owner sdk.AccountID, clientOrderID, quantity uint64) (types.RestingOrder, sdk.Error) {
	if price == 0 || price > types.MaxPrice {
		return types.RestingOrder{}, types.ErrInvalidPrice(k.codespace, price)
	}
	key := types.EncodeOrderKey(isBid, price, k.NextSequence(ctx, pool))
	order := types.NewRestingOrder(key, owner, clientOrderID, quantity, ctx.Epoch())
	if err := k.InsertOrder(ctx, pool, order); err != nil {
		return types.RestingOrder{}, err
	}
	return order, nil
}

func (k Keeper) InsertOrder(ctx sdk.Context, pool sdk.PoolID, order types.RestingOrder) sdk.Error {
	if order.Key.Price() == 0 {
		return types.ErrInvalidPrice(k.codespace, 0)
	}
	store := ctx.KVStore(k.storeKey)
	storeKey := GetOrderKey(pool, order.Key)
	if store.Has(storeKey) {
		return types.ErrDuplicateOrderKey(k.codespace, order.Key)
	}
	store.Set(storeKey, k.cdc.MustMarshalBinaryLengthPrefixed(order))
	k.Logger(ctx).Debug("order inserted", "pool", pool, "key", order.Key)
	return nil
}

func (k Keeper) RemoveOrder(ctx sdk.Context, pool sdk.PoolID, key types.OrderKey) (types.RestingOrder, sdk.Error) {
	order, found := k.GetOrder(ctx, pool, key)
	if !found {
		return types.RestingOrder{}, types.ErrOrderNotFound(k.codespace, key)
	}
	ctx.KVStore(k.storeKey).Delete(GetOrderKey(pool, key))
	k.Logger(ctx).Debug("order removed", "pool", pool, "key", key)
	return order, nil
}

func (k Keeper) GetOrder(ctx sdk.Context, pool sdk.PoolID, key types.OrderKey) (order types.RestingOrder, found bool) {
	bz := ctx.KVStore(k.storeKey).Get(GetOrderKey(pool, key))
	if bz == nil {
		return order, false
	}
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &order)
	return order, true
}

// BestBid is the earliest order at the highest bid price.
func (k Keeper) BestBid(ctx sdk.Context, pool sdk.PoolID) (types.RestingOrder, bool) {
	store := ctx.KVStore(k.storeKey)
	start, end := bidRange(pool)

	// the last bid carries the highest price but the latest sequence at it
	iterator := store.ReverseIterator(start, end)
	if !iterator.Valid() {
		iterator.Close()
		return types.RestingOrder{}, false
	}
	last := k.mustKey(pool, iterator.Key())
	iterator.Close()

	first := append(GetPoolOrdersPrefix(pool), types.EncodeOrderKey(true, last.Price(), 0).Bytes()...)
	iterator = store.Iterator(first, end)
	defer iterator.Close()
	return k.decode(iterator.Value()), true
}

// BestAsk is the earliest order at the lowest ask price.
func (k Keeper) BestAsk(ctx sdk.Context, pool sdk.PoolID) (types.RestingOrder, bool) {
	start, end := askRange(pool)
	iterator := ctx.KVStore(k.storeKey).Iterator(start, end)
	defer iterator.Close()
	if !iterator.Valid() {
		return types.RestingOrder{}, false
	}
	return k.decode(iterator.Value()), true
}

// IterateOrders walks a pool's orders in key order: bids by ascending price, then asks
// by ascending price, FIFO within a price.
func (k Keeper) IterateOrders(ctx sdk.Context, pool sdk.PoolID, fn func(order types.RestingOrder) (stop bool)) {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), GetPoolOrdersPrefix(pool))
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		if fn(k.decode(iterator.Value())) {
			break
		}
	}
}

func (k Keeper) decode(bz []byte) (order types.RestingOrder) {
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &order)
	return order
}

func (k Keeper) mustKey(pool sdk.PoolID, storeKey []byte) types.OrderKey {
	key, err := types.OrderKeyFromBytes(storeKey[len(GetPoolOrdersPrefix(pool)):])
	if err != nil {
		panic(err)
	}
	return key
}

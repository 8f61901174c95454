package keeper

import (
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/orderbook/types"
)

// Keys for the order book store
//
// - 0x02<pool_Bytes><orderKey_Bytes>: RestingOrder
//
// - 0x03<pool_Bytes>: next sequence number of the pool
var (
	OrderKeyPrefix    = []byte{0x02}
	SequenceKeyPrefix = []byte{0x03}
)

// prefix of every order of pool
func GetPoolOrdersPrefix(pool sdk.PoolID) []byte {
	return append(OrderKeyPrefix, sdk.Uint64ToBigEndian(uint64(pool))...)
}

func GetOrderKey(pool sdk.PoolID, key types.OrderKey) []byte {
	return append(GetPoolOrdersPrefix(pool), key.Bytes()...)
}

func GetSequenceKey(pool sdk.PoolID) []byte {
	return append(SequenceKeyPrefix, sdk.Uint64ToBigEndian(uint64(pool))...)
}

// bid and ask halves of a pool's key space, end exclusive
func bidRange(pool sdk.PoolID) (start, end []byte) {
	prefix := GetPoolOrdersPrefix(pool)
	return prefix, append(GetPoolOrdersPrefix(pool), types.EncodeOrderKey(false, 0, 0).Bytes()...)
}

func askRange(pool sdk.PoolID) (start, end []byte) {
	prefix := GetPoolOrdersPrefix(pool)
	return append(GetPoolOrdersPrefix(pool), types.EncodeOrderKey(false, 0, 0).Bytes()...), sdk.PrefixEndBytes(prefix)
}

package keeper

import (
	sdk "github.com/clobchain/clobcore/types"
)

// Keys for the fee governance store
// Items are stored with the following key: values
//
// - 0x00: Params
//
// - 0x01<pool_Bytes>: GovernanceState
var (
	ParamsKey           = []byte{0x00}
	GovernanceKeyPrefix = []byte{0x01}
)

// gets the key for the governance record of pool
func GetGovernanceKey(pool sdk.PoolID) []byte {
	return append(GovernanceKeyPrefix, sdk.Uint64ToBigEndian(uint64(pool))...)
}

// pool id from a governance key
func poolFromGovernanceKey(key []byte) sdk.PoolID {
	return sdk.PoolID(sdk.BigEndianToUint64(key[len(GovernanceKeyPrefix):]))
}

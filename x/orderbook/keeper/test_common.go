package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clobchain/clobcore/codec"
	"github.com/clobchain/clobcore/store"
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/orderbook/types"
)

var keyOrderBook = sdk.NewKVStoreKey(types.StoreKey)

// CreateTestInput mounts the order book store on a fresh in-memory multistore.
func CreateTestInput(t *testing.T) (sdk.Context, Keeper) {
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(keyOrderBook, nil)
	require.Nil(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, sdk.Header{ChainID: "clob-test", Height: 1}, log.NewNopLogger())
	return ctx, NewKeeper(codec.New(), keyOrderBook, types.DefaultCodespace)
}

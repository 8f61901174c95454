package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clobchain/clobcore/codec"
	"github.com/clobchain/clobcore/store"
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/types"
)

var (
	keyFeeGov = sdk.NewKVStoreKey(types.StoreKey)

	Owner = sdk.MustAccountIDFromHex("000000000000000000000000000000000000000000000000000000000000000a")
	Alice = sdk.MustAccountIDFromHex("00000000000000000000000000000000000000000000000000000000000000a1")
	Bob   = sdk.MustAccountIDFromHex("00000000000000000000000000000000000000000000000000000000000000b0")
)

// create a codec used only for testing
func MakeTestCodec() *codec.Codec {
	cdc := codec.New()
	sdk.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	return cdc
}

// CreateTestInput mounts the feegov store on a fresh in-memory multistore.
func CreateTestInput(t *testing.T) (sdk.Context, Keeper, *store.CommitMultiStore) {
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(keyFeeGov, nil)
	err := ms.LoadLatestVersion()
	require.Nil(t, err)

	ctx := sdk.NewContext(ms, sdk.Header{ChainID: "clob-test", Height: 1}, log.NewNopLogger())
	keeper := NewKeeper(MakeTestCodec(), keyFeeGov, NopMetrics(), types.DefaultCodespace)
	return ctx, keeper, ms
}

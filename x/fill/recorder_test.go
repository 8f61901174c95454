package fill

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clobchain/clobcore/pubsub"
	sdk "github.com/clobchain/clobcore/types"
	fgtypes "github.com/clobchain/clobcore/x/feegov/types"
	"github.com/clobchain/clobcore/x/fill/types"
	obtypes "github.com/clobchain/clobcore/x/orderbook/types"
)

var (
	alice = sdk.MustAccountIDFromHex("00000000000000000000000000000000000000000000000000000000000000a1")
	bob   = sdk.MustAccountIDFromHex("00000000000000000000000000000000000000000000000000000000000000b1")
)

func makeFill(t *testing.T, owner sdk.AccountID, expired, takerIsBid bool, base, quote uint64) *types.Fill {
	fill := types.NewFill(obtypes.EncodeOrderKey(!takerIsBid, 100, 1), 1, 100, owner,
		expired, true, base, quote, takerIsBid, 0, types.PriceSnapshot{})
	require.Nil(t, types.ApplyFees(fill, fgtypes.TradeParams{TakerFee: 1000000, MakerFee: 500000}))
	return fill
}

func testContext() sdk.Context {
	return sdk.NewContext(nil, sdk.Header{Height: 7}, log.NewNopLogger())
}

func TestRecordRejectsUnsettledFill(t *testing.T) {
	r := NewRecorder()
	fill := types.NewFill(obtypes.EncodeOrderKey(true, 100, 1), 1, 100, alice,
		false, true, 1, 100, true, 0, types.PriceSnapshot{})
	err := r.Record(testContext(), 1, fill)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidFill, err.Code())
	require.Empty(t, r.Fills())
}

func TestRecordAndSettle(t *testing.T) {
	r := NewRecorder()
	ctx := testContext()
	require.Nil(t, r.Record(ctx, 2, makeFill(t, bob, false, true, 10, 10000)))
	require.Nil(t, r.Record(ctx, 1, makeFill(t, alice, false, true, 10, 10000)))
	require.Nil(t, r.Record(ctx, 1, makeFill(t, alice, true, true, 50, 0)))
	require.Nil(t, r.Record(ctx, 1, makeFill(t, alice, false, false, 5, 2000)))

	fills := r.Fills()
	require.Len(t, fills, 4)
	require.Equal(t, sdk.PoolID(2), fills[0].Pool)
	require.Equal(t, int64(7), fills[0].Height)

	expired := r.InterestFills(func(e types.FillEvent) bool { return e.Fill.Expired })
	require.Len(t, expired, 1)
	require.Equal(t, uint64(50), expired[0].Fill.BaseToReturn)

	settlements := r.Settlements()
	require.Equal(t, []OwnerSettlement{
		{Pool: 1, Owner: alice, BaseToReturn: 55, QuoteToReturn: 10000, MakerFees: 5 + 1},
		{Pool: 2, Owner: bob, QuoteToReturn: 10000, MakerFees: 5},
	}, settlements)

	r.Clear()
	require.Empty(t, r.Fills())
	require.Empty(t, r.Settlements())
}

func TestFlush(t *testing.T) {
	publisher := pubsub.NewPublisher("fill-test", nil)
	require.Nil(t, publisher.Start())
	defer publisher.Stop() // nolint: errcheck

	sub, err := publisher.NewSubscriber("test")
	require.Nil(t, err)
	var (
		mtx      sync.Mutex
		received []types.FillEvent
	)
	require.Nil(t, sub.Subscribe(types.Topic, func(event pubsub.Event) {
		mtx.Lock()
		defer mtx.Unlock()
		received = append(received, event.(types.FillEvent))
	}))

	r := NewRecorder()
	require.Nil(t, r.Record(testContext(), 1, makeFill(t, alice, false, true, 10, 10000)))
	require.Nil(t, r.Record(testContext(), 1, makeFill(t, bob, true, false, 0, 300)))
	require.Equal(t, 2, r.Flush(publisher))
	sub.Wait()

	require.Empty(t, r.Fills())
	mtx.Lock()
	defer mtx.Unlock()
	require.Len(t, received, 2)
	require.Equal(t, uint64(0), received[0].Fill.BaseToReturn+received[1].Fill.BaseToReturn)

	require.Equal(t, 0, r.Flush(nil))
}

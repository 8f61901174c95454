package fill

import (
	"sort"
	"sync"

	"github.com/clobchain/clobcore/pubsub"
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/fill/types"
)

// Recorder buffers the fills settled within one block until they are flushed
// to subscribers.
//
// NOTE: the buffer should be cleared per block, Flush does it after publishing.
type Recorder struct {
	mtx sync.Mutex
	// fills settled in this block, in recording order
	fills []types.FillEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record validates fill and appends its record. Fees must be applied first.
func (r *Recorder) Record(ctx sdk.Context, pool sdk.PoolID, fill *types.Fill) sdk.Error {
	if err := fill.Validate(); err != nil {
		return err
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.fills = append(r.fills, types.FillEvent{
		Pool:   pool,
		Height: ctx.BlockHeight(),
		Fill:   fill.Record(),
	})
	return nil
}

// Fills returns the buffered fills in recording order.
func (r *Recorder) Fills() []types.FillEvent {
	return r.InterestFills(func(types.FillEvent) bool { return true })
}

func (r *Recorder) InterestFills(choose func(types.FillEvent) bool) []types.FillEvent {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	fills := make([]types.FillEvent, 0, len(r.fills))
	for _, v := range r.fills {
		if choose(v) {
			fills = append(fills, v)
		}
	}
	return fills
}

// OwnerSettlement sums what one maker receives from a pool's buffered fills.
type OwnerSettlement struct {
	Pool          sdk.PoolID    `json:"pool"`
	Owner         sdk.AccountID `json:"owner"`
	BaseToReturn  uint64        `json:"base_to_return"`
	QuoteToReturn uint64        `json:"quote_to_return"`
	MakerFees     uint64        `json:"maker_fees"`
}

// Settlements aggregates the buffered fills per (pool, owner), ordered by pool
// then owner. It panics if a sum overflows.
func (r *Recorder) Settlements() []OwnerSettlement {
	type key struct {
		pool  sdk.PoolID
		owner sdk.AccountID
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()

	byOwner := make(map[key]*OwnerSettlement)
	for _, event := range r.fills {
		k := key{event.Pool, event.Fill.Owner}
		s, ok := byOwner[k]
		if !ok {
			s = &OwnerSettlement{Pool: event.Pool, Owner: event.Fill.Owner}
			byOwner[k] = s
		}
		s.BaseToReturn = mustAdd(s.BaseToReturn, event.Fill.BaseToReturn)
		s.QuoteToReturn = mustAdd(s.QuoteToReturn, event.Fill.QuoteToReturn)
		s.MakerFees = mustAdd(s.MakerFees, event.Fill.MakerFee)
	}

	res := make([]OwnerSettlement, 0, len(byOwner))
	for _, s := range byOwner {
		res = append(res, *s)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Pool != res[j].Pool {
			return res[i].Pool < res[j].Pool
		}
		return res[i].Owner.Compare(res[j].Owner) < 0
	})
	return res
}

// Flush publishes every buffered fill in order and clears the buffer. It returns
// the number of fills published. A nil publisher only clears.
func (r *Recorder) Flush(publisher *pubsub.Publisher) int {
	r.mtx.Lock()
	fills := r.fills
	r.fills = nil
	r.mtx.Unlock()

	if publisher != nil {
		for _, event := range fills {
			publisher.Publish(event)
		}
	}
	return len(fills)
}

func (r *Recorder) Clear() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.fills = nil
}

func mustAdd(a, b uint64) uint64 {
	sum, ok := sdk.AddUint64(a, b)
	if !ok {
		panic("settlement sum overflows uint64")
	}
	return sum
}

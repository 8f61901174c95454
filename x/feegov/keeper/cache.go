package keeper

import (
	"bytes"

	lru "github.com/hashicorp/golang-lru"

	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/types"
)

const defaultCacheSize = 256

// govCache keeps decoded governance records keyed by pool. An entry is only
// served while the stored bytes still match the bytes it was decoded from, so a
// keeper used against another store or version never sees a stale record.
type govCache struct {
	entries *lru.Cache
}

type cacheEntry struct {
	bz  []byte
	gov *types.FeeGovernance
}

func newGovCache(size int) *govCache {
	entries, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &govCache{entries: entries}
}

// get returns a private copy of the cached record for bz.
func (c *govCache) get(pool sdk.PoolID, bz []byte) (*types.FeeGovernance, bool) {
	v, ok := c.entries.Get(pool)
	if !ok {
		return nil, false
	}
	entry := v.(cacheEntry)
	if !bytes.Equal(entry.bz, bz) {
		return nil, false
	}
	return entry.gov.Clone(), true
}

func (c *govCache) add(pool sdk.PoolID, bz []byte, gov *types.FeeGovernance) {
	c.entries.Add(pool, cacheEntry{bz: bz, gov: gov.Clone()})
}

func (c *govCache) remove(pool sdk.PoolID) {
	c.entries.Remove(pool)
}

package types

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Header carries the position of the current state transition in the ledger.
type Header struct {
	ChainID string `json:"chain_id"`
	Height  int64  `json:"height"`
	Epoch   uint64 `json:"epoch"`
}

/*
Context is an immutable value passed to every keeper call. It is cloned and
updated cheaply with the With* methods:

 func handleMsg(ctx Context, msg Msg) Result {
 	...
 	ctx = ctx.WithEpoch(epoch)
 	...
 }
*/
type Context struct {
	context.Context
	ms     MultiStore
	header Header
	logger log.Logger
}

// create a new context
func NewContext(ms MultiStore, header Header, logger log.Logger) Context {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return Context{
		Context: context.Background(),
		ms:      ms,
		header:  header,
		logger:  logger,
	}
}

// is context nil
func (c Context) IsZero() bool {
	return c.Context == nil
}

// KVStore fetches a KVStore from the MultiStore.
func (c Context) KVStore(key StoreKey) KVStore {
	return c.ms.GetKVStore(key)
}

//nolint
func (c Context) MultiStore() MultiStore { return c.ms }
func (c Context) BlockHeader() Header    { return c.header }
func (c Context) BlockHeight() int64     { return c.header.Height }
func (c Context) Epoch() uint64          { return c.header.Epoch }
func (c Context) ChainID() string        { return c.header.ChainID }
func (c Context) Logger() log.Logger     { return c.logger }

func (c Context) WithMultiStore(ms MultiStore) Context {
	c.ms = ms
	return c
}

func (c Context) WithBlockHeader(header Header) Context {
	c.header = header
	return c
}

func (c Context) WithBlockHeight(height int64) Context {
	c.header.Height = height
	return c
}

func (c Context) WithEpoch(epoch uint64) Context {
	c.header.Epoch = epoch
	return c
}

func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

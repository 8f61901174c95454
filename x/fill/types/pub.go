package types

import (
	"github.com/clobchain/clobcore/pubsub"
	sdk "github.com/clobchain/clobcore/types"
)

const (
	Topic = pubsub.Topic("fill")
)

// FillEvent carries one settled fill of a pool.
type FillEvent struct {
	Pool   sdk.PoolID
	Height int64
	Fill   FillRecord
}

func (event FillEvent) GetTopic() pubsub.Topic {
	return Topic
}

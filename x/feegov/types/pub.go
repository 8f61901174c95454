package types

import (
	"github.com/clobchain/clobcore/pubsub"
	sdk "github.com/clobchain/clobcore/types"
)

const (
	QuorumTopic = pubsub.Topic("fee-quorum")
)

// QuorumReachedEvent is published whenever a vote leaves a proposal winning.
type QuorumReachedEvent struct {
	Pool   sdk.PoolID
	Epoch  uint64
	Quorum uint64
	Winner Proposal
}

func (event QuorumReachedEvent) GetTopic() pubsub.Topic {
	return QuorumTopic
}

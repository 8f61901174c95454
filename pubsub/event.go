package pubsub

type Topic string

// Event is anything a module publishes. Implementations are plain values so a
// handler may keep them after it returns.
type Event interface {
	GetTopic() Topic
}

type Handler func(Event)

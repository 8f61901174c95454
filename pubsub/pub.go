package pubsub

import (
	"errors"
	"sync"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// ErrDuplicateClientID is returned when a client tries to subscribe
	// with an existing client ID.
	ErrDuplicateClientID = errors.New("clientID is exist")

	// ErrAlreadySubscribed is returned when a client tries to subscribe twice or
	// more using the same topic.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrSubscriptionNotFound is returned when a client tries to unsubscribe
	// from not existing subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrNilHandler = errors.New("handler is nil")
)

type operation int

const (
	sub operation = iota
	pub
	unsub
	shutdown
)

type cmd struct {
	op operation

	// subscribe, unsubscribe
	topic      Topic
	subscriber *subscriber
	clientID   ClientID

	// publish
	event Event

	// closed by the loop once the command is applied
	done chan struct{}
}

// Publisher fans events out to subscribers. Handlers run on their own goroutines;
// a subscriber's Wait blocks until every event published before the call was handled.
type Publisher struct {
	common.BaseService
	name string

	cmds chan cmd

	subscribers   map[ClientID]map[Topic]struct{}    // clientID -> topic -> empty struct
	subscriptions map[Topic]map[ClientID]*subscriber // topic -> clientID -> subscriber

	mtx sync.RWMutex
}

func NewPublisher(name string, logger log.Logger) *Publisher {
	publisher := &Publisher{
		name:        name,
		cmds:        make(chan cmd),
		subscribers: make(map[ClientID]map[Topic]struct{}),
	}
	publisher.BaseService = *common.NewBaseService(logger, name, publisher)
	return publisher
}

func (publisher *Publisher) OnStart() error {
	publisher.subscriptions = make(map[Topic]map[ClientID]*subscriber)
	go publisher.loop()
	return nil
}

func (publisher *Publisher) OnStop() {
	publisher.cmds <- cmd{op: shutdown}
}

func (publisher *Publisher) HasSubscribed(clientID ClientID, topic Topic) bool {
	publisher.mtx.RLock()
	defer publisher.mtx.RUnlock()
	subs, ok := publisher.subscribers[clientID]
	if !ok {
		return ok
	}
	if len(topic) != 0 {
		_, ok = subs[topic]
	}
	return ok
}

func (publisher *Publisher) loop() {
loop:
	for cmd := range publisher.cmds {
		switch cmd.op {
		case unsub:
			if len(cmd.topic) != 0 {
				publisher.remove(cmd.clientID, cmd.topic)
			} else {
				publisher.removeClient(cmd.clientID)
			}
		case shutdown:
			publisher.removeAll()
			break loop
		case sub:
			// initialize subscription for this client per topic if needed
			if _, ok := publisher.subscriptions[cmd.topic]; !ok {
				publisher.subscriptions[cmd.topic] = make(map[ClientID]*subscriber)
			}
			publisher.subscriptions[cmd.topic][cmd.clientID] = cmd.subscriber
		case pub:
			publisher.push(cmd.event)
		}
		if cmd.done != nil {
			close(cmd.done)
		}
	}
}

func (publisher *Publisher) push(event Event) {
	topic := event.GetTopic()
	for _, s := range publisher.subscriptions[topic] {
		handler := s.handler(topic)
		if handler == nil {
			continue
		}
		s.wg.Add(1)
		go func(s *subscriber, handler Handler) {
			defer s.wg.Done()
			handler(event)
		}(s, handler)
	}
}

func (publisher *Publisher) removeClient(clientID ClientID) {
	for topic, clientSubscriptions := range publisher.subscriptions {
		if _, ok := clientSubscriptions[clientID]; ok {
			publisher.remove(clientID, topic)
		}
	}
}

func (publisher *Publisher) removeAll() {
	for topic, clientSubscriptions := range publisher.subscriptions {
		for clientID := range clientSubscriptions {
			publisher.remove(clientID, topic)
		}
	}
}

func (publisher *Publisher) remove(clientID ClientID, topic Topic) {
	clientSubscriptions, ok := publisher.subscriptions[topic]
	if !ok {
		return
	}
	if _, ok = clientSubscriptions[clientID]; !ok {
		return
	}
	// if topic has no other clients subscribed, remove it.
	delete(publisher.subscriptions[topic], clientID)
	if len(publisher.subscriptions[topic]) == 0 {
		delete(publisher.subscriptions, topic)
	}
}

// Publish hands e to the loop and returns once every subscribed handler has been
// scheduled. A stopped publisher drops the event.
func (publisher *Publisher) Publish(e Event) {
	if !publisher.IsRunning() {
		return
	}
	done := make(chan struct{})
	select {
	case publisher.cmds <- cmd{op: pub, event: e, done: done}:
	case <-publisher.Quit():
		return
	}
	select {
	case <-done:
	case <-publisher.Quit():
	}
}

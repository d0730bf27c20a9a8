// Package event provides a topic-based publish/subscribe bus.
//
// A Bus is created by the composition root and handed to the components
// that publish or listen; there is no package-level instance. Delivery is
// synchronous and the bus is meant to be used from the game loop goroutine
// only.
package event

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrTopicExists   = errors.New("topic already registered")
	ErrUnknownTopic  = errors.New("topic not registered")
	ErrNotSubscribed = errors.New("subscription not active")
)

// Topic names an event stream
type Topic string

// Topics published by the scene switcher and the card battle
const (
	TopicSceneChanged Topic = "scene_changed"
	TopicQuit         Topic = "quit"
	TopicTurnStarted  Topic = "turn_started"
	TopicCardPlayed   Topic = "card_played"
	TopicEnemyActed   Topic = "enemy_acted"
	TopicBattleOver   Topic = "battle_over"
)

// Event is a published value
type Event struct {
	Topic   Topic
	Payload any
}

// Handler receives events for a subscribed topic
type Handler func(Event)

type subscriber struct {
	id      int
	handler Handler
}

type topicState struct {
	latest      Event
	published   bool
	subscribers []subscriber
}

// Bus routes events from publishers to subscribers
type Bus struct {
	topics map[Topic]*topicState
	nextID int
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		topics: make(map[Topic]*topicState),
		nextID: 1,
	}
}

// Register adds a topic. Registering an existing topic is an error.
func (b *Bus) Register(topic Topic) error {
	if _, ok := b.topics[topic]; ok {
		return fmt.Errorf("%w: %s", ErrTopicExists, topic)
	}
	b.topics[topic] = &topicState{}
	return nil
}

// Ensure registers each topic that is not registered yet
func (b *Bus) Ensure(topics ...Topic) {
	for _, t := range topics {
		if _, ok := b.topics[t]; !ok {
			b.topics[t] = &topicState{}
		}
	}
}

// Unregister removes a topic together with its subscribers
func (b *Bus) Unregister(topic Topic) error {
	if _, ok := b.topics[topic]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	delete(b.topics, topic)
	return nil
}

// Subscribe attaches handler to topic
func (b *Bus) Subscribe(topic Topic, handler Handler) (*Subscription, error) {
	ts, ok := b.topics[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	id := b.nextID
	b.nextID++
	ts.subscribers = append(ts.subscribers, subscriber{id: id, handler: handler})
	return &Subscription{bus: b, topic: topic, id: id}, nil
}

// Publish records payload as the latest value of topic and calls every
// subscriber in subscription order.
func (b *Bus) Publish(topic Topic, payload any) error {
	ts, ok := b.topics[topic]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	ev := Event{Topic: topic, Payload: payload}
	ts.latest = ev
	ts.published = true

	// Handlers may cancel subscriptions while we iterate.
	subs := make([]subscriber, len(ts.subscribers))
	copy(subs, ts.subscribers)
	for _, s := range subs {
		s.handler(ev)
	}
	return nil
}

// Latest returns the most recent event of topic.
// The boolean is false if nothing was published yet.
func (b *Bus) Latest(topic Topic) (Event, bool, error) {
	ts, ok := b.topics[topic]
	if !ok {
		return Event{}, false, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	return ts.latest, ts.published, nil
}

// Topics returns the registered topics in sorted order
func (b *Bus) Topics() []Topic {
	out := make([]Topic, 0, len(b.topics))
	for t := range b.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SubscriberCount returns the number of active subscriptions on topic
func (b *Bus) SubscriberCount(topic Topic) int {
	ts, ok := b.topics[topic]
	if !ok {
		return 0
	}
	return len(ts.subscribers)
}

// Subscription is a handle returned by Subscribe
type Subscription struct {
	bus   *Bus
	topic Topic
	id    int
}

// Topic returns the subscribed topic
func (s *Subscription) Topic() Topic {
	return s.topic
}

// Cancel detaches the handler
func (s *Subscription) Cancel() error {
	ts, ok := s.bus.topics[s.topic]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotSubscribed, s.topic)
	}
	for i, sub := range ts.subscribers {
		if sub.id == s.id {
			ts.subscribers = append(ts.subscribers[:i], ts.subscribers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotSubscribed, s.topic)
}

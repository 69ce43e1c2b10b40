// Package eventbus is an in-process publish/subscribe hub. Delivery is
// synchronous: Publish returns after every subscriber of the topic has run.
package eventbus

import (
	"sync"

	"github.com/nikolayk812/productcard-demo/internal/port"
	"go.uber.org/zap"
)

const TopicReviewSubmitted = "review-submitted"

type subscription struct {
	id      uint64
	handler port.Handler
}

type Bus struct {
	mu     sync.Mutex
	nextID uint64
	topics map[string][]subscription
	logger *zap.Logger
}

var _ port.EventBus = (*Bus)(nil)

func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Bus{
		topics: make(map[string][]subscription),
		logger: logger,
	}
}

// Subscribe registers handler for every future Publish on topic. The returned
// func removes it again and may be called more than once.
func (b *Bus) Subscribe(topic string, handler port.Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.topics[topic] = append(b.topics[topic], subscription{id: id, handler: handler})
	b.mu.Unlock()

	b.logger.Debug("subscribed", zap.String("topic", topic), zap.Uint64("subscription", id))

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(topic, id) })
	}
}

func (b *Bus) unsubscribe(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[topic]
	for i, sub := range subs {
		if sub.id == id {
			// copy instead of in-place delete: a Publish may be iterating the old slice
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			b.topics[topic] = next
			break
		}
	}
	if len(b.topics[topic]) == 0 {
		delete(b.topics, topic)
	}

	b.logger.Debug("unsubscribed", zap.String("topic", topic), zap.Uint64("subscription", id))
}

// Publish delivers payload to the current subscribers of topic in the order
// they subscribed. Subscriptions changed by a handler apply from the next Publish.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.Lock()
	subs := b.topics[topic]
	b.mu.Unlock()

	b.logger.Debug("publish", zap.String("topic", topic), zap.Int("subscribers", len(subs)))

	for _, sub := range subs {
		sub.handler(payload)
	}
}

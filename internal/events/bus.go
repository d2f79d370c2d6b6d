package events

import (
	"log/slog"
	"sync"

	"github.com/pulsard/pulsard-api/internal/domain"
)

// DefaultSubscriberBuffer is the per-subscription delivery buffer used
// when no size is configured.
const DefaultSubscriberBuffer = 16

// Bus is an in-process topic-based publish/subscribe mechanism. The zero
// value is not usable; construct with NewBus.
type Bus struct {
	mu     sync.Mutex
	topics map[string]map[*Subscription]struct{}
	buffer int
	closed bool
	logger *slog.Logger
}

// NewBus creates a Bus whose subscriptions buffer up to bufferSize
// undelivered payloads each. A non-positive bufferSize falls back to
// DefaultSubscriberBuffer.
func NewBus(bufferSize int, log *slog.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultSubscriberBuffer
	}
	return &Bus{
		topics: make(map[string]map[*Subscription]struct{}),
		buffer: bufferSize,
		logger: log.With("component", "event_bus"),
	}
}

// Subscribe registers a new subscription on the topic. The returned
// subscription receives every payload published to the topic from this
// point forward; it observes no history. The caller must Close the
// subscription when done with it, or it accumulates as a phantom
// subscriber.
//
// Subscribing on a closed bus returns an already-closed subscription
// whose channel yields no values.
func (b *Bus) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan []domain.TaskRecord, b.buffer),
		bus:   b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		sub.closed = true
		close(sub.ch)
		return sub
	}

	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		b.topics[topic] = subs
	}
	subs[sub] = struct{}{}

	b.logger.Debug("subscription opened", "topic", topic, "subscriber_count", len(subs))
	return sub
}

// Publish delivers the payload to every open subscription on the topic.
// Payloads arrive at each subscription in publish order. A subscription
// whose buffer is full loses its oldest undelivered payload to make room.
// Publishing on a closed bus, or on a topic with no subscribers, is a
// no-op.
func (b *Bus) Publish(topic string, payload []domain.TaskRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for sub := range b.topics[topic] {
		select {
		case sub.ch <- payload:
		default:
			// Buffer full: drop the oldest undelivered payload. The
			// nested selects guard against the subscriber consuming
			// between our attempts.
			select {
			case <-sub.ch:
				sub.dropped++
				b.logger.Warn("slow subscriber, dropped oldest payload",
					"topic", topic,
					"dropped_total", sub.dropped)
			default:
			}
			select {
			case sub.ch <- payload:
			default:
			}
		}
	}
}

// Close shuts the bus down: every open subscription is closed and
// deregistered, and subsequent publishes are no-ops. Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for topic, subs := range b.topics {
		for sub := range subs {
			sub.closed = true
			close(sub.ch)
		}
		delete(b.topics, topic)
	}

	b.logger.Info("event bus closed")
}

// SubscriberCount returns the number of open subscriptions on the topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.topics[topic])
}

// Subscription is a live channel between the bus and one consumer. It is
// created by Bus.Subscribe and must be closed by the consumer when it
// disconnects.
type Subscription struct {
	topic   string
	ch      chan []domain.TaskRecord
	bus     *Bus
	closed  bool   // guarded by bus.mu
	dropped uint64 // guarded by bus.mu
}

// C returns the channel payloads are delivered on. The channel is closed
// when the subscription is closed, either by the consumer or by the bus
// draining at shutdown.
func (s *Subscription) C() <-chan []domain.TaskRecord {
	return s.ch
}

// Topic returns the topic this subscription is registered on.
func (s *Subscription) Topic() string {
	return s.topic
}

// Close deregisters the subscription from the bus and closes its channel.
// Close is idempotent and safe to call concurrently with Publish and with
// the bus's own shutdown.
func (s *Subscription) Close() {
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if subs, ok := b.topics[s.topic]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(b.topics, s.topic)
		}
	}
	close(s.ch)
}

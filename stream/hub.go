package stream

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/spikit/logger"
	"github.com/kbukum/spikit/observability"
)

// Hub fans events out to any number of subscribers. Each subscriber owns its
// own bounded Sender/Stream pair, so one slow subscriber never stalls the
// publisher or its peers: events that don't fit a subscriber's buffer are
// dropped for that subscriber only.
//
// The hub is the sole owner of every subscriber's sender handle. All sends
// happen under the read lock and all handle closes under the write lock, so
// a handle is never closed while a Publish is using it.
type Hub[T any] struct {
	mu         sync.RWMutex
	subs       map[string]*Subscription[T]
	name       string
	bufferSize int
	log        *logger.Logger
	metrics    *observability.Metrics
	closed     bool
}

// HubOption configures a Hub.
type HubOption func(*hubConfig)

type hubConfig struct {
	name       string
	bufferSize int
	log        *logger.Logger
	metrics    *observability.Metrics
}

// WithBufferSize sets the per-subscriber buffer capacity.
func WithBufferSize(n int) HubOption {
	return func(c *hubConfig) { c.bufferSize = n }
}

// WithLogger sets the hub's logger.
func WithLogger(l *logger.Logger) HubOption {
	return func(c *hubConfig) { c.log = l }
}

// WithName sets the hub's name, used to tag metrics.
func WithName(name string) HubOption {
	return func(c *hubConfig) { c.name = name }
}

// WithMetricsRecorder sets the instrument set used to record dropped events
// and subscriber churn. Without it the hub records nothing.
func WithMetricsRecorder(m *observability.Metrics) HubOption {
	return func(c *hubConfig) { c.metrics = m }
}

// NewHub creates a hub with per-subscriber buffers of DefaultBufferSize
// unless overridden.
func NewHub[T any](opts ...HubOption) *Hub[T] {
	cfg := hubConfig{name: "hub", bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logger.Get("stream.hub")
	}
	return &Hub[T]{
		subs:       make(map[string]*Subscription[T]),
		name:       cfg.name,
		bufferSize: cfg.bufferSize,
		log:        cfg.log,
		metrics:    cfg.metrics,
	}
}

// Subscription is one subscriber's view of a hub: an ID for unsubscribing
// and a dedicated stream to consume.
type Subscription[T any] struct {
	id     string
	hub    *Hub[T]
	sender *Sender[T]
	stream *Stream[T]
}

// ID returns the subscription's unique identifier.
func (s *Subscription[T]) ID() string { return s.id }

// Stream returns the subscriber's event stream.
func (s *Subscription[T]) Stream() *Stream[T] { return s.stream }

// Cancel removes the subscription from the hub and ends its stream.
func (s *Subscription[T]) Cancel() {
	s.hub.Unsubscribe(s.id)
}

// Subscribe registers a new subscriber and returns its subscription.
// Subscribing to a closed hub returns a subscription whose stream is
// already complete.
func (h *Hub[T]) Subscribe() *Subscription[T] {
	sender, st := NewBuilder[T]().BufferSize(h.bufferSize).Build()
	sub := &Subscription[T]{
		id:     uuid.NewString(),
		hub:    h,
		sender: sender,
		stream: st,
	}

	h.mu.Lock()
	if h.closed {
		sender.Close()
		h.mu.Unlock()
		return sub
	}
	h.subs[sub.id] = sub
	total := len(h.subs)
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.SubscriberAdded(context.Background(), h.name)
	}
	h.log.Debug("subscriber added", map[string]interface{}{
		logger.FieldSubscriber: sub.id,
		logger.FieldCount:      total,
	})
	return sub
}

// Unsubscribe removes a subscriber and ends its stream. Unknown IDs are a
// no-op. The sender is closed under the write lock so it cannot race a
// Publish in flight.
func (h *Hub[T]) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
		sub.sender.Close()
	}
	h.mu.Unlock()

	if ok {
		if h.metrics != nil {
			h.metrics.SubscriberRemoved(context.Background(), h.name)
		}
		h.log.Debug("subscriber removed", map[string]interface{}{
			logger.FieldSubscriber: id,
		})
	}
}

// Publish delivers an event to every current subscriber and returns the
// number of deliveries. A subscriber whose buffer is full misses this event;
// a subscriber that closed its stream is removed.
//
// Delivery runs under the read lock. TrySend never blocks, and handle
// closure requires the write lock, so no subscriber sender can be closed
// mid-delivery.
func (h *Hub[T]) Publish(item T) int {
	delivered := 0
	var stale []string

	h.mu.RLock()
	for id, sub := range h.subs {
		switch err := sub.sender.TrySend(item); {
		case err == nil:
			delivered++
		case err == ErrClosed:
			stale = append(stale, id)
		default:
			if h.metrics != nil {
				h.metrics.RecordDrop(context.Background(), h.name)
			}
			h.log.Warn("subscriber buffer full, dropping event", map[string]interface{}{
				logger.FieldSubscriber: id,
			})
		}
	}
	h.mu.RUnlock()

	for _, id := range stale {
		h.Unsubscribe(id)
	}
	return delivered
}

// Len returns the current number of subscribers.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close ends every subscriber stream and rejects future subscriptions.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	removed := len(h.subs)
	for _, sub := range h.subs {
		sub.sender.Close()
	}
	h.subs = make(map[string]*Subscription[T])
	h.mu.Unlock()

	if h.metrics != nil {
		for i := 0; i < removed; i++ {
			h.metrics.SubscriberRemoved(context.Background(), h.name)
		}
	}
}

package stream

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/kbukum/spikit/errors"
)

// DefaultBufferSize is the buffer capacity used by New. It bounds the number
// of in-flight unconsumed events; producers block once it is reached.
const DefaultBufferSize = 100

// Stable sentinel values for the bridge's two failure conditions.
var (
	// ErrClosed reports a send after the stream side has been closed.
	ErrClosed = errors.StreamClosed()
	// ErrFull reports a non-blocking send on a full buffer.
	ErrFull = errors.BufferFull()
)

// core is the shared state between a stream and all of its sender handles.
type core[T any] struct {
	ch     chan T
	closed chan struct{} // closed when the consumer drops the stream
	// senders counts live handles; the buffer channel is closed when it
	// reaches zero, which terminates the stream after a final drain.
	senders   atomic.Int64
	closeOnce sync.Once
}

func (c *core[T]) dropped() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Sender is a handle for pushing events into a stream. Clone it to share the
// stream across concurrent producers; each handle must be closed exactly
// once, and a handle must not be used after (or concurrently with) its own
// Close.
type Sender[T any] struct {
	c         *core[T]
	closed    atomic.Bool
	closeOnce sync.Once
}

// Send enqueues an event, blocking only while the buffer is full. It fails
// with ErrClosed, without delivering the item, once the stream side has
// been closed, and with ctx.Err() if the context ends first. A timeout
// wrapper abandoning a Send leaves the bridge state untouched.
func (s *Sender[T]) Send(ctx context.Context, item T) error {
	if s.closed.Load() || s.c.dropped() {
		return ErrClosed
	}
	select {
	case s.c.ch <- item:
		return nil
	case <-s.c.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend enqueues an event without blocking. It fails with ErrFull when the
// buffer is full and ErrClosed when the stream side has been closed.
func (s *Sender[T]) TrySend(item T) error {
	if s.closed.Load() || s.c.dropped() {
		return ErrClosed
	}
	select {
	case s.c.ch <- item:
		return nil
	default:
		if s.c.dropped() {
			return ErrClosed
		}
		return ErrFull
	}
}

// Clone returns a new handle over the same buffer and close condition.
// The stream terminates only after every handle has been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	s.c.senders.Add(1)
	return &Sender[T]{c: s.c}
}

// Close releases this handle. Closing the last handle terminates the stream:
// the consumer drains whatever is buffered and then observes completion.
// Close is idempotent per handle.
func (s *Sender[T]) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.c.senders.Add(-1) == 0 {
			close(s.c.ch)
		}
	})
	return nil
}

// IsClosed reports whether the stream side has been closed.
func (s *Sender[T]) IsClosed() bool {
	return s.c.dropped()
}

// Capacity returns the buffer capacity shared by all handles.
func (s *Sender[T]) Capacity() int {
	return cap(s.c.ch)
}

// Stream is the consuming end of the bridge: a lazy, ordered, single-pass
// sequence. It is single-consumer; Next and Close must not race.
type Stream[T any] struct {
	c         *core[T]
	done      bool
	closeOnce sync.Once
}

// Next returns the next event. It blocks until an item is available, every
// sender handle has been closed (ok=false, no error: normal completion), or
// the context ends. An exhausted stream is not restartable: once ok=false
// has been returned, it keeps returning ok=false.
func (st *Stream[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if st.done {
		return zero, false, nil
	}
	select {
	case item, ok := <-st.c.ch:
		if !ok {
			st.done = true
			return zero, false, nil
		}
		return item, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

// Close drops the stream side: the buffer is released and every subsequent
// or in-flight Send observes ErrClosed instead of blocking forever.
// Close is idempotent.
func (st *Stream[T]) Close() error {
	st.closeOnce.Do(func() {
		st.done = true
		close(st.c.closed)
	})
	return nil
}

// New returns a connected Sender/Stream pair with DefaultBufferSize capacity.
func New[T any]() (*Sender[T], *Stream[T]) {
	return NewBuilder[T]().Build()
}

// Builder configures a Sender/Stream pair.
type Builder[T any] struct {
	bufferSize int
}

// NewBuilder creates a builder with the default buffer size.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{bufferSize: DefaultBufferSize}
}

// BufferSize sets the buffer capacity, bounding in-flight unconsumed events.
// Non-positive sizes are clamped to 1.
func (b *Builder[T]) BufferSize(n int) *Builder[T] {
	if n <= 0 {
		n = 1
	}
	b.bufferSize = n
	return b
}

// Build finalizes the configuration and returns a connected pair.
func (b *Builder[T]) Build() (*Sender[T], *Stream[T]) {
	c := &core[T]{
		ch:     make(chan T, b.bufferSize),
		closed: make(chan struct{}),
	}
	c.senders.Store(1)
	return &Sender[T]{c: c}, &Stream[T]{c: c}
}

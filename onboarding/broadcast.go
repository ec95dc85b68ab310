package onboarding

import (
	"sync"
)

// Broadcast is a multicast channel with a replay buffer of one: a new
// subscriber first receives the latest published value, if any. Publish
// never blocks; a subscriber that has not yet received its buffered value
// has it replaced by the newer one.
type Broadcast[T any] struct {
	mu     sync.Mutex
	subs   map[*Subscription[T]]struct{}
	last   T
	has    bool
	closed bool
	onDrop func()
}

// Subscription is one receiver of a Broadcast.
type Subscription[T any] struct {
	ch chan T
	b  *Broadcast[T]
}

// NewBroadcast returns an empty broadcast. onDrop, when set, is called for
// every value replaced in a subscriber buffer.
func NewBroadcast[T any](onDrop func()) *Broadcast[T] {
	return &Broadcast[T]{subs: map[*Subscription[T]]struct{}{}, onDrop: onDrop}
}

// Subscribe registers a receiver. On a closed broadcast the returned
// subscription's channel is already closed.
func (b *Broadcast[T]) Subscribe() *Subscription[T] {
	s := &Subscription[T]{ch: make(chan T, 1), b: b}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(s.ch)
		return s
	}
	if b.has {
		s.ch <- b.last
	}
	b.subs[s] = struct{}{}
	return s
}

// Publish delivers v to every subscriber and records it for replay.
func (b *Broadcast[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.last, b.has = v, true
	for s := range b.subs {
		select {
		case s.ch <- v:
			continue
		default:
		}
		// buffer full: drop the oldest value
		select {
		case <-s.ch:
			if b.onDrop != nil {
				b.onDrop()
			}
		default:
		}
		select {
		case s.ch <- v:
		default:
		}
	}
}

// Latest returns the most recently published value.
func (b *Broadcast[T]) Latest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last, b.has
}

// Subscribers returns the number of active subscriptions.
func (b *Broadcast[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes every subscription channel. Later publishes are ignored.
func (b *Broadcast[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		close(s.ch)
		delete(b.subs, s)
	}
}

// C returns the receive channel.
func (s *Subscription[T]) C() <-chan T { return s.ch }

// Close unsubscribes and closes the channel. It is safe to call more than
// once and after the broadcast was closed.
func (s *Subscription[T]) Close() {
	b := s.b
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[s]; ok {
		delete(b.subs, s)
		close(s.ch)
	}
}

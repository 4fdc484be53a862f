// Package live models push-based queries as cancellable subscriptions.
//
// A Subscription owns one producer goroutine. Unsubscribe cancels it and
// blocks until the producer has returned, so no value is delivered and no
// resource is held once it comes back.
package live

import (
	"context"
	"sync"
)

// Subscription delivers successive values on C until it is unsubscribed or
// its producer stops. C is closed when the producer returns.
type Subscription[T any] struct {
	C <-chan T

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start runs produce in its own goroutine and returns the subscription
// reading its output. produce must return once ctx is done.
func Start[T any](parent context.Context, produce func(ctx context.Context, out chan<- T)) *Subscription[T] {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan T, 1)
	s := &Subscription[T]{C: ch, cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(s.done)
		defer close(ch)
		produce(ctx, ch)
	}()
	return s
}

// Unsubscribe stops the producer and waits for it. Safe to call repeatedly.
func (s *Subscription[T]) Unsubscribe() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed once the producer has returned.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

// Send delivers v unless ctx is cancelled first.
func Send[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

// Map derives a subscription whose values are f applied to src's values.
// Unsubscribing the derived subscription also unsubscribes src.
func Map[T, U any](parent context.Context, src *Subscription[T], f func(T) U) *Subscription[U] {
	return Start(parent, func(ctx context.Context, out chan<- U) {
		defer src.Unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-src.C:
				if !ok {
					return
				}
				if !Send(ctx, out, f(v)) {
					return
				}
			}
		}
	})
}

// Static returns a subscription that emits v once and then stays open until
// unsubscribed.
func Static[T any](parent context.Context, v T) *Subscription[T] {
	return Start(parent, func(ctx context.Context, out chan<- T) {
		if Send(ctx, out, v) {
			<-ctx.Done()
		}
	})
}

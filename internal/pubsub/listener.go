package pubsub

import "context"

// ContinuousListener wraps a broker subscription for pull-style
// consumption. The subscription is cleaned up when ctx is cancelled.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to the broker and returns a listener.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{
		ctx: ctx,
		ch:  broker.Subscribe(ctx),
	}
}

// Next blocks until an event arrives. The second return is false when the
// context is cancelled or the subscription is closed.
func (l *ContinuousListener[T]) Next() (Event[T], bool) {
	select {
	case <-l.ctx.Done():
		var zero Event[T]
		return zero, false
	case event, ok := <-l.ch:
		if !ok {
			var zero Event[T]
			return zero, false
		}
		return event, true
	}
}

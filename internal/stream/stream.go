// Package stream implements cancellable snapshot subscriptions. A
// subscription delivers the full current result set on every emission, never
// a delta, and guarantees the backend listener is released on every exit
// path: explicit Cancel, context cancellation, or a query failure.
package stream

import (
	"context"
	"sync"
)

type Subscription[T any] struct {
	updates chan []T
	cancel  context.CancelFunc
	once    sync.Once
}

// Updates delivers snapshots. The channel is closed once the subscription
// stops for any reason.
func (s *Subscription[T]) Updates() <-chan []T {
	return s.updates
}

func (s *Subscription[T]) Cancel() {
	s.once.Do(s.cancel)
}

// Open starts a snapshot stream: query runs once immediately and again after
// every signal. release is invoked exactly once when the stream stops.
func Open[T any](
	ctx context.Context,
	signal <-chan struct{},
	release func(),
	query func(context.Context) ([]T, error),
) *Subscription[T] {

	ctx, cancel := context.WithCancel(ctx)

	s := &Subscription[T]{
		updates: make(chan []T),
		cancel:  cancel,
	}

	go func() {
		defer close(s.updates)
		defer release()
		defer cancel()

		for {
			snapshot, err := query(ctx)
			if err != nil {
				return
			}

			select {
			case s.updates <- snapshot:
			case <-ctx.Done():
				return
			}

			select {
			case _, ok := <-signal:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return s
}

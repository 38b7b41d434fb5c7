// Package notify carries change signals between repository writers and
// snapshot subscriptions. A signal says "the set under this topic changed",
// nothing more; subscribers re-query for the actual data.
package notify

import "context"

type Bus interface {
	Publish(ctx context.Context, topic string)

	// Subscribe returns a coalescing signal channel for topic and a release
	// function. Release must be called exactly once; after it returns no more
	// signals are delivered.
	Subscribe(ctx context.Context, topic string) (<-chan struct{}, func())
}

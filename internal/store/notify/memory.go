package notify

import (
	"context"
	"sync"
)

// MemoryBus is an in-process Bus for tests and single-node runs.
type MemoryBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan struct{}
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string]map[int]chan struct{})}
}

func (b *MemoryBus) Publish(_ context.Context, topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[topic] {
		// coalesce: a pending signal already covers this change
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (b *MemoryBus) Subscribe(_ context.Context, topic string) (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan struct{}, 1)
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan struct{})
	}
	b.subs[topic][id] = ch

	release := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if m := b.subs[topic]; m != nil {
			delete(m, id)
			if len(m) == 0 {
				delete(b.subs, topic)
			}
		}
	}
	return ch, release
}

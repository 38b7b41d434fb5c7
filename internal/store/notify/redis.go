package notify

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisBus fans change signals out over Redis pub/sub so every API node sees
// writes made by its peers.
type RedisBus struct {
	rdb *redis.Client
}

func NewRedisBus(rdb *redis.Client) *RedisBus {
	return &RedisBus{rdb: rdb}
}

func (b *RedisBus) Publish(ctx context.Context, topic string) {
	// Signals are advisory; a lost one only delays a snapshot until the next
	// write. Never fail the write that triggered it.
	if err := b.rdb.Publish(ctx, topic, "").Err(); err != nil {
		log.Println("notify publish error:", err)
	}
}

func (b *RedisBus) Subscribe(ctx context.Context, topic string) (<-chan struct{}, func()) {
	pubsub := b.rdb.Subscribe(ctx, topic)
	ch := make(chan struct{}, 1)

	go func() {
		for range pubsub.Channel() {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}()

	release := func() {
		_ = pubsub.Close()
	}
	return ch, release
}

var (
	_ Bus = (*MemoryBus)(nil)
	_ Bus = (*RedisBus)(nil)
)

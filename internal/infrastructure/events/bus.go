// Package events delivers coordinator events to subscribers.
package events

import (
	"context"
	"sync"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

const defaultBuffer = 64

// Bus fans published events out to subscriber channels. Publish never
// blocks: a subscriber whose buffer is full misses the event and the drop
// is counted.
type Bus struct {
	mu      sync.Mutex
	subs    map[int]chan entity.Event
	nextID  int
	dropped int
	closed  bool
}

var _ port.EventPublisher = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan entity.Event)}
}

// Publish logs the event and offers it to every subscriber.
func (b *Bus) Publish(ctx context.Context, event entity.Event) {
	log := logging.FromContext(ctx)
	log.Trace().
		Str("event", string(event.Type())).
		Str("window_id", string(event.Window())).
		Msg("event published")

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.dropped++
			log.Warn().Str("event", string(event.Type())).Msg("subscriber too slow, event dropped")
		}
	}
}

// Subscribe returns a channel of future events and a func that ends the
// subscription and closes the channel. buffer <= 0 uses a default size.
func (b *Bus) Subscribe(buffer int) (<-chan entity.Event, func()) {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan entity.Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Dropped returns how many deliveries were skipped.
func (b *Bus) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Close ends every subscription. Later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// Summary counts events by type.
type Summary map[entity.EventType]int

// Collect drains ch until it is closed and counts what it saw.
func Collect(ch <-chan entity.Event) Summary {
	s := make(Summary)
	for ev := range ch {
		s[ev.Type()]++
	}
	return s
}

// Package bus is a small in-process event bus. It replaces ad-hoc global
// event dispatch with explicit observer registration: components receive the
// bus by reference and subscribe to the topics they care about.
package bus

import "sync"

type Event struct {
	Topic   string
	Payload any
}

type Handler func(Event)

type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
}

func New() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], h)
}

// Publish delivers the event synchronously to every subscriber of its topic.
// Handlers must not block; long work belongs in the handler's own goroutine.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	handlers := b.subs[ev.Topic]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

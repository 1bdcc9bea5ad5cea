package event

import (
	"log"
	"sync"
)

// Listener handles one event. Listeners run off the emitter's goroutine;
// a panicking listener is recovered and logged, never seen by the emitter.
type Listener func(Event)

// Bus is an in-process publish/subscribe point. Delivery is at-most-once:
// a process restart drops anything in flight, and there is no replay.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[string][]Listener)}
}

// On registers a listener for the named event. Listeners for one name fire
// in registration order.
func (b *Bus) On(name string, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[name] = append(b.listeners[name], l)
}

// Emit schedules e's listeners on a background goroutine and returns
// immediately. The caller has typically already answered its HTTP client,
// so listener failures must never reach it.
func (b *Bus) Emit(e Event) {
	b.mu.RLock()
	ls := b.listeners[e.Name()]
	b.mu.RUnlock()
	if len(ls) == 0 {
		return
	}
	go func() {
		for _, l := range ls {
			runListener(e, l)
		}
	}()
}

func runListener(e Event, l Listener) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event: listener for %s panicked: %v", e.Name(), r)
		}
	}()
	l(e)
}

package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"ghsearch/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryDispatched = domain.EventQueryDispatched
	EventQueryAbandoned  = domain.EventQueryAbandoned
	EventSearchSucceeded = domain.EventSearchSucceeded
	EventSearchFailed    = domain.EventSearchFailed
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
)

// Re-export domain event types
type QueryDispatchedEvent = domain.QueryDispatchedEvent
type QueryAbandonedEvent = domain.QueryAbandonedEvent
type SearchSucceededEvent = domain.SearchSucceededEvent
type SearchFailedEvent = domain.SearchFailedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       zerolog.Logger
}

// New creates a new event bus
func New(log zerolog.Logger) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		log:       log.With().Str("component", "eventbus").Logger(),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers.
// It never blocks: when the queue is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	b.log.Debug().Str("event", string(event.Type())).Msg("publishing event")

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.log.Warn().Str("event", string(event.Type())).Msg("event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without the lock held
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				// Handlers run on their own goroutine; delivery order across events is not guaranteed
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							b.log.Error().
								Str("event", string(eventType)).
								Interface("panic", r).
								Str("stack", string(debug.Stack())).
								Msg("event handler panic")
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"ghsearch/internal/domain"
	"ghsearch/internal/eventbus"
)

// Bridge carries pipeline output and bus events into the Bubble Tea program.
// It implements pipeline.Renderer. The pipeline never blocks on the UI:
// a result that has not been picked up yet is replaced by a newer one,
// and bus events are dropped when the queue is full.
type Bridge struct {
	results chan ResultsMsg
	events  chan eventbus.DomainEvent
	unsubs  []func()
	log     zerolog.Logger
}

// NewBridge creates a bridge and subscribes it to the pipeline lifecycle events
func NewBridge(bus eventbus.EventBus, log zerolog.Logger) *Bridge {
	b := &Bridge{
		results: make(chan ResultsMsg, 1),
		events:  make(chan eventbus.DomainEvent, 100),
		log:     log.With().Str("component", "bridge").Logger(),
	}
	if bus != nil {
		for _, t := range []eventbus.EventType{
			eventbus.EventQueryDispatched,
			eventbus.EventQueryAbandoned,
			eventbus.EventSearchSucceeded,
			eventbus.EventSearchFailed,
			eventbus.EventConfigSaved,
		} {
			b.unsubs = append(b.unsubs, bus.Subscribe(t, b.forwardEvent))
		}
	}
	return b
}

// Render queues the result of q for the UI, replacing any result not yet delivered
func (b *Bridge) Render(q domain.Query, res domain.SearchResult) {
	msg := ResultsMsg{Query: q, Result: res}
	for {
		select {
		case b.results <- msg:
			return
		default:
			select {
			case <-b.results:
			default:
			}
		}
	}
}

func (b *Bridge) forwardEvent(e eventbus.DomainEvent) {
	select {
	case b.events <- e:
	default:
		b.log.Warn().Str("event", string(e.Type())).Msg("event channel full, dropping event")
	}
}

// Run delivers queued messages through send until ctx is canceled
func (b *Bridge) Run(ctx context.Context, send func(tea.Msg)) {
	defer func() {
		for _, unsub := range b.unsubs {
			unsub()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-b.results:
			send(msg)
		case e := <-b.events:
			send(EventMsg{Event: e})
		}
	}
}

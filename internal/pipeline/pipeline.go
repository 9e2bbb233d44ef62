// Package pipeline turns raw search-field events into rendered result sets.
//
// Stages, in order: Source -> Debouncer (debounce, dedup, type filter) ->
// Dispatcher (latest-wins) -> Guard (fault boundary) -> Sink.
// All stage state is owned by the goroutine running Pipeline.Run.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ghsearch/internal/domain"
	"ghsearch/internal/eventbus"
	"ghsearch/internal/logger"
)

// DefaultDebounce is the quiet period used when none is configured
const DefaultDebounce = 400 * time.Millisecond

// Options tunes the pipeline
type Options struct {
	Debounce     time.Duration
	SearchOnBlur bool
}

// Pipeline wires the stages together
type Pipeline struct {
	source     EventSource
	searcher   Searcher
	sink       *Sink
	bus        eventbus.EventBus
	log        zerolog.Logger
	debounce   time.Duration
	debouncer  *Debouncer
	dispatcher *Dispatcher

	quiet   chan uint64
	settled chan domain.Outcome
}

// New creates a pipeline. bus may be nil.
func New(src EventSource, searcher Searcher, sink *Sink, bus eventbus.EventBus, opts Options, log zerolog.Logger) *Pipeline {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Pipeline{
		source:     src,
		searcher:   searcher,
		sink:       sink,
		bus:        bus,
		log:        log.With().Str("component", "pipeline").Logger(),
		debounce:   opts.Debounce,
		debouncer:  NewDebouncer(opts.SearchOnBlur),
		dispatcher: NewDispatcher(),
		quiet:      make(chan uint64),
		settled:    make(chan domain.Outcome),
	}
}

// Run processes events until ctx is canceled. Any in-flight fetch is
// abandoned on return and its outcome never reaches the sink.
func (p *Pipeline) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer p.dispatcher.Abandon()

	p.log.Debug().Dur("debounce", p.debounce).Msg("pipeline started")
	events := p.source.Events()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Msg("pipeline stopped")
			return ctx.Err()

		case ev := <-events:
			p.observe(ctx, ev)

		case tag := <-p.quiet:
			p.flush(ctx, tag)

		case out := <-p.settled:
			p.settle(out)
		}
	}
}

func (p *Pipeline) observe(ctx context.Context, ev domain.RawEvent) {
	tag := p.debouncer.Observe(ev)
	p.log.Trace().Str("kind", ev.Kind.String()).Str("text", ev.Text).Uint64("tag", tag).Msg("event observed")

	time.AfterFunc(p.debounce, func() {
		select {
		case p.quiet <- tag:
		case <-ctx.Done():
		}
	})
}

func (p *Pipeline) flush(ctx context.Context, tag uint64) {
	ev, ok := p.debouncer.Settle(tag)
	if !ok {
		return
	}

	q := domain.QueryFromText(ev.Text)
	gen, fetchCtx := p.dispatcher.Dispatch(ctx)
	requestID := uuid.NewString()
	fetchCtx = logger.WithRequestID(fetchCtx, requestID)

	p.log.Debug().
		Uint64("generation", gen).
		Str("query", q.String()).
		Str("request_id", requestID).
		Str("trigger", ev.Kind.String()).
		Msg("query dispatched")
	p.publish(domain.QueryDispatchedEvent{Generation: gen, Query: q, RequestID: requestID})

	go func() {
		out := Guard(fetchCtx, p.searcher, gen, q)
		select {
		case p.settled <- out:
		case <-ctx.Done():
		}
	}()
}

func (p *Pipeline) settle(out domain.Outcome) {
	if !p.dispatcher.Settle(out.Generation) {
		p.log.Debug().
			Uint64("generation", out.Generation).
			Str("query", out.Query.String()).
			Msg("superseded outcome discarded")
		p.publish(domain.QueryAbandonedEvent{Generation: out.Generation, Query: out.Query})
		return
	}

	p.sink.Consume(out)

	if out.Succeeded() {
		p.publish(domain.SearchSucceededEvent{
			Generation: out.Generation,
			Query:      out.Query,
			Total:      out.Result.Total,
			Count:      len(out.Result.Items),
		})
		return
	}
	p.publish(domain.SearchFailedEvent{Generation: out.Generation, Query: out.Query, Err: out.Err})
}

func (p *Pipeline) publish(ev domain.DomainEvent) {
	if p.bus != nil {
		p.bus.Publish(ev)
	}
}

package pipeline

import (
	"github.com/rs/zerolog"

	"ghsearch/internal/domain"
)

// Renderer displays the result set of query q
type Renderer interface {
	Render(q domain.Query, res domain.SearchResult)
}

// RenderFunc adapts a function to Renderer
type RenderFunc func(q domain.Query, res domain.SearchResult)

// Render calls f(q, res)
func (f RenderFunc) Render(q domain.Query, res domain.SearchResult) { f(q, res) }

// Sink is the terminal stage: successes go to the renderer, failures only to the log
type Sink struct {
	renderer Renderer
	log      zerolog.Logger
}

// NewSink creates a sink
func NewSink(r Renderer, log zerolog.Logger) *Sink {
	return &Sink{renderer: r, log: log}
}

// Consume handles one outcome. It never panics.
func (s *Sink) Consume(o domain.Outcome) {
	if !o.Succeeded() {
		s.log.Error().
			Err(o.Err).
			Uint64("generation", o.Generation).
			Str("query", o.Query.String()).
			Msg("search failed")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Interface("panic", r).
				Uint64("generation", o.Generation).
				Msg("renderer panic")
		}
	}()
	if s.renderer != nil {
		s.renderer.Render(o.Query, o.Result)
	}
}

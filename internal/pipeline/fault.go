package pipeline

import (
	"context"
	"fmt"

	"ghsearch/internal/domain"
)

// Searcher fetches and normalizes one query
type Searcher interface {
	Search(ctx context.Context, q domain.Query) (domain.SearchResult, error)
}

// SearcherFunc adapts a function to Searcher
type SearcherFunc func(ctx context.Context, q domain.Query) (domain.SearchResult, error)

// Search calls f(ctx, q)
func (f SearcherFunc) Search(ctx context.Context, q domain.Query) (domain.SearchResult, error) {
	return f(ctx, q)
}

// Guard runs the fetch-and-normalize step and turns every failure, panics
// included, into a Failure outcome.
func Guard(ctx context.Context, s Searcher, gen uint64, q domain.Query) (out domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = domain.Failure(gen, q, fmt.Errorf("search panicked: %v", r))
		}
	}()

	res, err := s.Search(ctx, q)
	if err != nil {
		return domain.Failure(gen, q, err)
	}
	return domain.Success(gen, q, res)
}

package state

import (
	"ghsearch/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Result data
	Result     domain.SearchResult // last rendered result set
	Query      domain.Query        // query that produced Result
	HasResults bool                // false until the first result arrives

	// Selection state
	SelectedIndex int

	// Fetch tracking; a fetch is in flight while LatestDispatched > LatestSettled
	LatestDispatched uint64
	LatestSettled    uint64
	InFlightQuery    domain.Query

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the result list
	ShowHelp       bool
	StatusMessage  string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// SetResult replaces the displayed result set and resets the cursor
func (s *AppState) SetResult(res domain.SearchResult, maxItems int) {
	if maxItems > 0 && len(res.Items) > maxItems {
		res.Items = res.Items[:maxItems]
	}
	s.Result = res
	s.HasResults = true
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// Loading reports whether the newest dispatched fetch has not settled yet
func (s *AppState) Loading() bool {
	return s.LatestDispatched > s.LatestSettled
}

// MarkDispatched records a newly dispatched generation
func (s *AppState) MarkDispatched(gen uint64, q domain.Query) {
	if gen > s.LatestDispatched {
		s.LatestDispatched = gen
		s.InFlightQuery = q
	}
}

// MarkSettled records that generation gen settled or was abandoned
func (s *AppState) MarkSettled(gen uint64) {
	if gen > s.LatestSettled {
		s.LatestSettled = gen
	}
}

// Items returns the repositories currently listed
func (s *AppState) Items() []domain.RepositoryItem {
	return s.Result.Items
}

// CurrentItem returns the repository under the cursor
func (s *AppState) CurrentItem() (domain.RepositoryItem, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Result.Items) {
		return domain.RepositoryItem{}, false
	}
	return s.Result.Items[s.SelectedIndex], true
}

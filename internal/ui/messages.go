package ui

import (
	"ghsearch/internal/domain"
	"ghsearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ResultsMsg carries a result set accepted by the sink and the query that produced it
type ResultsMsg struct {
	Query  domain.Query
	Result domain.SearchResult
}

// pagerMsg reports that the ov pager exited
type pagerMsg struct {
	err error
}

// browserMsg reports the outcome of opening a repository URL
type browserMsg struct {
	url string
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

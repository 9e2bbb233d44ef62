package domain

import "strings"

// EventKind identifies which physical UI source produced a RawEvent
type EventKind int

const (
	EventInput EventKind = iota
	EventFocus
	EventBlur
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	default:
		return "unknown"
	}
}

// RawEvent is a single occurrence on the search field.
// Focus and Blur carry whatever text the field held at the time.
type RawEvent struct {
	Kind EventKind
	Text string
}

// Key returns the equality key used for consecutive-duplicate suppression
func (e RawEvent) Key() string {
	return e.Kind.String() + ":" + e.Text
}

// Query is a search term derived from the field text
type Query string

// QueryFromText trims the raw field text into a query
func QueryFromText(text string) Query {
	return Query(strings.TrimSpace(text))
}

func (q Query) String() string { return string(q) }

// Owner is the account a repository belongs to
type Owner struct {
	Login string
	URL   string
}

// RepositoryItem is one repository in a result set
type RepositoryItem struct {
	ID             int64
	Name           string
	URL            string
	Owner          Owner
	StarCount      int
	ForkCount      int
	OpenIssueCount int
	WatcherCount   int
}

// SearchResult is the normalized answer to one query
type SearchResult struct {
	Total int
	Items []RepositoryItem
}

// Outcome is the terminal value of one dispatched query: either a result or a failure cause
type Outcome struct {
	Generation uint64
	Query      Query
	Result     SearchResult
	Err        error
}

// Success wraps a result
func Success(gen uint64, q Query, res SearchResult) Outcome {
	return Outcome{Generation: gen, Query: q, Result: res}
}

// Failure wraps a failure cause
func Failure(gen uint64, q Query, err error) Outcome {
	return Outcome{Generation: gen, Query: q, Err: err}
}

// Succeeded reports whether the outcome carries a result
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

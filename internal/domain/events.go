package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryDispatched EventType = "QueryDispatched"
	EventQueryAbandoned  EventType = "QueryAbandoned"
	EventSearchSucceeded EventType = "SearchSucceeded"
	EventSearchFailed    EventType = "SearchFailed"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryDispatchedEvent is emitted when a fetch is started for a query
type QueryDispatchedEvent struct {
	Generation uint64
	Query      Query
	RequestID  string
}

func (e QueryDispatchedEvent) Type() EventType { return EventQueryDispatched }

// QueryAbandonedEvent is emitted when a superseded fetch settles and its outcome is dropped
type QueryAbandonedEvent struct {
	Generation uint64
	Query      Query
}

func (e QueryAbandonedEvent) Type() EventType { return EventQueryAbandoned }

// SearchSucceededEvent is emitted when the current fetch delivers a result
type SearchSucceededEvent struct {
	Generation uint64
	Query      Query
	Total      int
	Count      int
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when the current fetch settles with a failure
type SearchFailedEvent struct {
	Generation uint64
	Query      Query
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

package pipeline

import (
	"sync"

	"ghsearch/internal/domain"
)

// EventSource is anything that yields the merged raw event sequence
type EventSource interface {
	Events() <-chan domain.RawEvent
}

// Source merges the text-change, focus-gained and focus-lost sources into one
// ordered channel. It does not filter or coalesce.
type Source struct {
	events chan domain.RawEvent
	done   chan struct{}
	once   sync.Once
}

// NewSource creates a source whose channel buffers up to buffer events
func NewSource(buffer int) *Source {
	if buffer < 0 {
		buffer = 0
	}
	return &Source{
		events: make(chan domain.RawEvent, buffer),
		done:   make(chan struct{}),
	}
}

// Events returns the merged sequence; it is never closed, use the pipeline context to stop
func (s *Source) Events() <-chan domain.RawEvent {
	return s.events
}

// Input reports a text change
func (s *Source) Input(text string) {
	s.emit(domain.RawEvent{Kind: domain.EventInput, Text: text})
}

// Focus reports that the field gained focus while holding text
func (s *Source) Focus(text string) {
	s.emit(domain.RawEvent{Kind: domain.EventFocus, Text: text})
}

// Blur reports that the field lost focus while holding text
func (s *Source) Blur(text string) {
	s.emit(domain.RawEvent{Kind: domain.EventBlur, Text: text})
}

// Emit forwards an already-built event
func (s *Source) Emit(ev domain.RawEvent) {
	s.emit(ev)
}

// Close tears the source down; pending and later emits return immediately
func (s *Source) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *Source) emit(ev domain.RawEvent) {
	select {
	case <-s.done:
		return
	default:
	}
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

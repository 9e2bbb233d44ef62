package pipeline

import "ghsearch/internal/domain"

// Debouncer holds the debounce, dedup and type-filter state.
//
// Every upstream event is handed to Observe, which returns a tag. The caller
// arms a quiet-period timer carrying that tag; when it fires, Settle only
// yields an event if no newer event has been observed since (the tag is still
// the latest), the event's key differs from the previously emitted one, and
// the event kind is allowed through.
//
// Dedup runs before the type filter: a Focus event that survives debounce
// becomes the "previous emitted" key even though it never reaches the dispatcher.
type Debouncer struct {
	pending      domain.RawEvent
	hasPending   bool
	tag          uint64
	lastKey      string
	hasLast      bool
	searchOnBlur bool
}

// NewDebouncer creates a debouncer; searchOnBlur lets Blur events trigger queries
func NewDebouncer(searchOnBlur bool) *Debouncer {
	return &Debouncer{searchOnBlur: searchOnBlur}
}

// Observe records ev as the latest upstream event and returns its tag
func (d *Debouncer) Observe(ev domain.RawEvent) uint64 {
	d.pending = ev
	d.hasPending = true
	d.tag++
	return d.tag
}

// Settle is called when the quiet timer armed for tag expires
func (d *Debouncer) Settle(tag uint64) (domain.RawEvent, bool) {
	if tag != d.tag || !d.hasPending {
		return domain.RawEvent{}, false
	}
	ev := d.pending
	d.pending = domain.RawEvent{}
	d.hasPending = false

	key := ev.Key()
	if d.hasLast && key == d.lastKey {
		return domain.RawEvent{}, false
	}
	d.lastKey = key
	d.hasLast = true

	switch ev.Kind {
	case domain.EventFocus:
		return domain.RawEvent{}, false
	case domain.EventBlur:
		if !d.searchOnBlur {
			return domain.RawEvent{}, false
		}
	}
	return ev, true
}

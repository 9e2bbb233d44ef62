package pipeline

import "context"

// State of the dispatcher
type State int

const (
	StateIdle State = iota
	StateFetching
)

func (s State) String() string {
	if s == StateFetching {
		return "fetching"
	}
	return "idle"
}

// Dispatcher implements latest-wins over fetches. Each dispatch bumps the
// generation and cancels the previous fetch's context; a settling fetch is
// accepted only if its generation is still the current one.
//
// Not safe for concurrent use: it belongs to the pipeline loop goroutine.
type Dispatcher struct {
	generation uint64
	inFlight   bool
	cancel     context.CancelFunc
}

// NewDispatcher creates an idle dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Dispatch abandons any in-flight fetch and starts generation N+1.
// The returned context is canceled when the fetch is superseded or abandoned.
func (d *Dispatcher) Dispatch(parent context.Context) (uint64, context.Context) {
	if d.cancel != nil {
		d.cancel()
	}
	d.generation++
	ctx, cancel := context.WithCancel(parent)
	d.cancel = cancel
	d.inFlight = true
	return d.generation, ctx
}

// Settle reports whether the fetch of generation gen may deliver its outcome.
// Accepting it returns the dispatcher to idle.
func (d *Dispatcher) Settle(gen uint64) bool {
	if !d.inFlight || gen != d.generation {
		return false
	}
	d.inFlight = false
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	return true
}

// Abandon drops the in-flight fetch, if any, without starting a new one
func (d *Dispatcher) Abandon() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.inFlight {
		d.inFlight = false
		// bump so the abandoned fetch can never be accepted
		d.generation++
	}
}

// State returns Idle or Fetching together with the current generation
func (d *Dispatcher) State() (State, uint64) {
	if d.inFlight {
		return StateFetching, d.generation
	}
	return StateIdle, d.generation
}

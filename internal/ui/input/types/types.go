package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeSearch means the search field holds focus and keys edit the query
	ModeSearch Mode = iota
	// ModeBrowse means the field is blurred and keys move through results
	ModeBrowse
)

func (m Mode) String() string {
	if m == ModeBrowse {
		return "browse"
	}
	return "search"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentURL() string
	PageSize() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	Name() string
}

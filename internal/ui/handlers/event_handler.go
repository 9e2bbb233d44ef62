package handlers

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ghsearch/internal/eventbus"
	"ghsearch/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state   *state.AppState
	spinner *spinner.Model
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, sp *spinner.Model) *EventHandler {
	return &EventHandler{
		state:   appState,
		spinner: sp,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.QueryDispatchedEvent:
		wasLoading := h.state.Loading()
		h.state.MarkDispatched(e.Generation, e.Query)
		h.state.StatusMessage = ""
		if !wasLoading && h.state.Loading() && h.spinner != nil {
			return h.spinner.Tick
		}

	case eventbus.SearchSucceededEvent:
		h.state.MarkSettled(e.Generation)

	case eventbus.SearchFailedEvent:
		// failures are only logged; the previous results stay on screen
		h.state.MarkSettled(e.Generation)

	case eventbus.QueryAbandonedEvent:
		h.state.MarkSettled(e.Generation)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = "Configuration saved to " + e.Path
	}

	return nil
}

package handlers

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"

	"ghsearch/internal/domain"
	"ghsearch/internal/eventbus"
	"ghsearch/internal/ui/state"
)

func TestDispatchStartsSpinnerOnce(t *testing.T) {
	st := state.NewAppState()
	sp := spinner.New()
	h := NewEventHandler(st, &sp)

	cmd := h.HandleEvent(eventbus.QueryDispatchedEvent{Generation: 1, Query: "go"})
	assert.NotNil(t, cmd)
	assert.True(t, st.Loading())
	assert.Equal(t, domain.Query("go"), st.InFlightQuery)

	cmd = h.HandleEvent(eventbus.QueryDispatchedEvent{Generation: 2, Query: "gol"})
	assert.Nil(t, cmd, "already ticking")
	assert.Equal(t, domain.Query("gol"), st.InFlightQuery)
}

func TestSettlingEventsStopLoading(t *testing.T) {
	events := []eventbus.DomainEvent{
		eventbus.SearchSucceededEvent{Generation: 1},
		eventbus.SearchFailedEvent{Generation: 1, Err: errors.New("boom")},
		eventbus.QueryAbandonedEvent{Generation: 1},
	}
	for _, e := range events {
		t.Run(string(e.Type()), func(t *testing.T) {
			st := state.NewAppState()
			h := NewEventHandler(st, nil)
			h.HandleEvent(eventbus.QueryDispatchedEvent{Generation: 1})
			h.HandleEvent(e)
			assert.False(t, st.Loading())
		})
	}
}

func TestOutOfOrderDelivery(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, nil)

	h.HandleEvent(eventbus.SearchSucceededEvent{Generation: 3})
	h.HandleEvent(eventbus.QueryDispatchedEvent{Generation: 3, Query: "late"})
	assert.False(t, st.Loading())
}

func TestConfigSavedStatus(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, nil)

	h.HandleEvent(eventbus.ConfigSavedEvent{Path: "/tmp/config.toml"})
	assert.Contains(t, st.StatusMessage, "/tmp/config.toml")
}

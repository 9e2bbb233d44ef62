package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ghsearch/internal/ui/input/types"
)

// SearchMode handles keys while the search field holds focus.
// Keys it does not consume are passed to the text input by the handler.
type SearchMode struct {
	keys types.KeyMap
}

func NewSearchMode(keys types.KeyMap) *SearchMode {
	return &SearchMode{keys: keys}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Blur):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true

	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearTextAction{}}, true

	// arrows still move through results while typing
	case msg.Type == tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case msg.Type == tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	}

	return nil, false
}

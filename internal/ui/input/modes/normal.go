package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ghsearch/internal/ui/input/types"
)

// BrowseMode handles keys while the search field is blurred
type BrowseMode struct {
	keys types.KeyMap
}

func NewBrowseMode(keys types.KeyMap) *BrowseMode {
	return &BrowseMode{keys: keys}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Open):
		if url := ctx.CurrentURL(); url != "" {
			return []types.Action{types.OpenURLAction{URL: url}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Pager):
		if ctx.TotalItems() > 0 {
			return []types.Action{types.ShowPagerAction{}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.ShowHelpPagerAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

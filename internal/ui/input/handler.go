package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ghsearch/internal/ui/input/modes"
	"ghsearch/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the search field
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

// New creates a handler that starts with the search field focused
func New(keys types.KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(keys)
	h.modes[types.ModeBrowse] = modes.NewBrowseMode(keys)

	return h
}

// HandleKey runs msg through the active mode. Mode changes and text edits are
// applied here and reported back as actions so the model can publish them.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			if a.Mode == h.currentMode {
				continue
			}
			cmd = h.SetMode(a.Mode)
			allActions = append(allActions, a)
		case types.ClearTextAction:
			if h.textInput.Value() != "" {
				h.textInput.Reset()
				allActions = append(allActions, types.UpdateTextAction{Text: ""})
			}
		default:
			allActions = append(allActions, action)
		}
	}

	if !consumed && h.currentMode == types.ModeSearch {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

// SetMode switches modes and moves focus to or from the field
func (h *Handler) SetMode(mode types.Mode) tea.Cmd {
	h.currentMode = mode
	if mode == types.ModeSearch {
		return h.textInput.Focus()
	}
	h.textInput.Blur()
	return nil
}

// Update forwards non-key messages (cursor blink) to the field
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Value returns the current field text
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// SetValue replaces the field text without going through key handling
func (h *Handler) SetValue(s string) {
	h.textInput.SetValue(s)
	h.textInput.CursorEnd()
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

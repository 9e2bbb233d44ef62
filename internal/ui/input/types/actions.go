package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// UpdateTextAction is produced whenever a key changed the field text
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ClearTextAction empties the field
type ClearTextAction struct{}

func (a ClearTextAction) Type() string { return "clear_text" }

// OpenURLAction opens the repository under the cursor in a browser
type OpenURLAction struct {
	URL string
}

func (a OpenURLAction) Type() string { return "open_url" }

type ShowPagerAction struct{}

func (a ShowPagerAction) Type() string { return "show_pager" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

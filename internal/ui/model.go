package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"ghsearch/internal/config"
	"ghsearch/internal/domain"
	"ghsearch/internal/eventbus"
	"ghsearch/internal/ui/handlers"
	"ghsearch/internal/ui/input"
	inputtypes "ghsearch/internal/ui/input/types"
	"ghsearch/internal/ui/logic"
	"ghsearch/internal/ui/state"
	"ghsearch/internal/ui/views"
)

// Emitter receives the raw search-field events the model observes
type Emitter interface {
	Input(text string)
	Focus(text string)
	Blur(text string)
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	events Emitter
	log    zerolog.Logger
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer
	pager        *PagerOps
	openURL      func(url string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, events Emitter, bus eventbus.EventBus, log zerolog.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	keys := inputtypes.DefaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		events:       events,
		log:          log.With().Str("component", "ui").Logger(),
		state:        state.NewAppState(),
		help:         help.New(),
		spinner:      sp,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowOwner),
		inputHandler: input.New(keys, "search repositories"),
		helpRenderer: NewHelpRenderer(keys),
		openURL:      openInBrowser,
	}
	m.spinner.Style = m.renderer.Styles().Spinner
	m.eventHandler = handlers.NewEventHandler(m.state, &m.spinner)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			Items:    m.state.Items(),
			Selected: m.state.SelectedIndex,
			Page:     m.state.ViewportHeight,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		switch len(cmds) {
		case 0:
			return m, nil
		case 1:
			return m, cmds[0]
		}
		return m, tea.Batch(cmds...)

	// terminal focus reports stand in for the field's focus while it is active
	case tea.FocusMsg:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.emitFocus()
			return m, m.inputHandler.TextInput().Focus()
		}
		return m, nil

	case tea.BlurMsg:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.emitBlur()
			m.inputHandler.TextInput().Blur()
		}
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultsMsg:
		m.state.SetResult(msg.Result, m.config.UISettings.MaxListItems)
		m.state.Query = msg.Query
		m.syncNavigator()
		return m, nil

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("pager failed")
			return m, m.setStatus("Pager unavailable: " + msg.err.Error())
		}
		return m, nil

	case browserMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("url", msg.url).Msg("failed to open browser")
			return m, m.setStatus("Could not open " + msg.url)
		}
		m.log.Debug().Str("url", msg.url).Msg("opened in browser")
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		if m.events != nil {
			m.events.Input(a.Text)
		}

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeSearch {
			m.emitFocus()
		} else {
			m.emitBlur()
		}

	case inputtypes.NavigateAction:
		m.syncNavigator()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(a.Direction)

	case inputtypes.OpenURLAction:
		open := m.openURL
		url := a.URL
		return func() tea.Msg {
			return browserMsg{url: url, err: open(url)}
		}

	case inputtypes.ShowPagerAction:
		return m.showInPager(RenderResultsPlain(m.state.Query, m.state.Result))

	case inputtypes.ShowHelpPagerAction:
		return m.showInPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.help.ShowAll = m.state.ShowHelp
		m.updateViewportHeight()

	case inputtypes.QuitAction:
		m.log.Debug().Bool("force", a.Force).Msg("quit requested")
		return tea.Quit
	}
	return nil
}

func (m *Model) emitFocus() {
	if m.events != nil {
		m.events.Focus(m.inputHandler.Value())
	}
}

func (m *Model) emitBlur() {
	if m.events != nil {
		m.events.Blur(m.inputHandler.Value())
	}
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{err: errNoProgram}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.state.StatusMessage = s
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) syncNavigator() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.state.Items()),
	)
}

// updateViewportHeight sizes the result list to what remains below the
// title, field, and total lines and above the footer
func (m *Model) updateViewportHeight() {
	footer := m.help.ShortHelpView(m.inputHandler.Keys().ShortHelp())
	if m.state.ShowHelp {
		footer = m.help.FullHelpView(m.inputHandler.Keys().FullHelp())
	}
	// padding(2) + title(1) + bordered field(3) + total(1) + gap before footer(1)
	reserved := 8 + lipgloss.Height(footer)
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
	m.syncNavigator()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Field:          m.inputHandler.TextInput().View(),
		FieldFocused:   m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Query:          m.state.Query.String(),
		Language:       m.config.Search.Language,
		Sort:           m.config.Search.Sort,
		Loading:        m.state.Loading(),
		Spinner:        m.spinner.View(),
		HasResults:     m.state.HasResults,
		Result:         m.state.Result,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		StatusMessage:  m.state.StatusMessage,
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		Keys:           m.inputHandler.Keys(),
	})
}

// State exposes the model state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Query returns the field text as a query
func (m *Model) Query() domain.Query {
	return domain.QueryFromText(m.inputHandler.Value())
}

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"ghsearch/internal/domain"
	"ghsearch/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Field          string // rendered text input
	FieldFocused   bool
	Query          string // last rendered query, used for highlighting
	Language       string
	Sort           string
	Loading        bool
	Spinner        string
	HasResults     bool
	Result         domain.SearchResult
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	ShowHelp       bool
	HelpModel      help.Model
	Keys           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	repoRender *RepositoryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showOwner bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		repoRender: NewRepositoryRenderer(styles, showOwner),
	}
}

// Styles exposes the style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - 4 // main container padding

	content.WriteString(r.renderTitle(state, innerWidth))
	content.WriteString("\n")

	fieldStyle := r.styles.Field
	if state.FieldFocused {
		fieldStyle = r.styles.FieldActive
	}
	content.WriteString(fieldStyle.Width(innerWidth - 2).Render(state.Field))
	content.WriteString("\n")

	switch {
	case !state.HasResults:
		content.WriteString(r.styles.Dim.Render("Type to search GitHub repositories."))
	case len(state.Result.Items) == 0:
		content.WriteString(r.styles.Total.Render(FormatTotal(state.Result.Total, 0)))
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("No repositories found."))
	default:
		content.WriteString(r.styles.Total.Render(FormatTotal(state.Result.Total, len(state.Result.Items))))
		content.WriteString("\n")
		content.WriteString(r.renderList(state, innerWidth))
	}

	footer := ""
	if state.Keys != nil {
		if state.ShowHelp {
			footer = state.HelpModel.FullHelpView(state.Keys.FullHelp())
		} else {
			footer = state.HelpModel.ShortHelpView(state.Keys.ShortHelp())
		}
	}
	if state.StatusMessage != "" {
		footer = r.styles.Dim.Render(state.StatusMessage) + "\n" + footer
	}

	// push the footer to the bottom
	if footer != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		paddingNeeded := availableLines - currentLines - lipgloss.Height(footer)
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(footer)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("ghsearch")

	var right []string
	if state.Loading {
		right = append(right, r.styles.Spinner.Render(state.Spinner+" Searching"))
	}
	if state.Language != "" {
		right = append(right, r.styles.Dim.Render(fmt.Sprintf("[language:%s sort:%s]", state.Language, state.Sort)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

// renderList renders the visible window of result rows with scroll indicators
func (r *Renderer) renderList(state ViewState, width int) string {
	items := state.Result.Items
	total := len(items)

	height := state.ViewportHeight
	if height <= 0 {
		height = total
	}
	offset := state.ViewportOffset
	if offset < 0 || offset >= total {
		offset = 0
	}

	rows := logic.VisibleRows(offset, height, total)
	end := offset + rows
	if end > total {
		end = total
	}

	var lines []string
	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	for i := offset; i < end; i++ {
		lines = append(lines, r.repoRender.RenderRepository(items[i], i == state.SelectedIndex, state.Query, width))
	}

	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}

	return strings.Join(lines, "\n")
}

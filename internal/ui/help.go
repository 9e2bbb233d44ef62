package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"ghsearch/internal/domain"
	"ghsearch/internal/ui/input/types"
	"ghsearch/internal/ui/views"
)

var errNoProgram = errors.New("program not set")

var helpSections = []string{"Navigation", "Search Field", "Results", "Other"}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("ghsearch Help"))
	help.WriteString("\n")

	for i, group := range r.keys.FullHelp() {
		if i < len(helpSections) {
			help.WriteString(sectionStyle.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render(bindingKeys(b)), descStyle.Render(b.Help().Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Results refresh as you type; leaving the field searches its text."))

	return help.String()
}

func bindingKeys(b key.Binding) string {
	return strings.Join(b.Keys(), "/")
}

// RenderResultsPlain lays out a result set for the pager
func RenderResultsPlain(q domain.Query, res domain.SearchResult) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Query: %q\n%s\n\n", q.String(), views.FormatTotal(res.Total, len(res.Items)))
	for i, item := range res.Items {
		name := item.Name
		if item.Owner.Login != "" {
			name = item.Owner.Login + "/" + item.Name
		}
		fmt.Fprintf(&out, "%3d. %s\n", i+1, name)
		fmt.Fprintf(&out, "     ★ %s  ⑂ %s  ! %s  watchers %s\n",
			views.FormatCount(item.StarCount),
			views.FormatCount(item.ForkCount),
			views.FormatCount(item.OpenIssueCount),
			views.FormatCount(item.WatcherCount))
		if item.URL != "" {
			fmt.Fprintf(&out, "     %s\n", item.URL)
		}
	}
	return out.String()
}

// PagerOps shows text in the ov pager while Bubble Tea has released the terminal
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// Show runs ov over content and blocks until the user leaves it
func (h *PagerOps) Show(content string) error {
	if h == nil || h.program == nil {
		return errNoProgram
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// restore even if ov fails
	defer func() {
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	return Page(content)
}

// Page runs ov over content on the current terminal
func Page(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

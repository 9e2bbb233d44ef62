package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Prompt       lipgloss.Style
	PromptActive lipgloss.Style
	Field        lipgloss.Style
	FieldActive  lipgloss.Style
	Total        lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Name         lipgloss.Style
	Owner        lipgloss.Style
	Stars        lipgloss.Style
	Forks        lipgloss.Style
	Issues       lipgloss.Style
	Spinner      lipgloss.Style
	SelectionBg  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PromptActive: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FieldActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		Total:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Main:   lipgloss.NewStyle().Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Name:   lipgloss.NewStyle().Bold(true),
		Owner:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Stars:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		Forks:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Issues: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

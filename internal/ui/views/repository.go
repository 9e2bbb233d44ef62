package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"ghsearch/internal/domain"
)

// RepositoryRenderer handles rendering of repository items
type RepositoryRenderer struct {
	styles    *Styles
	showOwner bool
}

// NewRepositoryRenderer creates a new repository renderer
func NewRepositoryRenderer(styles *Styles, showOwner bool) *RepositoryRenderer {
	return &RepositoryRenderer{
		styles:    styles,
		showOwner: showOwner,
	}
}

// RenderRepository renders one result row
func (r *RepositoryRenderer) RenderRepository(item domain.RepositoryItem, isSelected bool, query string, width int) string {
	bg := lipgloss.NewStyle()
	if isSelected {
		bg = r.styles.SelectionBg
	}
	with := func(s lipgloss.Style) lipgloss.Style {
		if isSelected {
			return s.Inherit(bg)
		}
		return s
	}

	var parts []string

	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}
	parts = append(parts, with(lipgloss.NewStyle()).Render(cursor))

	if r.showOwner && item.Owner.Login != "" {
		parts = append(parts, with(r.styles.Owner).Render(item.Owner.Login+"/"))
	}

	nameStyle := with(r.styles.Name)
	name := item.Name
	if query != "" && strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
		name = r.highlightMatch(name, query, nameStyle.Foreground(lipgloss.Color("226")), nameStyle)
	} else {
		name = nameStyle.Render(name)
	}
	parts = append(parts, name)

	stats := []string{
		with(r.styles.Stars).Render("★ " + FormatCount(item.StarCount)),
		with(r.styles.Forks).Render("⑂ " + FormatCount(item.ForkCount)),
		with(r.styles.Issues).Render("! " + FormatCount(item.OpenIssueCount)),
	}
	sep := with(lipgloss.NewStyle()).Render("  ")
	parts = append(parts, sep, strings.Join(stats, sep))

	line := strings.Join(parts, "")
	if width > 0 && lipgloss.Width(line) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// FormatCount renders a count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatTotal renders the header line for a result set
func FormatTotal(total, shown int) string {
	noun := "repositories"
	if total == 1 {
		noun = "repository"
	}
	if shown < total {
		return fmt.Sprintf("%s %s (showing %d)", humanize.Comma(int64(total)), noun, shown)
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(total)), noun)
}

// highlightMatch highlights the first case-insensitive occurrence of query in text
func (r *RepositoryRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	start, end, ok := foldIndex(text, query)
	if !ok {
		return normalStyle.Render(text)
	}

	before := text[:start]
	match := text[start:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// foldIndex finds the first case-insensitive occurrence of query in text and
// returns its byte bounds in text. Runes are compared with simple case folding,
// so the bounds always fall on rune boundaries of text.
func foldIndex(text, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	for i := range text {
		j := i
		matched := true
		for _, qr := range query {
			if j >= len(text) {
				matched = false
				break
			}
			tr, size := utf8.DecodeRuneInString(text[j:])
			if !strings.EqualFold(string(tr), string(qr)) {
				matched = false
				break
			}
			j += size
		}
		if matched {
			return i, j, true
		}
	}
	return 0, 0, false
}

package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/pamudauposath/portfolio/internal/site"
)

var (
	primary = lipgloss.Color("#FF7300")
	muted   = lipgloss.Color("#6B7280")

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	subtleStyle    = lipgloss.NewStyle().Foreground(muted)
	chipStyle      = lipgloss.NewStyle().Foreground(muted)
	activeChip     = lipgloss.NewStyle().Bold(true).Foreground(primary)
	cursorStyle    = lipgloss.NewStyle().Foreground(primary).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(1, 2)
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if d, ok := m.overlay.Selected(); ok {
		b.WriteString(m.renderDetail(d))
	} else {
		b.WriteString(m.renderSection())
	}

	status := m.session().Status()
	if m.status != "" {
		status = m.status
	}
	if status != "" {
		b.WriteString(statusStyle.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, len(m.sections))
	for i, sec := range m.sections {
		style := tabStyle
		if i == m.current {
			style = activeTabStyle
		}
		tabs[i] = style.Render(sec.Title())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderSection() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.section().Title()))
	b.WriteString("\n")

	if keys := m.facetKeys(); len(keys) > 0 {
		sel := m.session().State().Selection
		chips := make([]string, len(keys))
		for i, k := range keys {
			label := fmt.Sprintf("[%d] %s", i+1, k.label)
			if sel.Has(k.facet, k.value) {
				chips[i] = activeChip.Render(label)
			} else {
				chips[i] = chipStyle.Render(label)
			}
		}
		b.WriteString(strings.Join(chips, "  "))
		b.WriteString("\n\n")
	}

	cards := m.session().Cards()
	if len(cards) == 0 {
		b.WriteString(subtleStyle.Render("Nothing matches the selected filters."))
		b.WriteString("\n")
	}
	for i, c := range cards {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + cardTitleStyle.Render(m.fit(c.Title, 2)))
		b.WriteString("\n")
		if line := cardLine(c); line != "" {
			b.WriteString("  " + subtleStyle.Render(m.fit(line, 2)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func cardLine(c site.Card) string {
	var parts []string
	for _, s := range []string{c.Badge, c.Subtitle, c.Meta} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}

func (m *Model) renderDetail(d site.DetailView) string {
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	if d.Badge != "" {
		b.WriteString(activeChip.Render(d.Badge) + "\n")
	}
	b.WriteString(cardTitleStyle.Render(runewidth.Truncate(d.Title, width, "…")) + "\n")
	for _, s := range []string{d.Subtitle, d.Period} {
		if s != "" {
			b.WriteString(subtleStyle.Render(s) + "\n")
		}
	}
	if d.Media != nil {
		b.WriteString(fmt.Sprintf("\n%s %s (%s)\n", d.Media.Type, d.Media.Position, runewidth.Truncate(d.Media.URL, width, "…")))
	}
	if d.Body != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Width(width).Render(d.Body) + "\n")
	}
	for _, l := range d.Lists {
		b.WriteString("\n" + cardTitleStyle.Render(l.Heading) + "\n")
		for _, item := range l.Items {
			b.WriteString("• " + runewidth.Truncate(item, width-2, "…") + "\n")
		}
	}
	if len(d.Tags) > 0 {
		b.WriteString("\n" + subtleStyle.Render(runewidth.Truncate(strings.Join(d.Tags, ", "), width, "…")) + "\n")
	}
	for _, p := range d.People {
		line := fmt.Sprintf("(%s) %s", p.Initials, p.Name)
		if p.Role != "" {
			line += " - " + p.Role
		}
		b.WriteString(line + "\n")
	}
	for _, l := range d.Links {
		b.WriteString(subtleStyle.Render(l.Label+": ") + runewidth.Truncate(l.URL, width, "…") + "\n")
	}
	return overlayStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// fit truncates s to the terminal width minus indent cells.
func (m *Model) fit(s string, indent int) string {
	w := m.width - indent
	if w < 10 {
		w = 10
	}
	return runewidth.Truncate(s, w, "…")
}

// Package browse is a terminal front end over the portfolio sections. It
// drives the same controllers as the web build: pages, carousel windows,
// facet toggles and the detail overlay with its escape listener.
package browse

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pamudauposath/portfolio/internal/site"
	"github.com/pamudauposath/portfolio/internal/view"
)

// facetKey is one numbered filter button.
type facetKey struct {
	facet string
	value string
	label string
}

// Model is the bubbletea model of the browser.
type Model struct {
	site     *site.Site
	sections []site.Section
	sessions []site.Session
	current  int
	cursor   int

	input   *view.InputSurface
	overlay *view.Overlay[site.DetailView]

	keys   keyMap
	help   help.Model
	width  int
	height int
	status string

	copy func(string) error
}

// New opens every section in its initial state.
func New(s *site.Site) *Model {
	input := view.NewInputSurface()
	m := &Model{
		site:     s,
		sections: s.Sections(),
		input:    input,
		overlay:  view.NewOverlay[site.DetailView](input),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		copy:     clipboard.WriteAll,
	}
	for _, sec := range m.sections {
		m.sessions = append(m.sessions, sec.Open(site.State{}))
	}
	return m
}

// Release drops the overlay and its escape listener.
func (m *Model) Release() { m.overlay.Release() }

// Run starts the browser and blocks until the user quits or ctx ends.
func Run(ctx context.Context, s *site.Site, opts ...tea.ProgramOption) error {
	m := New(s)
	defer m.Release()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) session() site.Session { return m.sessions[m.current] }
func (m *Model) section() site.Section { return m.sections[m.current] }

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Escape goes to whoever listens on the input surface.
	if key.Matches(msg, m.keys.Escape) {
		m.input.Dispatch(view.KeyEscape)
		return m, nil
	}

	if m.overlay.IsOpen() {
		return m.handleOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextSection):
		m.switchSection(1)
	case key.Matches(msg, m.keys.PrevSection):
		m.switchSection(-1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.session().Cards())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Next):
		m.session().Next()
		m.cursor = 0
	case key.Matches(msg, m.keys.Prev):
		m.session().Prev()
		m.cursor = 0
	case key.Matches(msg, m.keys.Facet):
		m.toggleFacet(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Clear):
		m.session().Clear()
		m.cursor = 0
	case key.Matches(msg, m.keys.Open):
		m.openSelected()
	case key.Matches(msg, m.keys.Copy):
		m.copyLink(m.selectedCardLink())
	}
	return m, nil
}

// handleOverlayKey handles keys while the detail overlay covers the
// section. q closes it instead of quitting.
func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d, _ := m.overlay.Selected()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.overlay.Close()
	case key.Matches(msg, m.keys.Next):
		if d.Media != nil && d.Media.Multiple {
			m.showMedia(d.Media.Next.URL)
		}
	case key.Matches(msg, m.keys.Prev):
		if d.Media != nil && d.Media.Multiple {
			m.showMedia(d.Media.Prev.URL)
		}
	case key.Matches(msg, m.keys.Copy):
		link := ""
		if len(d.Links) > 0 {
			link = d.Links[0].URL
		}
		m.copyLink(link)
	}
	return m, nil
}

func (m *Model) switchSection(delta int) {
	n := len(m.sections)
	m.current = ((m.current+delta)%n + n) % n
	m.cursor = 0
}

// facetKeys numbers the options of every facet of the current section.
func (m *Model) facetKeys() []facetKey {
	var keys []facetKey
	for _, f := range m.section().Facets() {
		for i, value := range f.Options {
			keys = append(keys, facetKey{facet: f.Name, value: value, label: f.Labels[i]})
		}
	}
	return keys
}

func (m *Model) toggleFacet(i int) {
	keys := m.facetKeys()
	if i < 0 || i >= len(keys) {
		return
	}
	m.session().Toggle(keys[i].facet, keys[i].value)
	m.cursor = 0
}

func (m *Model) openSelected() {
	cards := m.session().Cards()
	if m.cursor >= len(cards) {
		return
	}
	card := cards[m.cursor]
	if card.DetailURL == "" {
		m.status = "No details for " + card.Title
		return
	}
	d, ok := m.section().Detail(card.ID)
	if !ok {
		m.status = "No details for " + card.Title
		return
	}
	m.overlay.Open(d)
}

// showMedia replaces the overlay content with another gallery position,
// addressed by its detail URL.
func (m *Model) showMedia(url string) {
	detailKey := strings.TrimSuffix(path.Base(url), ".html")
	if d, ok := m.section().Detail(detailKey); ok {
		m.overlay.Open(d)
	}
}

func (m *Model) selectedCardLink() string {
	cards := m.session().Cards()
	if m.cursor < len(cards) && len(cards[m.cursor].Links) > 0 {
		return cards[m.cursor].Links[0].URL
	}
	if u := m.site.Data.Site.URL; u != "" {
		return strings.TrimSuffix(u, "/") + "/#" + m.section().Name()
	}
	return ""
}

func (m *Model) copyLink(link string) {
	if link == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := m.copy(link); err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = "Copied " + link
}

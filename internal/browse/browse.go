// Package browse is a read-only terminal browser for a mind map, built on
// bubbletea. It drives the same focus and search state as the window.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/mindweaver"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Model is the bubbletea model of the browser.
type Model struct {
	sess      *mindweaver.Session
	cursor    int
	searching bool
	query     string
	width     int
	height    int
}

// New returns a browser over sess.
func New(sess *mindweaver.Session) Model {
	return Model{sess: sess, query: sess.State().Search}
}

// Run starts the browser in the alternate screen and blocks until it quits.
func Run(sess *mindweaver.Session) error {
	p := tea.NewProgram(New(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) visible() []*mindweaver.Bubble {
	return m.sess.Visible()
}

// Selected returns the highlighted bubble, or nil.
func (m Model) Selected() *mindweaver.Bubble {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return nil
	}
	return vis[m.cursor]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "/":
			m.searching = true
		case "enter", "f":
			if b := m.Selected(); b != nil {
				m.sess.Focus(b.ID)
				m.cursor = 0
			}
		case "esc", "x":
			m.sess.ExitFocus()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEscape:
		m.searching = false
		return m
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	default:
		return m
	}
	m.sess.SetSearch(m.query)
	m.cursor = 0
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	st := m.sess.State()

	b.WriteString(titleStyle.Render("mindweaver"))
	switch {
	case st.Focus != nil:
		if f := st.Graph.Bubble(*st.Focus); f != nil {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("  focus: %s", f.Title)))
		}
	case st.Search != "":
		b.WriteString(subtleStyle.Render(fmt.Sprintf("  search: %q", st.Search)))
	}
	b.WriteString("\n\n")

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString(subtleStyle.Render("  (no bubbles)"))
		b.WriteString("\n")
	}
	for i, bub := range vis {
		line := fmt.Sprintf("%s %s", bub.Icon, bub.Title)
		if bub.Tags != "" {
			line += subtleStyle.Render("  [" + bub.Tags + "]")
		}
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	if sel := m.Selected(); sel != nil {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(m.detail(sel)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString("/" + m.query + "█\n")
	} else {
		b.WriteString(subtleStyle.Render("j/k move · enter focus · esc exit focus · / search · q quit"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) detail(sel *mindweaver.Bubble) string {
	g := m.sess.Graph()
	var lines []string
	lines = append(lines, titleStyle.Render(sel.Title))
	if sel.Description != "" {
		lines = append(lines, sel.Description)
	}
	lines = append(lines, subtleStyle.Render(fmt.Sprintf("id %d · %s · (%.0f, %.0f)", sel.ID, sel.Color, sel.X, sel.Y)))
	var linked []string
	for _, c := range g.Connections {
		if !c.Touches(sel.ID) {
			continue
		}
		if o := g.Bubble(c.Other(sel.ID)); o != nil {
			linked = append(linked, o.Title)
		}
	}
	if len(linked) > 0 {
		lines = append(lines, "→ "+strings.Join(linked, ", "))
	}
	return strings.Join(lines, "\n")
}

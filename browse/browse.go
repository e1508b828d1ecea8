// Package browse is a terminal viewer for the project catalog. Each project
// owns a lightbox, and arrow and escape keys reach it through a shared key
// target exactly as they would on the web page.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tkremer/portfolio"
	"github.com/tkremer/portfolio/lightbox"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	lightboxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

// Model is the bubbletea model behind `portfolio browse`.
type Model struct {
	projects []portfolio.Project
	boxes    []*lightbox.Lightbox
	target   *lightbox.Target
	baseURL  string
	cursor   int
	width    int
}

// New builds a Model over projects. baseURL prefixes the screenshot paths
// shown for an open lightbox.
func New(projects []portfolio.Project, baseURL string) Model {
	target := lightbox.NewTarget()
	boxes := make([]*lightbox.Lightbox, len(projects))
	for i, p := range projects {
		boxes[i] = lightbox.New(p.Screenshots, target)
	}
	return Model{
		projects: projects,
		boxes:    boxes,
		target:   target,
		baseURL:  baseURL,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Close tears down every lightbox, releasing their key subscriptions.
func (m Model) Close() {
	for _, lb := range m.boxes {
		lb.Teardown()
	}
}

// Open returns the index of the project whose lightbox is open, or -1.
func (m Model) Open() int {
	for i, lb := range m.boxes {
		if lb.IsOpen() {
			return i
		}
	}
	return -1
}

// Listeners reports how many lightboxes currently hold a key subscription.
func (m Model) Listeners() int {
	return m.target.Len()
}

// Cursor returns the highlighted project.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		m.Close()
		return m, tea.Quit
	}
	if m.Open() >= 0 {
		m.target.Dispatch(keyFor(key))
		return m, nil
	}
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.boxes) > 0 {
			_ = m.boxes[m.cursor].OpenAt(0)
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && len(m.boxes) > 0 {
			// Out-of-range digits leave the lightbox closed.
			_ = m.boxes[m.cursor].OpenAt(int(key[0] - '1'))
		}
	}
	return m, nil
}

func keyFor(name string) lightbox.Key {
	switch name {
	case "left", "h":
		return lightbox.KeyLeft
	case "right", "l":
		return lightbox.KeyRight
	case "esc":
		return lightbox.KeyEscape
	default:
		return lightbox.KeyOther
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))
	b.WriteString("\n\n")
	if len(m.projects) == 0 {
		b.WriteString(mutedStyle.Render("No projects in the catalog."))
		b.WriteString("\n")
	}
	for i, p := range m.projects {
		marker := "  "
		line := p.Title
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(marker + line)
		meta := []string{}
		if p.Date != "" {
			meta = append(meta, p.Date)
		}
		if p.Linked() {
			meta = append(meta, p.Href)
		}
		meta = append(meta, fmt.Sprintf("%d screenshots", len(p.Screenshots)))
		b.WriteString("  " + mutedStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}

	if open := m.Open(); open >= 0 {
		b.WriteString("\n")
		b.WriteString(m.lightboxView(open))
		b.WriteString("\n")
		hint := "esc close · q quit"
		if m.boxes[open].CanNavigate() {
			hint = "←/→ navigate · " + hint
		}
		b.WriteString(mutedStyle.Render(hint))
	} else {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("↑/↓ select · enter or 1-9 open screenshots · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) lightboxView(i int) string {
	p := m.projects[i]
	lb := m.boxes[i]
	idx, _ := lb.Selected()
	file, _ := lb.Current()
	body := fmt.Sprintf("%s  %d/%d\n%s\n%s",
		p.Title, idx+1, lb.Len(), file, portfolio.AbsURL(m.baseURL, p.ScreenshotPath(idx)))
	style := lightboxStyle
	if m.width > 4 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(body)
}

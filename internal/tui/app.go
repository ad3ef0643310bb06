// Package tui implements the read-only interactive task browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/taskcli/internal/display"
	"github.com/pablasso/taskcli/internal/task"
	"github.com/pablasso/taskcli/internal/tasks"
	"github.com/pablasso/taskcli/internal/tui/components"
	"github.com/pablasso/taskcli/internal/tui/msgs"
	"github.com/pablasso/taskcli/internal/tui/styles"
)

// Lister lists tasks by status. An empty status lists every task.
type Lister interface {
	List(status task.Status) ([]tasks.Item, error)
}

// filters is the order the filter key cycles through.
var filters = append([]task.Status{""}, task.Statuses()...)

const (
	idWidth          = 4
	statusWidth      = 12
	timestampWidth   = 19
	minDescWidth     = 20
	defaultDescWidth = 40
	chromeHeight     = 8
)

// Model is the Bubble Tea model for the task browser.
type Model struct {
	lister Lister
	filter int
	items  []tasks.Item
	err    error
	loaded bool

	table     table.Model
	statusBar components.StatusBar
	help      help.Model
	keys      keyMap

	width  int
	height int
}

// NewModel creates a browser starting with the given status filter.
func NewModel(lister Lister, initial task.Status) Model {
	filter := 0
	for i, s := range filters {
		if s == initial {
			filter = i
		}
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(styles.BoxStyle.GetBorderStyle()).
		BorderForeground(styles.SecondaryColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = styles.SelectedStyle

	t := table.New(
		table.WithColumns(columns(defaultDescWidth)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(s),
	)

	return Model{
		lister:    lister,
		filter:    filter,
		table:     t,
		statusBar: components.NewStatusBar(),
		help:      help.New(),
		keys:      defaultKeyMap(),
	}
}

// Run starts the browser and blocks until the user quits.
func Run(lister Lister, initial task.Status) error {
	p := tea.NewProgram(NewModel(lister, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func columns(descWidth int) []table.Column {
	return []table.Column{
		{Title: display.Headers[0], Width: idWidth},
		{Title: display.Headers[1], Width: descWidth},
		{Title: display.Headers[2], Width: statusWidth},
		{Title: display.Headers[3], Width: timestampWidth},
		{Title: display.Headers[4], Width: timestampWidth},
	}
}

// Filter returns the status currently shown; empty means all.
func (m Model) Filter() task.Status {
	return filters[m.filter]
}

// Items returns the tasks currently shown.
func (m Model) Items() []tasks.Item {
	return m.items
}

func (m Model) load() tea.Cmd {
	lister := m.lister
	status := m.Filter()
	return func() tea.Msg {
		items, err := lister.List(status)
		return msgs.TasksLoadedMsg{Items: items, Err: err}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case msgs.TasksLoadedMsg:
		m.loaded = true
		m.err = msg.Err
		if msg.Err != nil {
			m.items = nil
		} else {
			m.items = msg.Items
		}
		m.table.SetRows(rows(m.items))
		m.table.SetCursor(0)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(filters)
			return m, m.load()
		case key.Matches(msg, m.keys.Reload):
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	fixed := idWidth + statusWidth + 2*timestampWidth + 2*len(display.Headers)
	desc := m.width - fixed
	if desc < minDescWidth {
		desc = minDescWidth
	}
	m.table.SetColumns(columns(desc))

	if h := m.height - chromeHeight; h > 0 {
		m.table.SetHeight(h)
	}
	m.help.Width = m.width
}

// rows builds plain-text cells. The table truncates cells without skipping
// escape codes, so a styled cell would lose its text.
func rows(items []tasks.Item) []table.Row {
	out := make([]table.Row, 0, len(items))
	for _, item := range items {
		out = append(out, display.Row(item))
	}
	return out
}

// detail renders the selected task's status in its emphasis color followed
// by the full description.
func detail(item tasks.Item) string {
	status := display.EmphasisStyle(item.Emphasis).Render(item.Status.String())
	return status + " " + styles.SubtleStyle.Render(item.Description)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	label := "all"
	if f := m.Filter(); f != "" {
		label = string(f)
	}
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Tasks (%s)", label)))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case !m.loaded:
		b.WriteString(styles.SubtleStyle.Render("Loading..."))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(styles.ErrorStyle.Render("No tasks found."))
		b.WriteString("\n")
	default:
		b.WriteString(styles.BoxStyle.Render(m.table.View()))
		b.WriteString("\n")
		c := m.table.Cursor()
		if c >= 0 && c < len(m.items) {
			b.WriteString(detail(m.items[c]))
			b.WriteString("\n")
		}
		b.WriteString(m.statusBar.Render(m.width, m.items, c))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

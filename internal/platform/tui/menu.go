package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockshot/internal/core"
	"github.com/vovakirdan/blockshot/internal/registry"
)

// Menu layout constants
const (
	titleColWidth = 22
	descColWidth  = 34
	menuChrome    = 9 // Title, description, help and borders
)

var menuTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

var menuBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var menuHintStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("245")).
	Italic(true)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	games    []registry.GameInfo
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	quitting bool
	selected string // Game ID chosen by the player
}

// NewMenuModel creates a mode picker over every registered game.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	m := MenuModel{
		games:  registry.List(),
		help:   h,
		keys:   DefaultMenuKeyMap(),
		config: cfg,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the table listing the games.
func (m MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Mode", Width: titleColWidth},
		{Title: "Description", Width: descColWidth},
	}

	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{g.Title, g.Description}
	}

	// Header takes two lines including its border.
	height := len(rows) + 2
	if limit := m.config.ScreenH - menuChrome; limit > 2 && height > limit {
		height = limit
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if g, ok := m.current(); ok {
				m.selected = g.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the game under the cursor.
func (m MenuModel) current() (registry.GameInfo, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.games) {
		return registry.GameInfo{}, false
	}
	return m.games[i], true
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B L O C K S H O T"), m.config.ScreenW))
	b.WriteString("\n\n")

	if len(m.games) == 0 {
		b.WriteString(centerText("No games registered.", m.config.ScreenW))
		b.WriteString("\n")
	} else {
		b.WriteString(menuBoxStyle.Render(m.table.View()))
		b.WriteString("\n")
		if g, ok := m.current(); ok {
			b.WriteString(menuHintStyle.Render(" Play " + g.ID + ": " + g.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen game ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu shows the mode picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), GameID: m.Selected()}
	if m.IsQuitting() || result.GameID == "" {
		result.Quit = true
	}
	return result, nil
}

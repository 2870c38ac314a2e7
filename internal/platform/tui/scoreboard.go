package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// maxScores caps how many results one list loads.
const maxScores = 100

// outcomeFilter narrows the loaded results by how the game ended.
type outcomeFilter int

const (
	outcomeAll outcomeFilter = iota
	outcomeWon
	outcomeLost
	outcomeCount
)

func (f outcomeFilter) String() string {
	switch f {
	case outcomeWon:
		return "Won"
	case outcomeLost:
		return "Lost"
	default:
		return "All"
	}
}

func (f outcomeFilter) keep(r storage.Result) bool {
	switch f {
	case outcomeWon:
		return r.Won
	case outcomeLost:
		return !r.Won
	default:
		return true
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Mine       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Mine, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Mine, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("right", "l", "f"),
			key.WithHelp("f", "all/won/lost"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "previous filter"),
		),
		Mine: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab", "my games"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the Breakout results screen.
// It shows either the best games of everyone or the recent games of the
// current player, filtered by outcome.
type ScoreboardModel struct {
	store   *storage.Store
	player  string
	mine    bool // list the player's recent games instead of the best games
	filter  outcomeFilter
	results []storage.Result // as loaded from the store
	scores  []storage.Result // results passing the filter
	stats   *storage.GameStats
	loadErr error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool // True if user pressed back (not quit)
	embedded  bool // Back and quit are read by a parent model
}

// NewScoreboardModel creates a new scoreboard model. player names the
// current player; when empty the "my games" toggle is disabled.
func NewScoreboardModel(store *storage.Store, width, height int, player string) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	keys.Mine.SetEnabled(player != "")

	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		player: player,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable builds the results table for the current size and list.
func (m ScoreboardModel) createTable() table.Model {
	rankTitle := "Rank"
	if m.mine {
		rankTitle = "#"
	}
	columns := []table.Column{
		{Title: rankTitle, Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 5},
		{Title: "Result", Width: 6},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // title, stats, filters, help
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

// load reads the current list from the store and applies the filter.
func (m *ScoreboardModel) load() {
	m.results, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.applyFilter()
		return
	}

	if m.mine {
		m.results, m.loadErr = m.store.PlayerResults(breakout.GameID, m.player, maxScores)
	} else {
		m.results, m.loadErr = m.store.TopScores(breakout.GameID, maxScores)
	}
	if m.loadErr == nil {
		m.stats, m.loadErr = m.store.GetGameStats(breakout.GameID)
	}
	m.applyFilter()
}

// applyFilter rebuilds the visible rows from the loaded results.
func (m *ScoreboardModel) applyFilter() {
	var visible []storage.Result
	for _, r := range m.results {
		if m.filter.keep(r) {
			visible = append(visible, r)
		}
	}
	m.scores = visible

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		outcome := "lost"
		if s.Won {
			outcome = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			outcome,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exitCmd()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exitCmd()

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % outcomeCount
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + outcomeCount - 1) % outcomeCount
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Mine):
			m.mine = !m.mine
			if m.mine {
				m.keys.Mine.SetHelp("tab", "best games")
			} else {
				m.keys.Mine.SetHelp("tab", "my games")
			}
			m.table = m.createTable()
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// exitCmd ends the program unless a parent model owns it.
func (m ScoreboardModel) exitCmd() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "HIGH SCORES - Breakout"
	if m.mine {
		title = "RECENT GAMES - " + m.player
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.filterBar(), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(boxStyle.Render(m.tableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the list on screen: totals over all games for the
// best-games list, the loaded games for a player's list.
func (m ScoreboardModel) statsLine() string {
	if m.mine {
		var wins, best, level int
		for _, r := range m.results {
			if r.Won {
				wins++
			}
			best = max(best, r.Score)
			level = max(level, r.Level)
		}
		if len(m.results) == 0 {
			return ""
		}
		return fmt.Sprintf("Games: %d  |  Wins: %d  |  Best: %d  |  Best level: %d",
			len(m.results), wins, best, level)
	}

	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  |  Wins: %d  |  Best level: %d  |  Avg score: %.0f",
		m.stats.GamesCount, m.stats.Wins, m.stats.BestLevel, m.stats.AvgScore)
}

// filterBar shows the outcome filters with the active one highlighted.
func (m ScoreboardModel) filterBar() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

	parts := make([]string, 0, outcomeCount)
	for f := outcomeAll; f < outcomeCount; f++ {
		if f == m.filter {
			parts = append(parts, active.Render(f.String()))
		} else {
			parts = append(parts, idle.Render(f.String()))
		}
	}
	return strings.Join(parts, " ")
}

// tableContent renders the table or an empty-list message.
func (m ScoreboardModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores.")
	case len(m.results) == 0 && m.mine:
		return emptyStyle.Render("No games recorded for " + m.player + " yet.")
	case len(m.results) == 0:
		return emptyStyle.Render("No scores recorded yet.\nFinish a game to set a high score!")
	case len(m.scores) == 0:
		return emptyStyle.Render(fmt.Sprintf("No %s games in this list.", strings.ToLower(m.filter.String())))
	}
	return m.table.View()
}

// centerBlock centers every line of a multi-line block as one unit.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", pad)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen for the given player.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, player string) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/pmboard/internal/kanban"
	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/query"
)

// FlashDuration is how long a board message stays on screen
const FlashDuration = 2 * time.Second

// BoardService is what the board reads from and drops tasks into
type BoardService interface {
	kanban.Mover
	Snapshot() models.Snapshot
}

// flashExpiredMsg clears the flash message it was scheduled for
type flashExpiredMsg struct {
	id int
}

// BoardModel is an interactive Kanban board for one project.
// Space picks a card up, moving left and right chooses the column and space
// again drops it there.
type BoardModel struct {
	svc       BoardService
	projectID string
	project   string
	today     models.Date
	palette   Palette

	columns []query.Column
	col     int
	row     int
	drag    kanban.Machine

	flash     string
	flashErr  bool
	flashID   int
	flashTime time.Duration

	width  int
	height int
}

// NewBoardModel loads the board for projectID
func NewBoardModel(svc BoardService, projectID string, today models.Date) BoardModel {
	snap := svc.Snapshot()
	m := BoardModel{
		svc:       svc,
		projectID: projectID,
		today:     today,
		palette:   PaletteFor(snap.Preferences.Theme),
		flashTime: FlashDuration,
	}
	if i := snap.FindProject(projectID); i >= 0 {
		m.project = snap.Projects[i].Name
	}
	m.columns = query.KanbanColumns(snap, projectID, today)
	return m
}

// Init initializes the model
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case flashExpiredMsg:
		// a newer message may have replaced the one this timer was for
		if msg.id == m.flashID {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.drag.DragEnd()
			return m, tea.Quit

		case "esc":
			if _, dragging := m.drag.Dragging(); dragging {
				m.drag.DragEnd()
				return m.setFlash("Drag cancelled", false)
			}
			return m, tea.Quit

		case "left", "h":
			if m.col > 0 {
				m.col--
				m.clampRow()
			}
			return m, nil

		case "right", "l":
			if m.col < len(m.columns)-1 {
				m.col++
				m.clampRow()
			}
			return m, nil

		case "up", "k":
			if m.row > 0 {
				m.row--
			}
			return m, nil

		case "down", "j":
			if m.row < len(m.columns[m.col].Cards)-1 {
				m.row++
			}
			return m, nil

		case "1", "2", "3", "4":
			m.col = int(msg.String()[0]-'1') % len(m.columns)
			m.clampRow()
			return m, nil

		case " ", "enter":
			if _, dragging := m.drag.Dragging(); dragging {
				return m.drop()
			}
			return m.pickUp()
		}
	}
	return m, nil
}

// pickUp starts dragging the selected card
func (m BoardModel) pickUp() (BoardModel, tea.Cmd) {
	card, ok := m.selected()
	if !ok {
		return m, nil
	}
	m.drag.DragStart(card.Task.ID)
	return m.setFlash(fmt.Sprintf("Moving %q: choose a column and press space", card.Task.Title), false)
}

// drop moves the dragged card into the current column
func (m BoardModel) drop() (BoardModel, tea.Cmd) {
	id, _ := m.drag.Dragging()
	target := m.columns[m.col].Status

	moved, err := m.drag.Drop(target, m.svc)
	m.drag.DragEnd()
	if err != nil {
		return m.setFlash("Error: "+err.Error(), true)
	}

	m.reload()
	m.selectTask(id)
	if !moved {
		return m.setFlash("Task already in "+target.Label(), false)
	}
	return m.setFlash("Task moved to "+target.Label(), false)
}

// setFlash shows text and schedules its removal. The timer only touches
// view state.
func (m BoardModel) setFlash(text string, isErr bool) (BoardModel, tea.Cmd) {
	m.flashID++
	m.flash = text
	m.flashErr = isErr
	id := m.flashID
	return m, tea.Tick(m.flashTime, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

func (m *BoardModel) reload() {
	m.columns = query.KanbanColumns(m.svc.Snapshot(), m.projectID, m.today)
	m.clampRow()
}

// selectTask moves the cursor to the card with id, wherever it is now
func (m *BoardModel) selectTask(id string) {
	for c, column := range m.columns {
		for r, card := range column.Cards {
			if card.Task.ID == id {
				m.col, m.row = c, r
				return
			}
		}
	}
}

func (m *BoardModel) clampRow() {
	n := len(m.columns[m.col].Cards)
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m BoardModel) selected() (query.Card, bool) {
	cards := m.columns[m.col].Cards
	if m.row < 0 || m.row >= len(cards) {
		return query.Card{}, false
	}
	return cards[m.row], true
}

// View renders the board
func (m BoardModel) View() string {
	p := m.palette
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(p.Highlight)
	b.WriteString(title.Render("📋 " + m.project))
	b.WriteString("\n\n")

	colWidth := 28
	if m.width > 0 {
		colWidth = max((m.width-8)/len(m.columns), 18)
	}

	dragged, dragging := m.drag.Dragging()
	rendered := make([]string, len(m.columns))
	for c, column := range m.columns {
		rendered[c] = m.renderColumn(column, c, colWidth, dragged, dragging)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")

	if m.flash != "" {
		style := lipgloss.NewStyle().Foreground(p.Success)
		if m.flashErr {
			style = style.Foreground(p.Error)
		}
		b.WriteString(style.Render(m.flash))
	}
	b.WriteString("\n")

	help := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString(help.Render("←/→ column  ↑/↓ card  1-4 jump  space pick up/drop  esc cancel  q quit"))
	return b.String()
}

func (m BoardModel) renderColumn(column query.Column, index, width int, dragged string, dragging bool) string {
	p := m.palette

	border := p.Border
	if index == m.col {
		border = p.Accent
	}
	style := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	header := lipgloss.NewStyle().Bold(true).Foreground(p.Text).
		Render(fmt.Sprintf("%s (%d)", column.Status.Label(), len(column.Cards)))

	lines := []string{header, ""}
	for r, card := range column.Cards {
		lines = append(lines, m.renderCard(card, index == m.col && r == m.row, dragging && card.Task.ID == dragged, width-2))
	}
	if len(column.Cards) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(p.Muted).Render("no tasks"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m BoardModel) renderCard(card query.Card, selected, dragged bool, width int) string {
	p := m.palette

	marker := "  "
	if selected {
		marker = "▶ "
	}
	if dragged {
		marker = "✋ "
	}

	titleStyle := lipgloss.NewStyle().Foreground(p.Text)
	if selected {
		titleStyle = titleStyle.Bold(true).Foreground(p.Highlight)
	}

	assignee := card.AssigneeName
	if assignee == "" {
		assignee = "Unassigned"
	}
	meta := lipgloss.NewStyle().Foreground(p.PriorityColor(card.Task.Priority)).Render(card.Task.Priority.Label()) +
		lipgloss.NewStyle().Foreground(p.Muted).Render(" · "+assignee+" · "+card.DueLabel)

	return lipgloss.NewStyle().Width(width).Render(marker+titleStyle.Render(card.Task.Title)) + "\n   " + meta
}

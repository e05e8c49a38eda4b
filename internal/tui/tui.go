package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/pmboard/internal/models"
)

// RunBoardTUI starts the interactive Kanban board for projectID
func RunBoardTUI(svc BoardService, projectID string, today models.Date) error {
	model := NewBoardModel(svc, projectID, today)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunTaskFormTUI starts the interactive task form and reports the outcome to w
func RunTaskFormTUI(w io.Writer, cfg TaskFormConfig) error {
	model := NewTaskFormModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TaskFormModel); ok {
		switch {
		case m.completed && cfg.EditID != "":
			fmt.Fprintf(w, "✅ Task \"%s\" updated\n", m.savedTitle)
		case m.completed:
			fmt.Fprintf(w, "✅ New task \"%s\" added\n", m.savedTitle)
		case m.cancelled:
			fmt.Fprintln(w, "❌ Cancelled.")
		}
	}
	return nil
}

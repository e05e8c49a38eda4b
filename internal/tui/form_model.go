package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/parser"
	"github.com/balkashynov/pmboard/internal/query"
)

// Step represents the current step in the wizard
type Step int

const (
	StepTitle Step = iota
	StepAssignee
	StepPriority
	StepDueDate
	StepDescription
	StepSave
)

var stepLabels = []string{"Title", "Assignee", "Priority", "Due Date", "Description", "Save"}

// TaskFormValues are the validated form fields
type TaskFormValues struct {
	Title       string
	AssigneeID  string
	Priority    models.Priority
	DueDate     models.Date
	Description string
}

// TaskFormConfig sets up the form
type TaskFormConfig struct {
	ProjectName string
	Team        []models.TeamMember
	Today       time.Time
	Theme       models.Theme

	// Prefilled holds raw text for each field, keyed by "title", "assignee",
	// "priority", "due_date" and "description"
	Prefilled map[string]string

	// EditID is set when editing an existing task
	EditID string

	// Submit saves the values; an error keeps the form open
	Submit func(TaskFormValues) (savedTitle string, err error)
}

// TaskFormModel is a step-by-step form for creating or editing a task
type TaskFormModel struct {
	cfg         TaskFormConfig
	palette     Palette
	currentStep Step
	inputs      []textinput.Model
	initial     []string
	width       int
	height      int

	values TaskFormValues

	// State
	err           error
	validationErr string
	completed     bool
	cancelled     bool
	savedTitle    string

	// Save confirmation modal
	showSaveModal   bool
	saveModalChoice bool // true for Yes, false for No
}

// NewTaskFormModel creates the form with prefilled values
func NewTaskFormModel(cfg TaskFormConfig) TaskFormModel {
	palette := PaletteFor(cfg.Theme)
	inputs := make([]textinput.Model, StepSave)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(palette.Text)
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(palette.Highlight)
	}

	inputs[StepTitle].Placeholder = "Enter task title... (required)"
	inputs[StepTitle].CharLimit = 200
	inputs[StepAssignee].Placeholder = "Team member name (Enter to leave unassigned)"
	inputs[StepAssignee].CharLimit = 50
	inputs[StepPriority].Placeholder = "low/medium/high/critical or 1-4 (Enter for medium)"
	inputs[StepPriority].CharLimit = 10
	inputs[StepDueDate].Placeholder = "yyyy-mm-dd, dd/mm/yyyy, tomorrow, 3 days (Enter to skip)"
	inputs[StepDueDate].CharLimit = 50
	inputs[StepDescription].Placeholder = "Description (Enter to skip)"
	inputs[StepDescription].CharLimit = 500

	keys := []string{"title", "assignee", "priority", "due_date", "description"}
	initial := make([]string, len(keys))
	for i, key := range keys {
		if v, ok := cfg.Prefilled[key]; ok {
			inputs[i].SetValue(v)
			initial[i] = v
		}
	}
	inputs[StepTitle].Focus()

	return TaskFormModel{
		cfg:         cfg,
		palette:     palette,
		currentStep: StepTitle,
		inputs:      inputs,
		initial:     initial,
	}
}

// Init initializes the model
func (m TaskFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m TaskFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		width := min(max(m.width*2/3-10, 30), 80)
		for i := range m.inputs {
			m.inputs[i].Width = width
		}
		return m, nil

	case tea.KeyMsg:
		if m.showSaveModal {
			switch msg.String() {
			case "left", "right":
				m.saveModalChoice = !m.saveModalChoice
				return m, nil
			case "y", "Y":
				m.saveModalChoice = true
				return m.handleSaveChoice()
			case "n", "N":
				m.saveModalChoice = false
				return m.handleSaveChoice()
			case "enter":
				return m.handleSaveChoice()
			case "esc":
				m.showSaveModal = false
				return m, nil
			case "ctrl+c":
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			if m.currentStep == StepSave {
				return m.prevStep()
			}
			if !m.hasChanges() {
				m.cancelled = true
				return m, tea.Quit
			}
			m.showSaveModal = true
			m.saveModalChoice = true
			return m, nil

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			if m.currentStep == StepTitle && strings.TrimSpace(m.inputs[StepTitle].Value()) == "" {
				m.validationErr = "Task title is required"
				return m, nil
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

// handleEnter validates the current step and moves on, or saves
func (m TaskFormModel) handleEnter() (TaskFormModel, tea.Cmd) {
	m.validationErr = ""

	if m.currentStep == StepSave {
		return m.save()
	}
	if err := m.validateStep(m.currentStep); err != "" {
		m.validationErr = err
		return m, nil
	}
	return m.nextStep()
}

// validateStep checks one field and stores its parsed value
func (m *TaskFormModel) validateStep(step Step) string {
	raw := strings.TrimSpace(m.inputs[step].Value())

	switch step {
	case StepTitle:
		if raw == "" {
			return "Task title is required"
		}
		m.values.Title = raw

	case StepAssignee:
		m.values.AssigneeID = ""
		if raw == "" {
			return ""
		}
		member, err := query.FindMember(m.cfg.Team, raw)
		if err != nil {
			return err.Error()
		}
		m.values.AssigneeID = member.ID

	case StepPriority:
		m.values.Priority = models.PriorityMedium
		if raw == "" {
			return ""
		}
		p, ok := parser.NormalizePriority(raw)
		if !ok {
			return "Invalid priority. Use: low, medium, high, critical or 1-4"
		}
		m.values.Priority = p

	case StepDueDate:
		due, err := parser.ParseDueDate(raw, m.cfg.Today)
		if err != nil {
			return "Invalid due date: " + err.Error()
		}
		m.values.DueDate = due

	case StepDescription:
		m.values.Description = raw
	}
	return ""
}

// nextStep moves to the next step
func (m TaskFormModel) nextStep() (TaskFormModel, tea.Cmd) {
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Focus()
		}
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m TaskFormModel) prevStep() (TaskFormModel, tea.Cmd) {
	if m.currentStep > StepTitle {
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
	}
	return m, textinput.Blink
}

// hasChanges reports whether any field differs from its prefilled value
func (m TaskFormModel) hasChanges() bool {
	for i, input := range m.inputs {
		if input.Value() != m.initial[i] {
			return true
		}
	}
	return false
}

// save revalidates every field and hands the values to Submit
func (m TaskFormModel) save() (TaskFormModel, tea.Cmd) {
	for step := StepTitle; step < StepSave; step++ {
		if err := m.validateStep(step); err != "" {
			m.validationErr = err
			m.inputs[m.currentStep].Blur()
			m.currentStep = step
			m.inputs[step].Focus()
			return m, textinput.Blink
		}
	}

	title, err := m.cfg.Submit(m.values)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.completed = true
	m.savedTitle = title
	return m, tea.Quit
}

// handleSaveChoice handles the save confirmation modal response
func (m TaskFormModel) handleSaveChoice() (TaskFormModel, tea.Cmd) {
	m.showSaveModal = false
	if m.saveModalChoice {
		return m.save()
	}
	m.cancelled = true
	return m, tea.Quit
}

// View renders the form
func (m TaskFormModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	p := m.palette
	var b strings.Builder

	titleText := "📝 New task in " + m.cfg.ProjectName
	if m.cfg.EditID != "" {
		titleText = "📝 Edit task " + m.cfg.EditID
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.Highlight).Render(titleText))
	b.WriteString("\n\n")

	for i, label := range stepLabels {
		step := Step(i)
		if step == StepSave {
			b.WriteString("\n")
		}
		switch {
		case step == m.currentStep:
			b.WriteString(lipgloss.NewStyle().Foreground(p.Highlight).Render("▶ " + label))
		case step < m.currentStep && step < StepSave && strings.TrimSpace(m.inputs[step].Value()) != "":
			b.WriteString(lipgloss.NewStyle().Foreground(p.Success).Render("✓ " + label))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.currentStep < StepSave {
		b.WriteString(m.inputs[m.currentStep].View())
	} else {
		b.WriteString("Press Enter to save, ↑ to go back")
	}
	b.WriteString("\n\n")

	if m.validationErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Error).Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Error).Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	help := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString(help.Render("enter next  tab/↓ skip  shift+tab/↑ back  esc finish"))

	view := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1).
		Render(b.String())

	if m.showSaveModal {
		return m.renderSaveModal()
	}
	return view
}

// renderSaveModal renders the save confirmation modal
func (m TaskFormModel) renderSaveModal() string {
	p := m.palette

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if m.saveModalChoice {
		yesStyle = yesStyle.Background(p.Highlight).Foreground(lipgloss.Color("#000000")).Bold(true)
	} else {
		noStyle = noStyle.Background(p.Error).Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	}

	var content strings.Builder
	content.WriteString("Save changes?\n\n")
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render("Yes"), "   ", noStyle.Render("No")))
	content.WriteString("\n\n← → or Y/N to choose, Enter to confirm\nEsc to go back")

	modal := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Highlight).
		Background(p.Card).
		Padding(1).
		Align(lipgloss.Center).
		Render(content.String())

	if m.width == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

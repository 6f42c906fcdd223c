package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/internal/git"
	"stashit.dev/stashit/internal/utils"
)

// ErrInteractiveDisabled is returned when prompts cannot be shown because
// stdin is not a terminal or STASHIT_TEST_NO_INTERACTIVE is set
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (not a terminal or STASHIT_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is unavailable
func checkInteractiveAllowed() error {
	if !utils.IsInteractive() {
		return ErrInteractiveDisabled
	}
	return nil
}

// SurveyPrompter presents confirmation choices with survey
type SurveyPrompter struct{}

// NewSurveyPrompter creates a prompter bound to the process's stdio
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// PresentChoice asks message and returns the picked option. Ctrl+C returns a
// nil choice; the dismiss option is preselected.
func (p *SurveyPrompter) PresentChoice(message string, options []command.Choice) (*command.Choice, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no options provided")
	}

	labels := make([]string, len(options))
	defaultLabel := options[0].Label
	for i, opt := range options {
		labels[i] = opt.Label
		if opt.IsDismiss {
			defaultLabel = opt.Label
		}
	}

	var answer string
	prompt := &survey.Select{
		Message: message,
		Options: labels,
		Default: defaultLabel,
	}
	err := survey.AskOne(prompt, &answer, survey.WithStdio(os.Stdin, os.Stdout, os.Stderr))
	if errors.Is(err, terminal.InterruptErr) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return findChoice(options, answer), nil
}

// findChoice returns the option labelled label, or nil
func findChoice(options []command.Choice, label string) *command.Choice {
	for i := range options {
		if options[i].Label == label {
			return &options[i]
		}
	}
	return nil
}

// StashSelectModel is a stash selection prompt model with filtering
type StashSelectModel struct {
	Choices  []git.Stash
	Filtered []git.Stash
	Filter   textinput.Model
	Cursor   int
	Selected *git.Stash
	Done     bool
	Canceled bool
	Message  string
}

// NewStashSelectModel creates a picker over stashes with an empty, focused filter
func NewStashSelectModel(message string, stashes []git.Stash) StashSelectModel {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.Placeholder = "type to filter"
	ti.CharLimit = 200
	ti.Focus()

	m := StashSelectModel{
		Choices: stashes,
		Filter:  ti,
		Message: message,
	}
	m.updateFiltered()
	return m
}

// Init initializes the bubbletea model
func (m StashSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles message updates for the bubbletea model
func (m StashSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if len(m.Filtered) > 0 && m.Cursor >= 0 && m.Cursor < len(m.Filtered) {
				selected := m.Filtered[m.Cursor]
				m.Selected = &selected
				m.Done = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Canceled = true
			m.Done = true
			return m, tea.Quit
		case tea.KeyUp:
			if len(m.Filtered) == 0 {
				return m, nil
			}
			if m.Cursor > 0 {
				m.Cursor--
			} else {
				m.Cursor = len(m.Filtered) - 1
			}
			return m, nil
		case tea.KeyDown:
			if len(m.Filtered) == 0 {
				return m, nil
			}
			if m.Cursor < len(m.Filtered)-1 {
				m.Cursor++
			} else {
				m.Cursor = 0
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	m.updateFiltered()
	return m, cmd
}

func (m *StashSelectModel) updateFiltered() {
	filter := strings.ToLower(strings.TrimSpace(m.Filter.Value()))
	if filter == "" {
		m.Filtered = m.Choices
	} else {
		m.Filtered = []git.Stash{}
		for _, stash := range m.Choices {
			if strings.Contains(strings.ToLower(stash.Message), filter) ||
				strings.Contains(strings.ToLower(stash.Name), filter) {
				m.Filtered = append(m.Filtered, stash)
			}
		}
	}

	if m.Cursor >= len(m.Filtered) {
		m.Cursor = len(m.Filtered) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// View renders the TUI
func (m StashSelectModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Message))
	b.WriteString("\n")
	b.WriteString(m.Filter.View())
	b.WriteString("\n\n")

	if len(m.Filtered) == 0 {
		b.WriteString("No stashes match the filter.\n")
	} else {
		for i, stash := range m.Filtered {
			cursor := " "
			if i == m.Cursor {
				cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(">")
			}
			b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor, ColorStashName(stash.Name), stash.Message))
		}
	}

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("\n(↑/↓ to move, Enter to drop, Esc to quit, type to filter)"))

	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(b.String())
}

// PromptStashSelection prompts the user to select a stash. A nil stash means
// the picker was closed without a selection.
func PromptStashSelection(message string, stashes []git.Stash) (*git.Stash, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}
	if len(stashes) == 0 {
		return nil, fmt.Errorf("no stashes to select from")
	}

	p := tea.NewProgram(NewStashSelectModel(message, stashes), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel, ok := model.(StashSelectModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if finalModel.Canceled {
		return nil, nil
	}
	return finalModel.Selected, nil
}

// StashPicker picks stashes with the interactive bubbletea selector
type StashPicker struct{}

// PickStash shows the stash selector
func (StashPicker) PickStash(stashes []git.Stash) (*git.Stash, error) {
	return PromptStashSelection("Select a stash to drop", stashes)
}

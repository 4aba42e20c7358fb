package jobs

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/errors"
)

var fieldLabels = map[string]string{
	domain.FieldSSHKeyUnlock: "SSH key passphrase",
	domain.FieldSSHPassword:  "SSH password",
	domain.FieldSudoPassword: "sudo password",
}

func fieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// passwordPrompt asks for each needed field in turn without echoing input.
type passwordPrompt struct {
	jobID    string
	fields   []string
	index    int
	input    textinput.Model
	values   map[string]string
	canceled bool
}

func newPasswordPrompt(jobID string, fields []string) passwordPrompt {
	input := textinput.New()
	input.Prompt = "> "
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 1024
	input.Focus()

	return passwordPrompt{
		jobID:  jobID,
		fields: fields,
		input:  input,
		values: make(map[string]string, len(fields)),
	}
}

func (m passwordPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.values[m.fields[m.index]] = m.input.Value()
			m.input.Reset()
			m.index++
			if m.done() {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordPrompt) View() string {
	if m.done() || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Passwords needed to start job "+m.jobID) + "\n")
	fmt.Fprintf(&b, "%s (%d/%d)\n", fieldLabel(m.fields[m.index]), m.index+1, len(m.fields))
	b.WriteString(m.input.View() + "\n")
	b.WriteString(mutedStyle.Render("enter to confirm, esc to abort") + "\n")
	return b.String()
}

func (m passwordPrompt) done() bool {
	return m.index >= len(m.fields)
}

// askPasswords runs the prompt on in/out and returns the entered values
// keyed by field name.
func askPasswords(jobID string, fields []string, in io.Reader, out io.Writer) (map[string]string, error) {
	p := tea.NewProgram(newPasswordPrompt(jobID, fields), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("password prompt failed: %w", err)
	}
	m, ok := final.(passwordPrompt)
	if !ok || m.canceled || !m.done() {
		return nil, errors.NewPasswordsNeededError(fields)
	}
	return m.values, nil
}

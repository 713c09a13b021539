package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PostInput holds the values collected by the interactive new-post form.
type PostInput struct {
	Title string
	Tags  []string
	Date  time.Time
}

const (
	fieldTitle = iota
	fieldTags
	fieldDate
	fieldCount
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// formModel walks through title, tags, and date inputs one field at a time.
type formModel struct {
	inputs   []textinput.Model
	field    int
	err      error
	done     bool
	quitting bool
	now      time.Time
}

func newFormModel(now time.Time) formModel {
	title := textinput.New()
	title.Placeholder = "Post title"
	title.Focus()
	title.Cursor.Style = cursorStyle

	tags := textinput.New()
	tags.Placeholder = "tag, another-tag (optional)"
	tags.Cursor.Style = cursorStyle

	date := textinput.New()
	date.Placeholder = now.Format("2006-01-02")
	date.Cursor.Style = cursorStyle

	return formModel{
		inputs: []textinput.Model{title, tags, date},
		now:    now,
	}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.advance()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

// advance validates the focused field and moves to the next, quitting the
// program once every field is accepted.
func (m formModel) advance() (tea.Model, tea.Cmd) {
	switch m.field {
	case fieldTitle:
		if strings.TrimSpace(m.inputs[fieldTitle].Value()) == "" {
			m.err = fmt.Errorf("a title is required")
			return m, nil
		}
	case fieldDate:
		if v := strings.TrimSpace(m.inputs[fieldDate].Value()); v != "" {
			if _, err := time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
				m.err = fmt.Errorf("date must be yyyy-MM-dd")
				return m, nil
			}
		}
	}
	m.err = nil

	if m.field == fieldCount-1 {
		m.done = true
		return m, tea.Quit
	}

	m.inputs[m.field].Blur()
	m.field++
	return m, m.inputs[m.field].Focus()
}

func (m formModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	labels := []string{"Title", "Tags", "Date"}
	var b strings.Builder
	b.WriteString(labelStyle.Render("New post") + "\n\n")
	for i, in := range m.inputs {
		marker := "  "
		if i == m.field {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, labelStyle.Render(labels[i]+":"), in.View())
	}
	if m.err != nil {
		b.WriteString("\n" + StatusStyle("error").Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter to accept a field, esc to cancel") + "\n")
	return b.String()
}

// result converts the accepted field values into a PostInput.
func (m formModel) result() PostInput {
	in := PostInput{
		Title: strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Date:  m.now,
	}

	for _, tag := range strings.Split(m.inputs[fieldTags].Value(), ",") {
		if t := strings.TrimSpace(tag); t != "" {
			in.Tags = append(in.Tags, t)
		}
	}

	if v := strings.TrimSpace(m.inputs[fieldDate].Value()); v != "" {
		// advance already validated the format.
		if d, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			in.Date = d
		}
	}

	return in
}

// RunPostForm shows the interactive form and returns the collected values.
// A cancelled form returns an error.
func RunPostForm(out io.Writer, now time.Time) (PostInput, error) {
	p := tea.NewProgram(newFormModel(now), tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return PostInput{}, fmt.Errorf("run form: %w", err)
	}

	m, ok := finalModel.(formModel)
	if !ok || !m.done {
		return PostInput{}, fmt.Errorf("cancelled")
	}
	return m.result(), nil
}

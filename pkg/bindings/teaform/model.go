package teaform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/form"
)

// Field describes one input row. Rows render in the order given.
type Field struct {
	Key         string
	Label       string
	Placeholder string
}

// Option customises a Model.
type Option func(*Model)

// WithTitle sets the heading rendered above the inputs.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// Model is a bubbletea model rendering a form as a column of text inputs.
type Model struct {
	handle *formstate.Handle[form.Presentation]
	fields []Field
	inputs []textinput.Model
	focus  int
	styles Styles
	title  string
	status string

	submitted bool
	aborted   bool
}

// New builds a model for fields. Inputs start from the form's current raw
// values and the first input is focused.
func New(handle *formstate.Handle[form.Presentation], fields []Field, opts ...Option) (Model, error) {
	if handle == nil {
		return Model{}, errors.New("teaform: form handle is required")
	}
	if len(fields) == 0 {
		return Model{}, errors.New("teaform: at least one field is required")
	}

	m := Model{
		handle: handle,
		fields: fields,
		inputs: make([]textinput.Model, len(fields)),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}

	for i, f := range fields {
		props, err := handle.Register(f.Key)
		if err != nil {
			return Model{}, fmt.Errorf("teaform: %w", err)
		}
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = f.Placeholder
		in.SetValue(props.Value)
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	return m, nil
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles navigation keys, forwards edits to the form and re-renders
// on settle.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SettledMsg:
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			cmd := m.moveFocus(1)
			return m, cmd
		case tea.KeyShiftTab, tea.KeyUp:
			cmd := m.moveFocus(-1)
			return m, cmd
		case tea.KeyEnter:
			return m.submit()
		}
	}

	in := &m.inputs[m.focus]
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if after := in.Value(); after != before {
		m.status = ""
		m.apply(m.focus, after)
	}
	return m, cmd
}

// apply stores raw through the field's props and mirrors the formatted value
// back into the input.
func (m *Model) apply(idx int, raw string) {
	key := m.fields[idx].Key
	props, err := m.handle.Register(key)
	if err != nil {
		return
	}
	if raw == "" {
		props.OnCleared()
	} else {
		props.OnChangeText(raw)
	}
	if props, err = m.handle.Register(key); err == nil && props.Value != raw {
		m.inputs[idx].SetValue(props.Value)
		m.inputs[idx].CursorEnd()
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.handle.IsValid() {
		m.submitted = true
		return m, tea.Quit
	}
	report := m.handle.Report()
	m.status = fmt.Sprintf("%d field(s) need attention", len(report.Issues))
	if len(report.Issues) > 0 {
		for i, f := range m.fields {
			if f.Key == report.Issues[0].Field && i != m.focus {
				cmd := m.moveFocus(i - m.focus)
				return m, cmd
			}
		}
	}
	return m, nil
}

// View renders the inputs with their visible errors.
func (m Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}
	for i, f := range m.fields {
		label := f.Label
		if label == "" {
			label = f.Key
		}
		if i == m.focus {
			b.WriteString(m.styles.Focused.Render(label))
		} else {
			b.WriteString(m.styles.Label.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if props, err := m.handle.Register(f.Key); err == nil && props.HasError() {
			b.WriteString(m.styles.Error.Render(props.Error))
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab/shift+tab move • enter submit • esc quit"))
	b.WriteString("\n")
	return b.String()
}

// Submitted reports whether the user submitted a valid form.
func (m Model) Submitted() bool { return m.submitted }

// Aborted reports whether the user quit without submitting.
func (m Model) Aborted() bool { return m.aborted }

// Values returns the form snapshot.
func (m Model) Values() box.Values { return m.handle.Snapshot() }

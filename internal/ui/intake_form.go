package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcao2/healthai-assistant/internal/assessment"
)

// fieldInput is the subset of textinput/textarea behaviour the form relies on
type fieldInput interface {
	Value() string
	SetValue(string)
	Focus() tea.Cmd
	Blur()
	Reset()
	View() string
}

// submitFocus is the focus index of the "Analyze Symptoms" button
var submitFocus = len(assessment.Fields)

// IntakeForm holds the editable widgets of the symptom step. Focus cycles
// through the fields in assessment.Fields order and then the submit button.
type IntakeForm struct {
	inputs []fieldInput
	focus  int
	width  int
}

func NewIntakeForm() *IntakeForm {
	f := &IntakeForm{
		inputs: make([]fieldInput, len(assessment.Fields)),
		width:  60,
	}

	symptoms := textarea.New()
	symptoms.Placeholder = "Describe your symptoms in detail (e.g., headache, fever, cough, fatigue...)"
	symptoms.ShowLineNumbers = false
	symptoms.SetHeight(3)

	duration := textinput.New()
	duration.Placeholder = "e.g., 3 days"
	duration.Prompt = ""

	severity := textinput.New()
	severity.Placeholder = "1-10"
	severity.Prompt = ""

	age := textinput.New()
	age.Placeholder = "Your age"
	age.Prompt = ""

	additional := textarea.New()
	additional.Placeholder = "Any additional context, medical history, or concerns..."
	additional.ShowLineNumbers = false
	additional.SetHeight(2)

	f.inputs[assessment.FieldSymptoms] = &symptoms
	f.inputs[assessment.FieldDuration] = &duration
	f.inputs[assessment.FieldSeverity] = &severity
	f.inputs[assessment.FieldAge] = &age
	f.inputs[assessment.FieldAdditionalInfo] = &additional

	f.SetWidth(f.width)
	f.inputs[0].Focus()
	return f
}

func (f *IntakeForm) Init() tea.Cmd {
	return textinput.Blink
}

// SetWidth resizes every input to fit inside a card of the given width
func (f *IntakeForm) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.width = width
	// Borders take two cells, the text input cursor one more
	colWidth := (width - 4) / 3
	for _, in := range f.inputs {
		switch in := in.(type) {
		case *textarea.Model:
			in.SetWidth(width - 2)
		case *textinput.Model:
			in.Width = colWidth - 3
		}
	}
}

// Focused returns the field that has focus; ok is false when the button has it
func (f *IntakeForm) Focused() (field assessment.Field, ok bool) {
	if f.focus >= len(f.inputs) {
		return 0, false
	}
	return assessment.Fields[f.focus], true
}

func (f *IntakeForm) ButtonFocused() bool {
	return f.focus == submitFocus
}

// SingleLineFocused reports whether a one-line input has focus
func (f *IntakeForm) SingleLineFocused() bool {
	if f.ButtonFocused() {
		return false
	}
	_, ok := f.inputs[f.focus].(*textinput.Model)
	return ok
}

func (f *IntakeForm) FocusNext() tea.Cmd {
	return f.setFocus((f.focus + 1) % (submitFocus + 1))
}

func (f *IntakeForm) FocusPrev() tea.Cmd {
	return f.setFocus((f.focus + submitFocus) % (submitFocus + 1))
}

func (f *IntakeForm) setFocus(idx int) tea.Cmd {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = idx
	if idx < len(f.inputs) {
		return f.inputs[idx].Focus()
	}
	return nil
}

// Blur removes focus from every input
func (f *IntakeForm) Blur() {
	for _, in := range f.inputs {
		in.Blur()
	}
}

// Reset clears every input and returns focus to the first field
func (f *IntakeForm) Reset() tea.Cmd {
	for _, in := range f.inputs {
		in.Reset()
	}
	f.focus = submitFocus
	return f.setFocus(0)
}

// Value returns the current text of a field
func (f *IntakeForm) Value(field assessment.Field) string {
	return f.inputs[field].Value()
}

// Update forwards a message to the focused input
func (f *IntakeForm) Update(msg tea.Msg) tea.Cmd {
	if f.ButtonFocused() {
		return nil
	}

	var cmd tea.Cmd
	switch in := f.inputs[f.focus].(type) {
	case *textarea.Model:
		*in, cmd = in.Update(msg)
	case *textinput.Model:
		*in, cmd = in.Update(msg)
	}
	return cmd
}

// View renders the form. canAdvance drives the submit button's enabled state.
func (f *IntakeForm) View(styles Styles, canAdvance bool) string {
	field := func(fd assessment.Field, width int) string {
		box := styles.Input
		if f.focus == int(fd) {
			box = styles.InputFocus
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.Label.Render(fd.Label()),
			box.Width(width - 2).Render(f.inputs[fd].View()),
		)
	}

	// Duration, severity and age share one row
	colWidth := (f.width - 4) / 3
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		field(assessment.FieldDuration, colWidth),
		"  ",
		field(assessment.FieldSeverity, colWidth),
		"  ",
		field(assessment.FieldAge, colWidth),
	)

	button := styles.ButtonDisabled
	switch {
	case !canAdvance:
	case f.ButtonFocused():
		button = styles.ButtonFocused
	default:
		button = styles.Button
	}
	submit := lipgloss.PlaceHorizontal(f.width, lipgloss.Right, button.Render("Analyze Symptoms"))

	return lipgloss.JoinVertical(lipgloss.Left,
		field(assessment.FieldSymptoms, f.width),
		"",
		row,
		"",
		field(assessment.FieldAdditionalInfo, f.width),
		"",
		submit,
	)
}

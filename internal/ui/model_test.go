package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcao2/healthai-assistant/internal/assessment"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "healthai-test")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	os.Setenv("HEALTHAI_CONFIG", filepath.Join(tmpDir, "config.yaml"))

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func newTestModel(opts ...Option) *Model {
	opts = append([]Option{
		WithAnalyzer(assessment.NewAnalyzer(assessment.WithDelay(time.Millisecond))),
		WithClipboard(func(string) error { return nil }),
	}, opts...)
	return NewModel(nil, opts...)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(keyRunes(string(r)))
	}
}

func pressTab(m *Model, n int) {
	for i := 0; i < n; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
}

func submit(m *Model) {
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
}

// runToResults drives a fresh model through intake and analysis
func runToResults(t *testing.T, m *Model, symptoms string) {
	t.Helper()

	typeText(m, symptoms)
	submit(m)
	if m.step != StepAnalyzing {
		t.Fatalf("expected StepAnalyzing after submit, got %v", m.step)
	}

	_, cmd := m.Update(keyRunes("s"))
	if cmd == nil {
		t.Fatal("expected a command after starting analysis")
	}
	m.Update(cmd())

	if m.step != StepResults {
		t.Fatalf("expected StepResults after analysis, got %v", m.step)
	}
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	state := m.State()
	if state.Step != StepIntake {
		t.Errorf("expected initial step Intake, got %v", state.Step)
	}
	if state.IsAnalyzing {
		t.Error("expected isAnalyzing false initially")
	}
	if len(m.Results()) != 0 {
		t.Errorf("expected no results, got %d", len(m.Results()))
	}
	if !m.Intake().IsZero() {
		t.Errorf("expected empty intake, got %+v", m.Intake())
	}
}

func TestAdvanceDisabledWithoutSymptoms(t *testing.T) {
	tests := []struct {
		name     string
		symptoms string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"single space", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			typeText(m, tt.symptoms)

			// Other fields filled in must not enable the button
			pressTab(m, 1)
			typeText(m, "3 days")
			pressTab(m, 1)
			typeText(m, "7")

			submit(m)
			if m.step != StepIntake {
				t.Errorf("expected to stay on Intake, got %v", m.step)
			}

			pressTab(m, 3) // age, additional info, button
			if !m.form.ButtonFocused() {
				t.Fatal("expected submit button to be focused")
			}
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if m.step != StepIntake {
				t.Errorf("expected enter on disabled button to do nothing, got %v", m.step)
			}
		})
	}
}

func TestWhitespaceOnlyMultilineSymptoms(t *testing.T) {
	m := newTestModel()
	typeText(m, " ")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // newline inside the text area
	typeText(m, "  ")

	if m.Intake().Symptoms == "" {
		t.Fatal("expected whitespace to be recorded")
	}
	submit(m)
	if m.step != StepIntake {
		t.Errorf("expected whitespace-only symptoms to keep Intake, got %v", m.step)
	}
}

func TestKeystrokeUpdatesOnlyFocusedField(t *testing.T) {
	m := newTestModel()

	typeText(m, "cough")
	if got := m.Intake(); got != (assessment.SymptomIntake{Symptoms: "cough"}) {
		t.Errorf("unexpected intake after typing symptoms: %+v", got)
	}

	pressTab(m, 1)
	typeText(m, "3 days")
	pressTab(m, 1)
	typeText(m, "11") // out of range is accepted silently
	pressTab(m, 1)
	typeText(m, "abc") // non-numeric too
	pressTab(m, 1)
	typeText(m, "none")

	want := assessment.SymptomIntake{
		Symptoms:       "cough",
		Duration:       "3 days",
		Severity:       "11",
		Age:            "abc",
		AdditionalInfo: "none",
	}
	if got := m.Intake(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	want.AdditionalInfo = "non"
	if got := m.Intake(); got != want {
		t.Errorf("expected backspace to edit only additional info, got %+v", got)
	}
}

func TestEnterOnSingleLineInputMovesFocus(t *testing.T) {
	m := newTestModel()
	pressTab(m, 1)

	field, ok := m.form.Focused()
	if !ok || field != assessment.FieldDuration {
		t.Fatalf("expected duration focused, got %v (ok=%v)", field, ok)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	field, _ = m.form.Focused()
	if field != assessment.FieldSeverity {
		t.Errorf("expected enter to move to severity, got %v", field)
	}
	if m.Intake().Duration != "" {
		t.Errorf("expected enter not to edit duration, got %q", m.Intake().Duration)
	}
}

func TestSubmitMovesToAnalyzingOnce(t *testing.T) {
	m := newTestModel()
	typeText(m, "headache")

	submit(m)
	if m.step != StepAnalyzing {
		t.Fatalf("expected StepAnalyzing, got %v", m.step)
	}
	if m.State().IsAnalyzing {
		t.Error("submitting must not start the analysis by itself")
	}

	submit(m)
	if m.step != StepAnalyzing {
		t.Errorf("expected to remain in StepAnalyzing, got %v", m.step)
	}
	if m.State().IsAnalyzing {
		t.Error("second submit must not start the analysis")
	}
}

func TestSubmitViaButton(t *testing.T) {
	m := newTestModel()
	typeText(m, "headache")
	pressTab(m, len(assessment.Fields))

	if !m.form.ButtonFocused() {
		t.Fatal("expected button focus")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != StepAnalyzing {
		t.Errorf("expected StepAnalyzing, got %v", m.step)
	}
}

func TestStartAnalysisIsGuarded(t *testing.T) {
	m := newTestModel()
	typeText(m, "fever")
	submit(m)

	_, first := m.Update(keyRunes("s"))
	if first == nil {
		t.Fatal("expected command from first start")
	}
	if !m.State().IsAnalyzing {
		t.Error("expected isAnalyzing true after start")
	}

	_, second := m.Update(keyRunes("s"))
	if second != nil {
		t.Error("expected no command while analysis is running")
	}
	_, third := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if third != nil {
		t.Error("expected enter to be ignored while analysis is running")
	}

	m.Update(first())
	if m.step != StepResults {
		t.Fatalf("expected StepResults, got %v", m.step)
	}
	if m.State().IsAnalyzing {
		t.Error("expected isAnalyzing false after completion")
	}
	if len(m.Results()) != 3 {
		t.Errorf("expected exactly 3 results, got %d", len(m.Results()))
	}
}

func TestResultsAreFixed(t *testing.T) {
	a := newTestModel()
	runToResults(t, a, "headache")

	b := newTestModel()
	runToResults(t, b, "broken leg")

	if !reflect.DeepEqual(a.Results(), b.Results()) {
		t.Errorf("results differ between inputs:\n%+v\n%+v", a.Results(), b.Results())
	}
	if !reflect.DeepEqual(a.Results(), assessment.FixedResults()) {
		t.Errorf("unexpected results: %+v", a.Results())
	}

	names := []string{"Common Cold", "Seasonal Allergies", "Viral Upper Respiratory Infection"}
	for i, name := range names {
		if a.Results()[i].Condition != name {
			t.Errorf("result %d: expected %s, got %s", i, name, a.Results()[i].Condition)
		}
	}
}

func TestStaleAndCancelledCompletionsIgnored(t *testing.T) {
	m := newTestModel()
	typeText(m, "rash")
	submit(m)

	m.Update(AnalysisFinishedMsg{TaskID: "not-a-task"})
	if m.step != StepAnalyzing || len(m.Results()) != 0 {
		t.Errorf("stale completion must be ignored, step=%v results=%d", m.step, len(m.Results()))
	}

	_, cmd := m.Update(keyRunes("s"))
	if cmd == nil {
		t.Fatal("expected start command")
	}
	m.Update(AnalysisFinishedMsg{TaskID: m.analyzer.ActiveID(), Err: assessment.ErrAnalysisCancelled})
	if m.step != StepAnalyzing {
		t.Errorf("cancelled completion must be ignored, got %v", m.step)
	}
	if !m.State().IsAnalyzing {
		t.Error("expected task to still be running")
	}
}

func TestNewAssessmentResetsEverything(t *testing.T) {
	initial := newTestModel()

	m := newTestModel()
	typeText(m, "sore throat")
	pressTab(m, 1)
	typeText(m, "2 days")
	pressTab(m, 2)
	typeText(m, "29")
	submit(m)
	_, cmd := m.Update(keyRunes("s"))
	m.Update(cmd())
	if m.step != StepResults {
		t.Fatalf("expected StepResults, got %v", m.step)
	}

	m.Update(keyRunes("n"))

	if m.State() != initial.State() {
		t.Errorf("expected state %+v after reset, got %+v", initial.State(), m.State())
	}
	if len(m.Results()) != 0 {
		t.Errorf("expected results cleared, got %d", len(m.Results()))
	}
	if m.Intake() != initial.Intake() {
		t.Errorf("expected empty intake after reset, got %+v", m.Intake())
	}
	for _, f := range assessment.Fields {
		if v := m.form.Value(f); v != "" {
			t.Errorf("expected input %s cleared, got %q", f, v)
		}
	}
	if field, ok := m.form.Focused(); !ok || field != assessment.FieldSymptoms {
		t.Errorf("expected focus back on symptoms, got %v (ok=%v)", field, ok)
	}
}

func TestNewAssessmentButton(t *testing.T) {
	m := newTestModel()
	runToResults(t, m, "dizzy")

	// New Assessment is focused by default
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != StepIntake {
		t.Errorf("expected StepIntake after pressing New Assessment, got %v", m.step)
	}
}

func TestFindDoctorIsPlaceholder(t *testing.T) {
	m := newTestModel()
	runToResults(t, m, "back pain")
	before := m.Results()

	m.Update(keyRunes("f"))
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.resultsFocus != buttonFindDoctor {
		t.Fatalf("expected Find a Doctor focused, got %d", m.resultsFocus)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("expected no command from Find a Doctor")
	}
	if m.step != StepResults {
		t.Errorf("expected to stay on results, got %v", m.step)
	}
	if !reflect.DeepEqual(before, m.Results()) {
		t.Error("results changed after Find a Doctor")
	}
}

func TestCopyReport(t *testing.T) {
	var copied string
	m := newTestModel(WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	runToResults(t, m, "itchy eyes")

	m.Update(keyRunes("c"))
	if !strings.Contains(copied, "Main symptoms: itchy eyes") {
		t.Errorf("expected report to include symptoms, got:\n%s", copied)
	}
	if !strings.Contains(copied, "Seasonal Allergies") {
		t.Error("expected report to include results")
	}
	if m.messageType != "success" {
		t.Errorf("expected success message, got %q: %s", m.messageType, m.statusMessage)
	}
}

func TestCopyReportFailure(t *testing.T) {
	m := newTestModel(WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))
	runToResults(t, m, "itchy eyes")

	m.Update(keyRunes("c"))
	if m.messageType != "error" {
		t.Errorf("expected error message, got %q", m.messageType)
	}
	if !strings.Contains(m.statusMessage, "no clipboard") {
		t.Errorf("expected status to mention cause, got %q", m.statusMessage)
	}
	if m.step != StepResults {
		t.Errorf("expected to stay on results, got %v", m.step)
	}
}

func TestQuitCancelsRunningAnalysis(t *testing.T) {
	m := newTestModel(WithAnalyzer(assessment.NewAnalyzer(assessment.WithDelay(time.Hour))))
	typeText(m, "cough")
	submit(m)

	_, start := m.Update(keyRunes("s"))
	if start == nil {
		t.Fatal("expected start command")
	}

	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.State().IsAnalyzing {
		t.Error("expected analysis cancelled on quit")
	}

	msg, ok := start().(AnalysisFinishedMsg)
	if !ok || !errors.Is(msg.Err, assessment.ErrAnalysisCancelled) {
		t.Errorf("expected cancelled completion, got %+v", msg)
	}
}

func TestTypingQOnIntakeDoesNotQuit(t *testing.T) {
	m := newTestModel()
	m.Update(keyRunes("q"))
	if m.step != StepIntake {
		t.Fatalf("expected to stay on Intake, got %v", m.step)
	}
	if m.Intake().Symptoms != "q" {
		t.Errorf("expected q typed into symptoms, got %q", m.Intake().Symptoms)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel()
	typeText(m, "cough")
	submit(m)

	m.Update(keyRunes("?"))
	if !m.showHelp {
		t.Error("expected help shown")
	}
	if !strings.Contains(m.View(), "copy report") {
		t.Error("expected full help to list key bindings")
	}
	m.Update(keyRunes("?"))
	if m.showHelp {
		t.Error("expected help hidden")
	}
}

func TestSettingsOpenAndClose(t *testing.T) {
	m := newTestModel()
	typeText(m, "cough")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.settings == nil {
		t.Fatal("expected settings form open")
	}
	if !strings.Contains(m.View(), "Settings") {
		t.Error("expected settings view")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.settings != nil {
		t.Error("expected esc to close settings")
	}
	if m.Intake().Symptoms != "cough" || m.step != StepIntake {
		t.Errorf("settings must not touch the wizard, got step=%v intake=%+v", m.step, m.Intake())
	}
}

func TestAnalysisCompletesWhileSettingsOpen(t *testing.T) {
	m := newTestModel()
	typeText(m, "cough")
	submit(m)
	_, cmd := m.Update(keyRunes("s"))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m.Update(cmd())

	if m.step != StepResults {
		t.Errorf("expected completion to be handled with settings open, got %v", m.step)
	}
}

func TestApplyTheme(t *testing.T) {
	m := newTestModel()
	m.applyTheme("dracula")
	if m.themeName != "dracula" {
		t.Errorf("expected dracula, got %s", m.themeName)
	}
	m.applyTheme("does-not-exist")
	if m.themeName != "dracula" {
		t.Errorf("unknown theme must be ignored, got %s", m.themeName)
	}
}

func TestViewRendering(t *testing.T) {
	for _, sized := range []bool{false, true} {
		t.Run(fmt.Sprintf("sized=%v", sized), func(t *testing.T) {
			m := newTestModel()
			if sized {
				m.Update(tea.WindowSizeMsg{Width: 120, Height: 80})
			}

			view := m.View()
			for _, want := range []string{"HealthAI Assistant", "Main symptoms", "Analyze Symptoms"} {
				if !strings.Contains(view, want) {
					t.Errorf("intake view missing %q", want)
				}
			}

			typeText(m, "cough")
			submit(m)
			view = m.View()
			if !strings.Contains(view, "Start Analysis") {
				t.Error("analyzing view missing Start Analysis button")
			}

			_, cmd := m.Update(keyRunes("s"))
			if !strings.Contains(m.View(), "Processing...") {
				t.Error("expected Processing... while running")
			}
			m.Update(cmd())

			view = m.View()
			for _, want := range []string{
				"Common Cold",
				"75%",
				"low priority",
				"Rest and stay hydrated",
				"Important Medical Disclaimer",
				"Find a Doctor",
				"New Assessment",
			} {
				if !strings.Contains(view, want) {
					t.Errorf("results view missing %q", want)
				}
			}
		})
	}
}

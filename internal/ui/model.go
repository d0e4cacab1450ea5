package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mcao2/healthai-assistant/internal/assessment"
	"github.com/mcao2/healthai-assistant/internal/config"
)

// Step is the wizard's position in the Intake -> Analyzing -> Results flow
type Step int

const (
	StepIntake Step = iota
	StepAnalyzing
	StepResults
)

func (s Step) String() string {
	switch s {
	case StepIntake:
		return "Intake"
	case StepAnalyzing:
		return "Analyzing"
	case StepResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// WizardState is a snapshot of where the wizard is
type WizardState struct {
	Step        Step
	IsAnalyzing bool
}

type Model struct {
	step   Step
	width  int
	height int
	styles Styles
	keys   KeyMap

	themeName string
	showHelp  bool

	intake   assessment.SymptomIntake
	results  []assessment.AssessmentResult
	analyzer *assessment.Analyzer

	form         *IntakeForm
	spinner      spinner.Model
	progress     progress.Model
	probability  progress.Model
	viewport     viewport.Model
	resultsFocus int

	settings *SettingsForm

	statusMessage string
	messageType   string

	cfg            *config.Config
	logger         *zap.Logger
	writeClipboard func(string) error
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithAnalyzer replaces the default analyzer
func WithAnalyzer(a *assessment.Analyzer) Option {
	return func(m *Model) {
		if a != nil {
			m.analyzer = a
		}
	}
}

// WithClipboard replaces the system clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.writeClipboard = write
		}
	}
}

// NewModel creates the wizard in its initial Intake step. A nil cfg is loaded
// from disk, falling back to defaults.
func NewModel(cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			loaded = &config.Config{Theme: "default"}
		}
		cfg = loaded
	}

	themeName := cfg.Theme
	if _, ok := Themes[themeName]; !ok {
		themeName = "default"
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(Themes[themeName].Primary))

	m := &Model{
		step:      StepIntake,
		styles:    NewStyles(Themes[themeName]),
		keys:      DefaultKeyMap(),
		themeName: themeName,
		form:      NewIntakeForm(),
		spinner:   s,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
		probability: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(24),
		),
		viewport:       viewport.New(0, 0),
		resultsFocus:   buttonNewAssessment,
		cfg:            cfg,
		logger:         zap.NewNop(),
		writeClipboard: clipboard.WriteAll,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.analyzer == nil {
		m.analyzer = assessment.NewAnalyzer(assessment.WithLogger(m.logger))
	}
	m.form.SetWidth(m.cardWidth() - 4)

	return m
}

// State returns the current wizard state
func (m *Model) State() WizardState {
	return WizardState{
		Step:        m.step,
		IsAnalyzing: m.analyzer.Running(),
	}
}

// Intake returns the data entered so far
func (m *Model) Intake() assessment.SymptomIntake {
	return m.intake
}

// Results returns the results currently on display
func (m *Model) Results() []assessment.AssessmentResult {
	return m.results
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.form.Init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(m.cardWidth() - 4)
		m.progress.Width = min(40, msg.Width-8)
		m.layoutResults()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AnalysisFinishedMsg:
		m.finishAnalysis(msg)
		return m, nil
	}

	if m.settings != nil {
		return m.updateSettings(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	// Cursor blink and other component messages
	if m.step == StepIntake {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	var body string
	switch m.step {
	case StepIntake:
		body = m.intakeView()
	case StepAnalyzing:
		body = m.analyzingView()
	case StepResults:
		body = m.resultsView()
	default:
		return "Unknown step"
	}

	parts := []string{m.headerView(), body}

	if m.settings != nil {
		parts = []string{m.headerView(), m.settingsView()}
	}

	if m.statusMessage != "" {
		style := m.styles.Help
		switch m.messageType {
		case "error":
			style = m.styles.Error
		case "success":
			style = m.styles.Success
		}
		parts = append(parts, style.Render(m.statusMessage))
	}

	if m.showHelp {
		parts = append(parts, m.renderFullHelp())
	} else {
		parts = append(parts, m.footerView())
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 {
		content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.ForceQuit):
		return m, m.quit()
	case keyMatches(msg, m.keys.Settings):
		return m, m.openSettings()
	}

	m.statusMessage = ""

	switch m.step {
	case StepIntake:
		return m.handleIntakeKeys(msg)
	case StepAnalyzing:
		return m.handleAnalyzingKeys(msg)
	case StepResults:
		return m.handleResultsKeys(msg)
	}
	return m, nil
}

// Text entry owns every printable key on the intake step, so q and ? are
// only bound on the later steps.
func (m *Model) handleCommonKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case keyMatches(msg, m.keys.Quit):
		return m.quit(), true
	case keyMatches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil, true
	}
	return nil, false
}

func (m *Model) quit() tea.Cmd {
	m.analyzer.Cancel()
	return tea.Quit
}

// AnalysisFinishedMsg is sent when a scheduled analysis task fires or is cancelled
type AnalysisFinishedMsg struct {
	TaskID string
	Err    error
}

func (m *Model) handleIntakeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Submit):
		m.submitIntake()
		return m, nil
	case keyMatches(msg, m.keys.NextField):
		return m, m.form.FocusNext()
	case keyMatches(msg, m.keys.PrevField):
		return m, m.form.FocusPrev()
	case keyMatches(msg, m.keys.Enter) && m.form.ButtonFocused():
		m.submitIntake()
		return m, nil
	case keyMatches(msg, m.keys.Enter) && m.form.SingleLineFocused():
		return m, m.form.FocusNext()
	}

	cmd := m.form.Update(msg)
	m.syncIntake()
	return m, cmd
}

// syncIntake copies the focused input's text into the intake, touching only
// the field that changed.
func (m *Model) syncIntake() {
	field, ok := m.form.Focused()
	if !ok {
		return
	}
	if v := m.form.Value(field); v != m.intake.Get(field) {
		m.intake = m.intake.With(field, v)
	}
}

// submitIntake advances to the analyzing step when symptoms were entered
func (m *Model) submitIntake() bool {
	if m.step != StepIntake || !m.intake.CanAdvance() {
		return false
	}
	m.form.Blur()
	m.setStep(StepAnalyzing)
	return true
}

func (m *Model) handleAnalyzingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleCommonKeys(msg); ok {
		return m, cmd
	}

	switch {
	case keyMatches(msg, m.keys.Start), keyMatches(msg, m.keys.Enter):
		return m, m.startAnalysis()
	}
	return m, nil
}

// startAnalysis schedules the simulated analysis. It is a no-op while one is
// already running.
func (m *Model) startAnalysis() tea.Cmd {
	if m.step != StepAnalyzing {
		return nil
	}

	task, err := m.analyzer.Start()
	if err != nil {
		return nil
	}

	return func() tea.Msg {
		return AnalysisFinishedMsg{TaskID: task.ID, Err: task.Wait()}
	}
}

func (m *Model) finishAnalysis(msg AnalysisFinishedMsg) {
	if msg.Err != nil {
		m.logger.Debug("analysis ended without results", zap.String("task_id", msg.TaskID), zap.Error(msg.Err))
		return
	}

	results, err := m.analyzer.Complete(msg.TaskID)
	if err != nil {
		return
	}

	m.results = results
	m.resultsFocus = buttonNewAssessment
	m.setStep(StepResults)
	m.layoutResults()
	m.viewport.GotoTop()
}

func (m *Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleCommonKeys(msg); ok {
		return m, cmd
	}

	switch {
	case keyMatches(msg, m.keys.Left), keyMatches(msg, m.keys.PrevField):
		m.resultsFocus = buttonFindDoctor
		return m, nil
	case keyMatches(msg, m.keys.Right), keyMatches(msg, m.keys.NextField):
		m.resultsFocus = buttonNewAssessment
		return m, nil
	case keyMatches(msg, m.keys.Enter):
		if m.resultsFocus == buttonFindDoctor {
			return m, m.findDoctor()
		}
		return m, m.reset()
	case keyMatches(msg, m.keys.FindDoctor):
		return m, m.findDoctor()
	case keyMatches(msg, m.keys.Reset):
		return m, m.reset()
	case keyMatches(msg, m.keys.Copy):
		m.copyReport()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// findDoctor is a placeholder action; it does not change any state.
func (m *Model) findDoctor() tea.Cmd {
	return nil
}

// reset returns the wizard to an empty Intake step
func (m *Model) reset() tea.Cmd {
	m.analyzer.Cancel()
	m.results = nil
	m.intake = assessment.SymptomIntake{}
	m.resultsFocus = buttonNewAssessment
	m.viewport.SetContent("")
	m.setStep(StepIntake)
	return m.form.Reset()
}

func (m *Model) setStep(step Step) {
	if m.step != step {
		m.logger.Info("wizard step changed",
			zap.Stringer("from", m.step),
			zap.Stringer("to", step),
		)
	}
	m.step = step
}

func (m *Model) copyReport() {
	report := assessment.FormatReport(m.intake, m.results)
	if err := m.writeClipboard(report); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.statusMessage = fmt.Sprintf("Copy failed: %v", err)
		m.messageType = "error"
		return
	}
	m.statusMessage = "Report copied to clipboard"
	m.messageType = "success"
}

func (m *Model) openSettings() tea.Cmd {
	m.settings = NewSettingsForm(m.themeName)
	return m.settings.GetForm().Init()
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMatches(k, m.keys.ForceQuit):
			return m, m.quit()
		case keyMatches(k, m.keys.Back):
			m.settings = nil
			return m, nil
		}
	}

	form, cmd := m.settings.GetForm().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.settings.form = f
	}

	switch m.settings.GetForm().State {
	case huh.StateCompleted:
		if m.settings.ApplyTo(m.cfg) {
			m.applyTheme(m.cfg.Theme)
			if err := m.cfg.Save(); err != nil {
				m.logger.Warn("failed to save config", zap.Error(err))
				m.statusMessage = fmt.Sprintf("Theme applied but not saved: %v", err)
				m.messageType = "error"
			}
		}
		m.settings = nil
		return m, nil
	case huh.StateAborted:
		m.settings = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) applyTheme(name string) {
	theme, ok := Themes[name]
	if !ok {
		return
	}
	m.themeName = name
	m.styles = NewStyles(theme)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary))
	m.layoutResults()
}

// layoutResults sizes the results viewport to the space left between the
// header and the disclaimer card.
func (m *Model) layoutResults() {
	if m.step != StepResults || m.height == 0 {
		return
	}
	m.viewport.Width = m.cardWidth() + 4
	used := lipgloss.Height(m.headerView()) + lipgloss.Height(m.disclaimerView()) + lipgloss.Height(m.footerView()) + 1
	h := m.height - used
	if h < 5 {
		h = 5
	}
	m.viewport.Height = h
	m.viewport.SetContent(m.resultsContent())
}

func (m *Model) headerView() string {
	title := m.styles.Title.Render("✚ HealthAI Assistant")
	tagline := m.styles.Subtitle.Render("AI-powered preliminary health assessment. Get instant insights about your symptoms.")

	labels := []string{"♥ Symptoms", "◆ Analysis", "◉ Results"}
	pills := make([]string, len(labels))
	for i, label := range labels {
		style := m.styles.StepInactive
		if int(m.step) >= i {
			style = m.styles.StepActive
		}
		pills[i] = style.Render(label)
	}
	steps := strings.Join(pills, "  ")

	bar := m.progress.ViewAs(float64(m.step+1) / 3)

	return lipgloss.JoinVertical(lipgloss.Center, "", title, tagline, "", steps, bar, "")
}

func (m *Model) intakeView() string {
	width := m.cardWidth()
	head := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("♥ Tell us about your symptoms"),
		m.styles.Muted.Render(wrapText("Please provide detailed information about what you're experiencing. The more specific you are, the better our AI can assist you.", width-4)),
		"",
	)
	return m.styles.Card.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, head, m.form.View(m.styles, m.intake.CanAdvance())),
	)
}

func (m *Model) analyzingView() string {
	width := m.cardWidth()
	running := m.analyzer.Running()

	var activity string
	if running {
		activity = fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Normal.Render("Analyzing symptoms..."))
	} else {
		activity = lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Normal.Render("Analyzing symptoms..."),
			m.progress.ViewAs(1),
		)
	}

	button := m.styles.ButtonFocused.Render("Start Analysis")
	if running {
		button = m.styles.ButtonDisabled.Render("Processing...")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		m.styles.Highlight.Render("◆"),
		"",
		activity,
		"",
		button,
		"",
	)

	return m.styles.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("◆ AI Analysis in Progress"),
		m.styles.Muted.Render(wrapText("Our advanced AI is analyzing your symptoms and comparing them with medical databases...", width-4)),
		lipgloss.PlaceHorizontal(width-4, lipgloss.Center, body),
	))
}

func (m *Model) resultsView() string {
	var list string
	if m.height > 0 {
		list = m.viewport.View()
	} else {
		list = m.resultsContent()
	}
	return lipgloss.JoinVertical(lipgloss.Center, list, m.disclaimerView())
}

func (m *Model) settingsView() string {
	return m.styles.Card.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Settings"),
		"",
		m.settings.GetForm().View(),
	))
}

// Help rendering

type helpEntry struct {
	key  string
	desc string
}

func (m *Model) renderHelpLine(entries []helpEntry) string {
	var parts []string
	sep := m.styles.HelpSep.Render(" · ")
	for _, e := range entries {
		parts = append(parts, m.styles.HelpKey.Render(e.key)+" "+m.styles.HelpDesc.Render(e.desc))
	}
	return strings.Join(parts, sep)
}

func (m *Model) footerView() string {
	if m.settings != nil {
		return m.renderHelpLine([]helpEntry{{"↑/↓", "choose"}, {"enter", "apply"}, {"esc", "close"}})
	}

	switch m.step {
	case StepIntake:
		return m.renderHelpLine([]helpEntry{
			{"tab", "next field"},
			{"shift+tab", "previous"},
			{"ctrl+s", "analyze"},
			{"ctrl+t", "theme"},
			{"ctrl+c", "quit"},
		})
	case StepAnalyzing:
		return m.renderHelpLine([]helpEntry{
			{"s/enter", "start analysis"},
			{"?", "help"},
			{"q", "quit"},
		})
	default:
		return m.renderHelpLine([]helpEntry{
			{"↑/↓", "scroll"},
			{"←/→", "buttons"},
			{"n", "new assessment"},
			{"f", "find a doctor"},
			{"c", "copy"},
			{"?", "help"},
			{"q", "quit"},
		})
	}
}

func (m *Model) renderFullHelp() string {
	var lines []string
	lines = append(lines, m.styles.HelpKey.Render("Keys"))
	for _, b := range m.keys.Keys() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %s  %s",
			m.styles.HelpKey.Render(fmt.Sprintf("%-12s", h.Key)),
			m.styles.HelpDesc.Render(h.Desc),
		))
	}
	return strings.Join(lines, "\n")
}

func keyMatches(msg tea.KeyMsg, target key.Binding) bool {
	for _, k := range target.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}

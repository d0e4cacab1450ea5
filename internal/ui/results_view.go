package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mcao2/healthai-assistant/internal/assessment"
)

// Buttons on the disclaimer card
const (
	buttonFindDoctor = iota
	buttonNewAssessment
)

// cardWidth is the width of result and disclaimer cards, padding included
func (m *Model) cardWidth() int {
	w := 86
	if m.width > 0 && m.width-8 < w {
		w = m.width - 8
	}
	if w < 30 {
		w = 30
	}
	return w
}

// resultsContent renders the scrollable part of the results step
func (m *Model) resultsContent() string {
	width := m.cardWidth()

	intro := m.styles.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("◉ Preliminary Assessment Results"),
		m.styles.Muted.Render(wrapText("Based on your symptoms, here are potential conditions ranked by likelihood. This is not a diagnosis.", width-4)),
	))

	parts := []string{intro}
	for _, r := range m.results {
		parts = append(parts, m.resultCard(r, width))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) resultCard(r assessment.AssessmentResult, width int) string {
	variant := SeverityVariant(string(r.Severity))
	accent := m.styles.severityAccent(variant)

	// Left: icon, condition, badge and match text. Right: big figure and bar.
	inner := width - 4
	barWidth := 24
	leftWidth := inner - barWidth - 2
	if leftWidth < 10 {
		leftWidth = 10
	}

	name := accent.Render(SeverityIcon(string(r.Severity))) + " " +
		m.styles.Label.Render(Truncate(r.Condition, leftWidth-2))
	badge := m.styles.Badge(variant).Render(fmt.Sprintf("%s priority", r.Severity))
	match := m.styles.Muted.Render(fmt.Sprintf("%d%% match", r.Probability))
	left := lipgloss.NewStyle().Width(leftWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, name, badge+"  "+match),
	)

	m.probability.Width = barWidth
	right := lipgloss.JoinVertical(lipgloss.Right,
		m.styles.Highlight.Render(fmt.Sprintf("%d%%", r.Probability)),
		m.probability.ViewAs(float64(r.Probability)/100),
	)

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		"",
		m.styles.Label.Render("Recommendations:"),
	}
	for _, rec := range r.Recommendations {
		lines = append(lines, m.styles.Success.Render("  ✓ ")+m.styles.Muted.Render(wrapText(rec, inner-4)))
	}

	return m.styles.Card.Width(width).Render(strings.Join(lines, "\n"))
}

// disclaimerView renders the fixed disclaimer card with its two buttons
func (m *Model) disclaimerView() string {
	width := m.cardWidth()

	findDoctor := m.styles.Button
	newAssessment := m.styles.Button
	if m.resultsFocus == buttonFindDoctor {
		findDoctor = m.styles.ButtonFocused
	} else {
		newAssessment = m.styles.ButtonFocused
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		findDoctor.Render("Find a Doctor"),
		newAssessment.Render("New Assessment"),
	)

	return m.styles.WarnCard.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.severityAccent(BadgeWarning).Render("⚠ ")+m.styles.Label.Render("Important Medical Disclaimer"),
		m.styles.Muted.Render(wrapText(assessment.Disclaimer, width-4)),
		"",
		buttons,
	))
}

// Truncate shortens s to maxLen display cells
func Truncate(s string, maxLen int) string {
	if runewidth.StringWidth(s) > maxLen {
		return runewidth.Truncate(s, maxLen, "…")
	}
	return s
}

// wrapText word-wraps s to width cells
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

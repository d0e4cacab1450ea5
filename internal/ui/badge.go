package ui

import "github.com/charmbracelet/lipgloss"

// BadgeVariant is the visual class of a severity badge
type BadgeVariant int

const (
	BadgeNeutral BadgeVariant = iota
	BadgeSuccess
	BadgeWarning
	BadgeDanger
)

func (v BadgeVariant) String() string {
	switch v {
	case BadgeSuccess:
		return "success"
	case BadgeWarning:
		return "warning"
	case BadgeDanger:
		return "danger"
	default:
		return "neutral"
	}
}

// SeverityVariant maps a severity to its badge class. Values outside
// low/moderate/high fall back to neutral.
func SeverityVariant(severity string) BadgeVariant {
	switch severity {
	case "low":
		return BadgeSuccess
	case "moderate":
		return BadgeWarning
	case "high":
		return BadgeDanger
	default:
		return BadgeNeutral
	}
}

// SeverityIcon returns the glyph shown next to a condition
func SeverityIcon(severity string) string {
	switch SeverityVariant(severity) {
	case BadgeSuccess:
		return "✓"
	case BadgeWarning:
		return "!"
	case BadgeDanger:
		return "⚠"
	default:
		return "•"
	}
}

// Badge returns the style for a badge variant
func (s Styles) Badge(v BadgeVariant) lipgloss.Style {
	switch v {
	case BadgeSuccess:
		return s.BadgeSuccess
	case BadgeWarning:
		return s.BadgeWarning
	case BadgeDanger:
		return s.BadgeDanger
	default:
		return s.BadgeNeutral
	}
}

// severityAccent is the foreground color matching a badge variant
func (s Styles) severityAccent(v BadgeVariant) lipgloss.Style {
	switch v {
	case BadgeSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.Success))
	case BadgeWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.Warning))
	case BadgeDanger:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.Danger))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.Primary))
	}
}

package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette
type Theme struct {
	Primary    string
	Secondary  string
	Subtle     string
	Background string
	Text       string
	Muted      string
	Success    string
	Warning    string
	Danger     string
}

// Themes holds the available palettes keyed by name
var Themes = map[string]Theme{
	"default": {
		Primary:    "#7D56F4",
		Secondary:  "#3C3C3C",
		Subtle:     "#4A4A4A",
		Background: "#FFFFFF",
		Text:       "#FAFAFA",
		Muted:      "#737373",
		Success:    "#04B575",
		Warning:    "#F5A524",
		Danger:     "#FF4D4F",
	},
	"catppuccin": {
		Primary:    "#CBA6F7",
		Secondary:  "#313244",
		Subtle:     "#45475A",
		Background: "#1E1E2E",
		Text:       "#CDD6F4",
		Muted:      "#7F849C",
		Success:    "#A6E3A1",
		Warning:    "#F9E2AF",
		Danger:     "#F38BA8",
	},
	"dracula": {
		Primary:    "#BD93F9",
		Secondary:  "#44475A",
		Subtle:     "#6272A4",
		Background: "#282A36",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Success:    "#50FA7B",
		Warning:    "#F1FA8C",
		Danger:     "#FF5555",
	},
	"nord": {
		Primary:    "#88C0D0",
		Secondary:  "#3B4252",
		Subtle:     "#4C566A",
		Background: "#2E3440",
		Text:       "#ECEFF4",
		Muted:      "#7B88A1",
		Success:    "#A3BE8C",
		Warning:    "#EBCB8B",
		Danger:     "#BF616A",
	},
	"gruvbox": {
		Primary:    "#FE8019",
		Secondary:  "#3C3836",
		Subtle:     "#504945",
		Background: "#282828",
		Text:       "#EBDBB2",
		Muted:      "#928374",
		Success:    "#B8BB26",
		Warning:    "#FABD2F",
		Danger:     "#FB4934",
	},
}

// GetThemeNames returns theme names with "default" first, the rest sorted
func GetThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		if name != "default" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"default"}, names...)
}

// Styles holds all the UI styles
type Styles struct {
	theme Theme

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Help      lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style

	Card       lipgloss.Style
	WarnCard   lipgloss.Style
	Label      lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	StepActive   lipgloss.Style
	StepInactive lipgloss.Style

	BadgeSuccess lipgloss.Style
	BadgeWarning lipgloss.Style
	BadgeDanger  lipgloss.Style
	BadgeNeutral lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
}

// NewStyles builds the style set for a theme
func NewStyles(theme Theme) Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	button := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)

	return Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)).
			Italic(true),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Danger)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Padding(0, 2),

		WarnCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Warning)).
			Padding(0, 2),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Text)),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)),

		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Primary)),

		Button: button.
			Foreground(lipgloss.Color(theme.Text)).
			Background(lipgloss.Color(theme.Secondary)),

		ButtonFocused: button.
			Bold(true).
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Primary)),

		ButtonDisabled: button.
			Foreground(lipgloss.Color(theme.Muted)).
			Background(lipgloss.Color(theme.Secondary)).
			Faint(true),

		StepActive: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Primary)),

		StepInactive: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color(theme.Text)).
			Background(lipgloss.Color(theme.Secondary)),

		BadgeSuccess: badge.
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Success)),

		BadgeWarning: badge.
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Warning)),

		BadgeDanger: badge.
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Danger)),

		BadgeNeutral: badge.
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Primary)),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),

		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),

		HelpSep: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
	}
}

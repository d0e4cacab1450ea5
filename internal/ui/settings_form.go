package ui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mcao2/healthai-assistant/internal/config"
)

// SettingsForm lets the user pick a color theme using Huh
type SettingsForm struct {
	form   *huh.Form
	result *SettingsResult
}

// SettingsResult contains the chosen values
type SettingsResult struct {
	Theme string
}

// NewSettingsForm creates a settings form preselecting the current theme
func NewSettingsForm(currentTheme string) *SettingsForm {
	result := &SettingsResult{Theme: currentTheme}

	var options []huh.Option[string]
	for _, name := range GetThemeNames() {
		options = append(options, huh.NewOption(strings.ToUpper(name[:1])+name[1:], name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Colors used across the assistant").
				Options(options...).
				Value(&result.Theme),
		),
	).WithShowHelp(false)

	return &SettingsForm{
		form:   form,
		result: result,
	}
}

// GetForm returns the underlying Huh form for Bubble Tea integration
func (sf *SettingsForm) GetForm() *huh.Form {
	return sf.form
}

// ApplyTo writes the chosen theme into cfg. It reports whether anything changed.
func (sf *SettingsForm) ApplyTo(cfg *config.Config) bool {
	if sf.result == nil || cfg == nil {
		return false
	}
	if _, ok := Themes[sf.result.Theme]; !ok {
		return false
	}
	if cfg.Theme == sf.result.Theme {
		return false
	}
	cfg.Theme = sf.result.Theme
	return true
}

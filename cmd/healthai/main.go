package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcao2/healthai-assistant/internal/assessment"
	"github.com/mcao2/healthai-assistant/internal/config"
	"github.com/mcao2/healthai-assistant/internal/logging"
	"github.com/mcao2/healthai-assistant/internal/ui"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

type rootOptions struct {
	configPath string
	theme      string
	logFile    string
	logLevel   string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "healthai",
		Short: "Preliminary symptom assessment in your terminal",
		Long: `healthai walks through a short symptom questionnaire and shows a
preliminary assessment. It is not a substitute for professional medical advice.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssistant(opts)
		},
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to config file")
	rootCmd.Flags().StringVar(&opts.theme, "theme", "", "Color theme (default, catppuccin, dracula, nord, gruvbox)")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write debug logs to this file")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitConfigCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func runAssistant(opts *rootOptions) error {
	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return err
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting assistant", zap.String("version", version), zap.String("config", cfg.Path()))

	m := ui.NewModel(cfg,
		ui.WithLogger(logger),
		ui.WithAnalyzer(assessment.NewAnalyzer(assessment.WithLogger(logger))),
	)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer (clears terminal)
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func newInitConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write an example config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveExampleConfig(opts.configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", opts.configPath)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "healthai version %s\n", version)
		},
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	File     string `yaml:"file"`     // empty disables logging
	Encoding string `yaml:"encoding"` // "json" or "console"
}

// Config holds application configuration
type Config struct {
	Theme string    `yaml:"theme"`
	Log   LogConfig `yaml:"log"`

	path string
}

// Load loads configuration from the default config file and environment variables.
// Environment variables take precedence over config file values
func Load() (*Config, error) {
	return LoadFrom(getConfigPath())
}

// LoadFrom loads configuration from the given file path. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		Theme: "default",
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		path: path,
	}

	if err := cfg.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg.loadFromEnv()

	return cfg, nil
}

// Path returns the file this config was loaded from and is saved to
func (c *Config) Path() string {
	return c.path
}

func (c *Config) loadFromFile() error {
	if c.path == "" {
		return os.ErrNotExist
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if theme := os.Getenv("HEALTHAI_THEME"); theme != "" {
		c.Theme = theme
	}
	if level := os.Getenv("HEALTHAI_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if file := os.Getenv("HEALTHAI_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}

// getConfigPath returns the path to the config file
// Priority: $HEALTHAI_CONFIG > ~/.config/healthai-assistant/config.yaml
func getConfigPath() string {
	if configPath := os.Getenv("HEALTHAI_CONFIG"); configPath != "" {
		return configPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "healthai-assistant", "config.yaml")
}

// DefaultPath returns the config file path used when none is given explicitly
func DefaultPath() string {
	return getConfigPath()
}

func ensureDir(path string) error {
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// SaveExampleConfig writes an example config file to path unless one already exists
func SaveExampleConfig(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Already exists, don't overwrite
	}

	example := `# HealthAI Assistant Configuration

# Optional: Color theme (default, catppuccin, dracula, nord, gruvbox)
theme: "default"

# Optional: Debug logging. Logs never go to the terminal; set a file to enable.
# HEALTHAI_LOG_LEVEL and HEALTHAI_LOG_FILE override these values.
log:
  level: "info"       # debug, info, warn, error
  # file: "/tmp/healthai.log"
  encoding: "json"    # json or console
`

	return os.WriteFile(path, []byte(example), 0600)
}

// Save persists the fields the UI manages, preserving everything else in the file.
func (c *Config) Save() error {
	if err := ensureDir(c.path); err != nil {
		return err
	}

	existing := &Config{}
	if data, err := os.ReadFile(c.path); err == nil {
		if err := yaml.Unmarshal(data, existing); err != nil {
			return fmt.Errorf("failed to parse existing config: %w", err)
		}
	}

	// Only the theme is changed from inside the app
	existing.Theme = c.Theme

	data, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# HealthAI Assistant Configuration\n\n")
	return os.WriteFile(c.path, append(header, data...), 0600)
}

// Package config handles configuration loading and validation for toaster.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/internal/core/toast"
)

// MinToastWidth is the narrowest toast the TUI can lay out.
const MinToastWidth = 20

// Config holds the application configuration.
type Config struct {
	Toast ToastConfig `yaml:"toast"`
	TUI   TUIConfig   `yaml:"tui"`
}

// ToastConfig tunes the notification stack.
type ToastConfig struct {
	MaxStack        int           `yaml:"max_stack"`
	DefaultDuration time.Duration `yaml:"default_duration"`
	Grace           time.Duration `yaml:"grace"`
	Enter           time.Duration `yaml:"enter"`
	Exit            time.Duration `yaml:"exit"`
}

// TUIConfig holds rendering options for the terminal UI.
type TUIConfig struct {
	Theme    string `yaml:"theme"`
	Width    int    `yaml:"width"`
	Markdown bool   `yaml:"markdown"` // render message bodies with glamour
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Toast: ToastConfig{
			MaxStack:        toast.MaxStack,
			DefaultDuration: notify.DefaultDuration,
			Grace:           toast.GraceDelay,
			Enter:           toast.EnterDelay,
			Exit:            toast.ExitDelay,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
			Width: 50,
		},
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Parse(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Check(configPath); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse reads configuration from the given path and applies defaults without
// validating the result. A missing path, or one that names a directory,
// yields defaults; Check reports the directory.
func Parse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	return &cfg, nil
}

// Check validates the config file at configPath and then the configuration,
// stopping at the first problem. ValidateDeep collects all of them.
func (c *Config) Check(configPath string) error {
	if err := validateConfigFile(configPath); err != nil {
		return err
	}
	return c.Validate()
}

// applyDefaults sets default values for any unset configuration options.
// Zero delays are meaningful (synchronous transitions) and are kept.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Toast.MaxStack == 0 {
		c.Toast.MaxStack = defaults.Toast.MaxStack
	}
	if c.Toast.DefaultDuration == 0 {
		c.Toast.DefaultDuration = defaults.Toast.DefaultDuration
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Width == 0 {
		c.TUI.Width = defaults.TUI.Width
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Toast.MaxStack < 1 {
		return fmt.Errorf("toast.max_stack must be at least 1")
	}

	if c.Toast.DefaultDuration < 0 {
		return fmt.Errorf("toast.default_duration cannot be negative")
	}

	for _, d := range c.delays() {
		if d.value < 0 {
			return fmt.Errorf("%s cannot be negative", d.field)
		}
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme", c.TUI.Theme)
	}

	if c.TUI.Width < MinToastWidth {
		return fmt.Errorf("tui.width must be at least %d", MinToastWidth)
	}

	return nil
}

type namedDelay struct {
	field string
	value time.Duration
}

func (c *Config) delays() []namedDelay {
	return []namedDelay{
		{"toast.grace", c.Toast.Grace},
		{"toast.enter", c.Toast.Enter},
		{"toast.exit", c.Toast.Exit},
	}
}

// ToastSettings converts the toast section into the stack configuration.
func (c *Config) ToastSettings() toast.Config {
	return toast.Config{
		MaxStack:        c.Toast.MaxStack,
		DefaultDuration: c.Toast.DefaultDuration,
		Grace:           c.Toast.Grace,
		Enter:           c.Toast.Enter,
		Exit:            c.Toast.Exit,
	}
}

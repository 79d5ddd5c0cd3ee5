package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/toaster/internal/core/config"
	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/styles"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// ProfilerPort enables the pprof and stack debug endpoints when > 0
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// ConfigErr is set when Config parsed but failed validation. Only
	// config validate runs with it; other commands refuse to start.
	ConfigErr error

	// Bus carries notifications raised outside the command that displays them
	Bus *notify.Bus
}

// LoadConfig parses the file at ConfigPath into Config and applies its
// theme. Files that cannot be read or parsed fail; invalid values are kept
// in ConfigErr so config validate can report every problem.
func (f *Flags) LoadConfig() error {
	cfg, err := config.Parse(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	f.Config = cfg
	f.ConfigErr = cfg.Check(f.ConfigPath)

	if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
		styles.SetTheme(palette)
	}
	return nil
}

func (f *Flags) requireConfig() error {
	if f.ConfigErr != nil {
		return fmt.Errorf("invalid config: %w (run 'toaster config validate' for details)", f.ConfigErr)
	}
	return nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toaster", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/toaster/toaster.log
// On Linux: $XDG_STATE_HOME/toaster/toaster.log (defaults to ~/.local/state/toaster/toaster.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "toaster", "toaster.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "toaster", "toaster.log")
	}

	return filepath.Join(home, ".local", "state", "toaster", "toaster.log")
}

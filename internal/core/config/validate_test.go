package config

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_collects_every_field(t *testing.T) {
	cfg := validConfig(t)
	cfg.Toast.MaxStack = 0
	cfg.Toast.Exit = -time.Millisecond
	cfg.TUI.Theme = "neon"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)

	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{"toast.max_stack", "toast.exit", "tui.theme"}, fields)
}

func TestValidateDeep_UnknownThemeListsAvailable(t *testing.T) {
	cfg := validConfig(t)
	cfg.TUI.Theme = "neon"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Err.Error(), "tokyo-night")
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep("/nonexistent/toaster/config.yaml"))
}

func TestWarnings(t *testing.T) {
	t.Run("defaults have no warnings", func(t *testing.T) {
		assert.Empty(t, validConfig(t).Warnings())
	})

	t.Run("grace longer than duration", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Toast.Grace = 10 * time.Second

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, "grace", warnings[0].Item)
	})

	t.Run("oversized stack", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Toast.MaxStack = 50

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, "max_stack", warnings[0].Item)
	})
}

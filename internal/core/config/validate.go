package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs field-level validation of the configuration and the
// config file itself, collecting every problem instead of stopping at the
// first. The configPath argument specifies the config file location to
// validate (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateToast(),
		c.validateTUI(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Toast.Grace > c.Toast.DefaultDuration {
		warnings = append(warnings, ValidationWarning{
			Category: "Toast",
			Item:     "grace",
			Message:  fmt.Sprintf("grace (%s) exceeds default_duration (%s); toasts will linger well past their duration", c.Toast.Grace, c.Toast.DefaultDuration),
		})
	}

	if c.Toast.MaxStack > 20 {
		warnings = append(warnings, ValidationWarning{
			Category: "Toast",
			Item:     "max_stack",
			Message:  fmt.Sprintf("max_stack of %d will not fit on most terminals", c.Toast.MaxStack),
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateToast() error {
	var errs criterio.FieldErrorsBuilder

	if err := validate.AtLeast(1)(c.Toast.MaxStack); err != nil {
		errs = errs.Append("toast.max_stack", err)
	}
	if err := validate.NonNegative(c.Toast.DefaultDuration); err != nil {
		errs = errs.Append("toast.default_duration", err)
	}
	for _, d := range c.delays() {
		if err := validate.NonNegative(d.value); err != nil {
			errs = errs.Append(d.field, err)
		}
	}

	return errs.ToError()
}

func (c *Config) validateTUI() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, validate.OneOf("theme", styles.ThemeNames()...)),
		criterio.Run("tui.width", c.TUI.Width, validate.AtLeast(MinToastWidth)),
	)
}

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/toaster/internal/core/config"
	"github.com/hay-kot/toaster/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "toaster config validate [options]",
				Description: "Validates the configuration file, checking stack limits, delays, and theme names.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// fieldProblem is a validation error in output form.
type fieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	problems, err := collectProblems(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}
	warnings := cmd.flags.Config.Warnings()

	if cmd.format == "json" {
		if err := cmd.outputJSON(c, problems, warnings); err != nil {
			return err
		}
		if len(problems) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	return cmd.outputText(printer.Ctx(ctx), problems, warnings)
}

// collectProblems flattens criterio field errors. Any other error is returned
// as is.
func collectProblems(err error) ([]fieldProblem, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	problems := make([]fieldProblem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fieldProblem{Field: fe.Field, Message: fe.Err.Error()})
	}
	return problems, nil
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, problems []fieldProblem, warnings []config.ValidationWarning) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Config   string                     `json:"config"`
		Errors   []fieldProblem             `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    len(problems) == 0,
		Config:   cmd.flags.ConfigPath,
		Errors:   problems,
		Warnings: warnings,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, problems []fieldProblem, warnings []config.ValidationWarning) error {
	for _, warn := range warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, prob := range problems {
		p.Errorf("%s: %s", prob.Field, prob.Message)
	}

	p.Printf("")
	if len(problems) == 0 {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(problems))
	return cli.Exit("", 1)
}

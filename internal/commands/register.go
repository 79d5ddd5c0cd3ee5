package commands

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/toaster/internal/printer"
)

// RegisterAll adds every toaster subcommand to app and the TUI flags to its
// root flag set. The returned TuiCmd backs the default action.
func RegisterAll(app *cli.Command, flags *Flags) *TuiCmd {
	tuiCmd := NewTuiCmd(flags)

	app = tuiCmd.Register(app)
	app = NewFeedCmd(flags).Register(app)
	app = NewComposeCmd(flags).Register(app)
	NewConfigValidateCmd(flags).Register(app)

	app.Flags = append(app.Flags, tuiCmd.Flags()...)
	return tuiCmd
}

// LoadBefore returns the root Before step that loads the config into flags
// and installs a printer writing to status.
func LoadBefore(flags *Flags, status io.Writer) cli.BeforeFunc {
	return func(ctx context.Context, _ *cli.Command) (context.Context, error) {
		if err := flags.LoadConfig(); err != nil {
			return ctx, err
		}
		return printer.NewContext(ctx, printer.New(status)), nil
	}
}

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/internal/core/validate"
)

type ComposeCmd struct {
	flags *Flags

	kind        string
	title       string
	message     string
	duration    string
	notClosable bool
}

// NewComposeCmd creates a new compose command.
func NewComposeCmd(flags *Flags) *ComposeCmd {
	return &ComposeCmd{flags: flags}
}

// Register adds the compose command to the application.
func (cmd *ComposeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "compose",
		Usage:     "Build a feed line interactively",
		UsageText: "toaster compose [options] [kind] >> events.jsonl",
		Description: `Prompts for a notification and prints it as one feed line on stdout.
Passing --message skips the form.`,
		ShellComplete: KindCompleter(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "notification kind (success, info, warning, error)",
				Destination: &cmd.kind,
			},
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "notification title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "notification message",
				Destination: &cmd.message,
			},
			&cli.StringFlag{
				Name:        "duration",
				Aliases:     []string{"d"},
				Usage:       "time on screen, 0 for sticky (defaults to toast.default_duration)",
				Destination: &cmd.duration,
			},
			&cli.BoolFlag{
				Name:        "not-closable",
				Usage:       "hide the close button",
				Destination: &cmd.notClosable,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ComposeCmd) run(_ context.Context, c *cli.Command) error {
	if err := cmd.flags.requireConfig(); err != nil {
		return err
	}

	if cmd.kind == "" && c.Args().Present() {
		cmd.kind = c.Args().First()
	}

	if cmd.message == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	line, err := cmd.line()
	if err != nil {
		return err
	}

	return json.NewEncoder(c.Root().Writer).Encode(line)
}

func (cmd *ComposeCmd) runForm() error {
	kind, _ := notify.ParseKind(cmd.kind)
	cmd.kind = string(kind)
	if cmd.duration == "" {
		cmd.duration = cmd.flags.Config.Toast.DefaultDuration.String()
	}
	closable := !cmd.notClosable

	options := make([]huh.Option[string], 0, len(notify.Kinds))
	for _, k := range notify.Kinds {
		options = append(options, huh.NewOption(string(k), string(k)))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(options...).
				Value(&cmd.kind),
			huh.NewInput().
				Title("Title").
				Description("Optional heading").
				Value(&cmd.title),
			huh.NewText().
				Title("Message").
				Validate(validate.Message).
				Value(&cmd.message),
			huh.NewInput().
				Title("Duration").
				Description("How long the toast stays up, 0 keeps it until closed").
				Validate(validateDuration).
				Value(&cmd.duration),
			huh.NewConfirm().
				Title("Closable?").
				Value(&closable),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	cmd.notClosable = !closable
	return nil
}

// line builds the feed line from the collected values.
func (cmd *ComposeCmd) line() (FeedLine, error) {
	kind, err := notify.ParseKind(cmd.kind)
	if err != nil {
		return FeedLine{}, err
	}
	if err := validate.Message(cmd.message); err != nil {
		return FeedLine{}, err
	}

	line := FeedLine{
		Op:      FeedOpen,
		Kind:    string(kind),
		Title:   strings.TrimSpace(cmd.title),
		Message: strings.TrimSpace(cmd.message),
	}

	if cmd.duration != "" {
		d, err := parseDuration(cmd.duration)
		if err != nil {
			return FeedLine{}, err
		}
		line.DurationMS = &d
	}
	if cmd.notClosable {
		closable := false
		line.Closable = &closable
	}

	return line, nil
}

func validateDuration(s string) error {
	_, err := parseDuration(s)
	return err
}

// parseDuration accepts Go durations ("2s", "1m30s") and a bare "0".
func parseDuration(s string) (int64, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if err := validate.NonNegative(d); err != nil {
		return 0, fmt.Errorf("duration %w", err)
	}
	if d > 0 && d < time.Millisecond {
		return 0, fmt.Errorf("duration %s is below 1ms; use 0 for sticky", d)
	}
	return d.Milliseconds(), nil
}

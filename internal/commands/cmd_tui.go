package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/config"
	"github.com/hay-kot/toaster/internal/core/logging"
	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/internal/tui"
	"github.com/hay-kot/toaster/pkg/logutils"
	"github.com/hay-kot/toaster/pkg/profiler"
	"github.com/hay-kot/toaster/pkg/utils"
)

type TuiCmd struct {
	flags       *Flags
	theme       string
	markdown    bool
	watchConfig bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application. Its flags live on the
// root command (see Flags) and are inherited.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive toast playground (default)",
		Action: cmd.run,
	})
	return app
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "override tui.theme for this run",
			Sources:     cli.EnvVars("TOASTER_THEME"),
			Destination: &cmd.theme,
		},
		&cli.BoolFlag{
			Name:        "markdown",
			Usage:       "render toast messages as markdown",
			Sources:     cli.EnvVars("TOASTER_MARKDOWN"),
			Destination: &cmd.markdown,
		},
		&cli.BoolFlag{
			Name:        "watch-config",
			Usage:       "reload theme and display settings when the config file changes",
			Sources:     cli.EnvVars("TOASTER_WATCH_CONFIG"),
			Value:       true,
			Destination: &cmd.watchConfig,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof and /debug/toasts HTTP endpoints on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TOASTER_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.requireConfig(); err != nil {
		return err
	}

	cfg := *cmd.flags.Config

	if cmd.theme != "" {
		palette, ok := styles.GetPalette(cmd.theme)
		if !ok {
			return fmt.Errorf("unknown theme %q", cmd.theme)
		}
		cfg.TUI.Theme = cmd.theme
		styles.SetTheme(palette)
	}
	if c.IsSet("markdown") {
		cfg.TUI.Markdown = cmd.markdown
	}

	// Logs bound for the terminal are held back until the program exits so
	// they do not tear the alt screen.
	logger := logging.Component("tui")
	var held *utils.DeferredWriter
	switch cmd.flags.LogFile {
	case "":
		held = &utils.DeferredWriter{}
		logger = logger.Output(held)
	case logutils.Stderr:
		held = &utils.DeferredWriter{}
		logger = logger.Output(zerolog.ConsoleWriter{Out: held})
	}

	queue := clock.NewQueue()
	m := tui.New(&cfg, tui.Options{
		Scheduler: queue,
		Bus:       cmd.flags.Bus,
		Logger:    logger,
		Warnings:  cfg.Warnings(),
	})

	// Start profiler server if enabled
	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort,
			profiler.WithHandler("/debug/toasts", stackHandler(queue, m.Notifier())),
		)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Str("stack", fmt.Sprintf("http://%s/debug/toasts", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	p := tea.NewProgram(m)

	if cmd.watchConfig && cmd.flags.ConfigPath != "" {
		watcher, err := config.Watch(cmd.flags.ConfigPath, config.DefaultWatchDebounce, logger, func(next *config.Config, err error) {
			p.Send(tui.ConfigReloadedMsg{Config: next, Err: err})
		})
		if err != nil {
			logger.Warn().Err(err).Msg("config watch disabled")
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	_, err := p.Run()
	flushHeld(held, os.Stderr)
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func flushHeld(held *utils.DeferredWriter, w io.Writer) {
	if held == nil {
		return
	}
	_ = held.Flush(w)
}

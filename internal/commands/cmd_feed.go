package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/logging"
	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/toast"
	"github.com/hay-kot/toaster/pkg/iojson"
)

// Feed line operations.
const (
	FeedOpen  = "open"
	FeedClose = "close"
	FeedClear = "clear"
)

// FeedLine is one line of feed input.
type FeedLine struct {
	Op         string `json:"op,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
	Closable   *bool  `json:"closable,omitempty"`
	ID         int64  `json:"id,omitempty"`
}

// Validate reports malformed lines. An empty op means open.
func (l FeedLine) Validate() error {
	switch l.Op {
	case "", FeedOpen:
		if _, err := notify.ParseKind(l.Kind); err != nil {
			return err
		}
		if l.DurationMS != nil && *l.DurationMS < 0 {
			return fmt.Errorf("duration_ms cannot be negative, got %d", *l.DurationMS)
		}
		return nil
	case FeedClose:
		if l.ID < 1 {
			return errors.New("close requires a positive id")
		}
		return nil
	case FeedClear:
		return nil
	default:
		return fmt.Errorf("unknown op %q", l.Op)
	}
}

// Options converts an open line into notification options.
func (l FeedLine) Options() notify.Options {
	kind, _ := notify.ParseKind(l.Kind)
	o := notify.Options{
		Kind:     kind,
		Title:    l.Title,
		Message:  l.Message,
		Closable: l.Closable,
	}
	if l.DurationMS != nil {
		d := time.Duration(*l.DurationMS) * time.Millisecond
		o.Duration = &d
	}
	return o
}

type FeedCmd struct {
	flags  *Flags
	input  iojson.LineReader[FeedLine]
	linger time.Duration
}

// NewFeedCmd creates a new feed command.
func NewFeedCmd(flags *Flags) *FeedCmd {
	return &FeedCmd{flags: flags}
}

// Register adds the feed command to the application.
func (cmd *FeedCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "feed",
		Usage:     "Drive the notification stack from JSON lines",
		UsageText: "toaster feed [options] [file or glob...] < events.jsonl",
		Description: `Reads one JSON object per line from files or stdin and applies it to a
headless notification stack. Lifecycle events (mount, enter, exit, unmount)
are written to stdout as JSON lines.

Input lines look like:
  {"op":"open","kind":"success","title":"Deploy","message":"done","duration_ms":2000}
  {"op":"close","id":1}
  {"op":"clear"}

Arguments may be files or globs ('events/**/*.jsonl'); matches are read in
lexical order as one stream. Without arguments, --file or stdin is used.

op defaults to open. Malformed lines are reported on stderr and skipped.
When input ends, sticky notifications are closed and the command exits once
the stack is empty. --linger caps that wait; anything left is cleared.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.DurationFlag{
				Name:        "linger",
				Usage:       "maximum time to wait for the stack to empty after input ends (0 waits indefinitely)",
				Sources:     cli.EnvVars("TOASTER_FEED_LINGER"),
				Destination: &cmd.linger,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FeedCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.requireConfig(); err != nil {
		return err
	}

	in, source, err := cmd.open(c)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	ctx = logging.WithRunID(logging.WithCommand(logging.WithSource(ctx, source), "feed"))

	runner := &feedRunner{
		cfg:    cmd.flags.Config.ToastSettings(),
		out:    c.Root().Writer,
		errOut: c.Root().ErrWriter,
		linger: cmd.linger,
		logger: logging.Component("feed"),
	}
	return runner.Run(ctx, in)
}

func (cmd *FeedCmd) open(c *cli.Command) (io.ReadCloser, string, error) {
	if !c.Args().Present() {
		in, err := cmd.input.Open()
		if err != nil {
			return nil, "", err
		}
		source := c.String("file")
		if source == "" {
			source = "stdin"
		}
		return in, source, nil
	}

	if c.IsSet("file") {
		return nil, "", errors.New("use either --file or file arguments, not both")
	}

	paths, err := expandInputs(c.Args().Slice())
	if err != nil {
		return nil, "", err
	}
	in, err := openInputs(paths)
	if err != nil {
		return nil, "", err
	}

	source := paths[0]
	if len(paths) > 1 {
		source = fmt.Sprintf("%s (+%d more)", paths[0], len(paths)-1)
	}
	return in, source, nil
}

// feedRunner applies feed lines to a Notifier. Lines are decoded on a reader
// goroutine and posted to a clock.Queue; everything touching the Notifier runs
// on the goroutine that called Run.
type feedRunner struct {
	cfg    toast.Config
	out    io.Writer
	errOut io.Writer
	linger time.Duration
	logger zerolog.Logger

	queue    *clock.Queue
	bus      *notify.Bus
	notifier *toast.Notifier

	applied int
	skipped int
	eof     bool
	readErr error
}

func (r *feedRunner) Run(ctx context.Context, in io.Reader) error {
	r.queue = clock.NewQueue()
	defer r.queue.Stop()

	presenter := toast.NewStreamPresenter(r.out, r.queue.Now)
	r.notifier = toast.New(r.cfg, presenter, r.queue, r.logger)
	r.bus = notify.NewBus()
	r.notifier.Subscribe(r.bus)

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	go func() {
		err := iojson.EachLine(in, func(line FeedLine, lineErr error) error {
			r.queue.Post(func() { r.apply(ctx, line, lineErr) })
			return readCtx.Err()
		})
		r.queue.Post(func() { r.endOfInput(ctx, err) })
	}()

	for !r.done() {
		select {
		case <-ctx.Done():
			r.notifier.Clear()
			return ctx.Err()
		case <-r.queue.Ready():
			r.queue.Drain()
		}
	}

	r.logger.Debug().Ctx(ctx).
		Int("applied", r.applied).
		Int("skipped", r.skipped).
		Msg("feed finished")

	if err := presenter.Err(); err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	return r.readErr
}

func (r *feedRunner) done() bool {
	return r.eof && r.notifier.Len() == 0
}

func (r *feedRunner) apply(ctx context.Context, line FeedLine, lineErr error) {
	if lineErr == nil {
		lineErr = line.Validate()
	}
	if lineErr != nil {
		r.skip(ctx, lineErr)
		return
	}

	r.applied++
	switch line.Op {
	case FeedClose:
		r.notifier.Close(line.ID)
	case FeedClear:
		r.notifier.Clear()
	default:
		r.bus.Publish(line.Options())
	}
}

func (r *feedRunner) skip(ctx context.Context, err error) {
	r.skipped++

	data := map[string]any{"error": err.Error()}
	var le *iojson.LineError
	if errors.As(err, &le) {
		data["line"] = le.Line
		data["error"] = le.Err.Error()
	}

	r.logger.Warn().Ctx(ctx).Err(err).Msg("skipping feed line")
	_ = iojson.WriteErrorTo(r.errOut, "invalid feed line", data)
}

// endOfInput closes sticky notifications, which nothing can close once input
// has ended, and arms the linger deadline.
func (r *feedRunner) endOfInput(ctx context.Context, err error) {
	r.eof = true
	if err != nil {
		r.readErr = err
		r.logger.Error().Ctx(ctx).Err(err).Msg("feed input failed")
	}

	for _, rec := range r.notifier.All() {
		if rec.Sticky() {
			r.notifier.Close(rec.ID)
		}
	}

	if r.linger > 0 && r.notifier.Len() > 0 {
		r.queue.AfterFunc(r.linger, func() {
			r.logger.Debug().Ctx(ctx).Int("remaining", r.notifier.Len()).Msg("linger elapsed, clearing stack")
			r.notifier.Clear()
		})
	}
}

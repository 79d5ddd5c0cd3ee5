package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/toaster/internal/core/notify"
)

// KindCompleter returns a ShellCompleteFunc that suggests notification kinds
// as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func KindCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, k := range notify.Kinds {
			_, _ = fmt.Fprintln(w, string(k))
		}
	}
}

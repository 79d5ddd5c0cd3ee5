package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	sourceKey  contextKey = "source"
	commandKey contextKey = "command"
	runKey     contextKey = "run_id"
)

// WithSource records where notifications handled under ctx come from
// (a feed file, stdin, the TUI).
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// WithCommand records the CLI command handling ctx.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// GetSource retrieves the notification source from the context.
// Returns empty string if not present.
func GetSource(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey).(string); ok {
		return s
	}
	return ""
}

// GetCommand retrieves the CLI command from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if s, ok := ctx.Value(commandKey).(string); ok {
		return s
	}
	return ""
}

// WithRunID tags ctx with a fresh run identifier so log lines from one
// invocation can be correlated across a shared log file.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runKey, uuid.NewString())
}

// GetRunID retrieves the run identifier from the context.
// Returns empty string if not present.
func GetRunID(ctx context.Context) string {
	if s, ok := ctx.Value(runKey).(string); ok {
		return s
	}
	return ""
}

// Package logging holds the zerolog helpers shared by toaster components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a component identifier under the
// "cmp" key. Events logged with a context also carry the fields installed
// by ContextHook.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}

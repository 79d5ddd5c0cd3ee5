package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}
	return entry
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("toast")
	logger.Info().Msg("toast admitted")

	entry := decode(t, &buf)
	if cmp := entry["cmp"]; cmp != "toast" {
		t.Errorf("Component() cmp = %v, want %q", cmp, "toast")
	}
	if msg := entry["message"]; msg != "toast admitted" {
		t.Errorf("Component() message = %v, want %q", msg, "toast admitted")
	}
}

func TestComponent_adds_context_fields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	ctx := WithSource(context.Background(), "stdin")
	Component("feed").Info().Ctx(ctx).Msg("line applied")

	entry := decode(t, &buf)
	if src := entry["source"]; src != "stdin" {
		t.Errorf("source = %v, want %q", src, "stdin")
	}
}

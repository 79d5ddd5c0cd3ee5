package logging

import (
	"context"
	"testing"
)

func TestWithSource(t *testing.T) {
	ctx := WithSource(context.Background(), "notifications.jsonl")

	if got := GetSource(ctx); got != "notifications.jsonl" {
		t.Errorf("GetSource() = %q, want %q", got, "notifications.jsonl")
	}
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "feed")

	if got := GetCommand(ctx); got != "feed" {
		t.Errorf("GetCommand() = %q, want %q", got, "feed")
	}
}

func TestGetSource_NotPresent(t *testing.T) {
	if got := GetSource(context.Background()); got != "" {
		t.Errorf("GetSource() = %q, want empty string", got)
	}
}

func TestGetCommand_NotPresent(t *testing.T) {
	if got := GetCommand(context.Background()); got != "" {
		t.Errorf("GetCommand() = %q, want empty string", got)
	}
}

func TestWithRunID(t *testing.T) {
	a := GetRunID(WithRunID(context.Background()))
	b := GetRunID(WithRunID(context.Background()))

	if len(a) != 36 {
		t.Errorf("GetRunID() = %q, want a UUID", a)
	}
	if a == b {
		t.Errorf("run IDs should differ, both %q", a)
	}
	if got := GetRunID(context.Background()); got != "" {
		t.Errorf("GetRunID() = %q, want empty string", got)
	}
}

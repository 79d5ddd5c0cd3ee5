package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "source and command",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithSource(ctx, "stdin")
				ctx = WithCommand(ctx, "feed")
				return ctx
			},
			wantKeys:  []string{"source", "command"},
			wantEmpty: []string{"run_id"},
		},
		{
			name: "run id",
			setupCtx: func() context.Context {
				return WithRunID(context.Background())
			},
			wantKeys:  []string{"run_id"},
			wantEmpty: []string{"source", "command"},
		},
		{
			name: "only source",
			setupCtx: func() context.Context {
				return WithSource(context.Background(), "stdin")
			},
			wantKeys:  []string{"source"},
			wantEmpty: []string{"command"},
		},
		{
			name: "only command",
			setupCtx: func() context.Context {
				return WithCommand(context.Background(), "tui")
			},
			wantKeys:  []string{"command"},
			wantEmpty: []string{"source"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"source", "command"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}

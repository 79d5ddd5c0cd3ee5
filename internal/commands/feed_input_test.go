package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/toaster/internal/core/config"
	"github.com/hay-kot/toaster/internal/core/toast"
	"github.com/hay-kot/toaster/pkg/iojson"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestExpandInputs(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.jsonl":          "",
		"a.jsonl":          "",
		"nested/c.jsonl":   "",
		"nested/notes.txt": "",
	})

	got, err := expandInputs([]string{
		filepath.Join(dir, "**", "*.jsonl"),
		filepath.Join(dir, "a.jsonl"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jsonl"),
		filepath.Join(dir, "b.jsonl"),
		filepath.Join(dir, "nested", "c.jsonl"),
	}, got)
}

func TestExpandInputs_errors(t *testing.T) {
	dir := t.TempDir()

	_, err := expandInputs([]string{filepath.Join(dir, "*.jsonl")})
	assert.ErrorContains(t, err, "no files match")

	_, err = expandInputs([]string{"[unclosed"})
	assert.ErrorContains(t, err, "invalid pattern")
}

func TestOpenInputs_separates_files(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"one.jsonl": `{"message":"a"}`,
		"two.jsonl": `{"message":"b"}` + "\n",
	})

	rc, err := openInputs([]string{filepath.Join(dir, "one.jsonl"), filepath.Join(dir, "two.jsonl")})
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, "{\"message\":\"a\"}\n{\"message\":\"b\"}\n\n", string(data))
}

func TestOpenInputs_missing_file(t *testing.T) {
	_, err := openInputs([]string{filepath.Join(t.TempDir(), "gone.jsonl")})
	assert.ErrorContains(t, err, "open")
}

func TestFeedCmd_reads_glob_arguments(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.jsonl": `{"kind":"success","message":"first","duration_ms":5}`,
		"2.jsonl": `{"kind":"error","message":"second","duration_ms":5}` + "\n",
	})

	cfg := config.DefaultConfig()
	cfg.Toast.Grace = 0
	cfg.Toast.Enter = 0
	cfg.Toast.Exit = 0
	flags := &Flags{Config: &cfg}

	var out, errOut bytes.Buffer
	app := &cli.Command{Name: "toaster", Writer: &out, ErrWriter: &errOut, ExitErrHandler: ignoreExit}
	app = NewFeedCmd(flags).Register(app)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Run(ctx, []string{"toaster", "feed", filepath.Join(dir, "*.jsonl")}))

	assert.Empty(t, errOut.String())

	var events []toast.Event
	require.NoError(t, iojson.EachLine(&out, func(ev toast.Event, err error) error {
		events = append(events, ev)
		return err
	}))
	assert.Equal(t, fullLifecycle, ops(events, 1))
	assert.Equal(t, fullLifecycle, ops(events, 2))
	assert.Equal(t, "first", events[0].Message)
}

func TestFeedCmd_rejects_file_flag_with_arguments(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	app := &cli.Command{Name: "toaster", Writer: io.Discard, ErrWriter: io.Discard, ExitErrHandler: ignoreExit}
	app = NewFeedCmd(flags).Register(app)

	err := app.Run(context.Background(), []string{"toaster", "feed", "--file", "x.jsonl", "y.jsonl"})
	assert.ErrorContains(t, err, "not both")
}

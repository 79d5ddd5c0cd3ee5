package iojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Op string `json:"op"`
	N  int    `json:"n"`
}

func TestEachLine(t *testing.T) {
	input := `{"op":"open","n":1}

{"op":
{"op":"close","n":2}
`
	var got []line
	var errs []*LineError

	err := EachLine(strings.NewReader(input), func(v line, err error) error {
		if err != nil {
			var le *LineError
			require.ErrorAs(t, err, &le)
			errs = append(errs, le)
			return nil
		}
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []line{{"open", 1}, {"close", 2}}, got)
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Line)
}

func TestEachLine_callback_error_stops(t *testing.T) {
	stop := errors.New("stop")
	calls := 0

	err := EachLine(strings.NewReader("{}\n{}\n{}\n"), func(line, error) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestLineReader_Open_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"op":"clear"}`+"\n"), 0o644))

	lr := &LineReader[line]{fileFlagValue: path}
	rc, err := lr.Open()
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	var got []line
	require.NoError(t, EachLine(rc, func(v line, err error) error {
		got = append(got, v)
		return err
	}))
	assert.Equal(t, []line{{Op: "clear"}}, got)
}

func TestLineReader_Open_missing_file(t *testing.T) {
	lr := &LineReader[line]{fileFlagValue: filepath.Join(t.TempDir(), "missing")}
	_, err := lr.Open()
	assert.ErrorContains(t, err, "open file")
}

func TestMarshalError(t *testing.T) {
	out := MarshalError("bad line", map[string]any{"line": 3})

	var decoded Error
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "bad line", decoded.Message)
	assert.InDelta(t, 3, decoded.Data["line"], 0)
	assert.NotContains(t, out, "\n")
}

func TestMarshalError_unmarshalable_data(t *testing.T) {
	out := MarshalError("bad", map[string]any{"fn": func() {}})

	var decoded Error
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "bad", decoded.Message)
	assert.Contains(t, decoded.Data, "json_error")
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, out.String())
	assert.Empty(t, errOut.String())
}

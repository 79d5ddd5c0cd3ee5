package iojson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// MaxLineSize bounds a single JSON line accepted by LineReader.
const MaxLineSize = 1 << 20

type FileReader[T any] struct {
	fileFlagValue string
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

func (fr *FileReader[T]) Read() (T, error) {
	var input T

	reader, err := openInput(fr.fileFlagValue)
	if err != nil {
		return input, err
	}
	defer func() { _ = reader.Close() }()

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

// LineReader decodes newline-delimited JSON, one T per line, from the file
// named by its flag or from stdin.
type LineReader[T any] struct {
	fileFlagValue string
}

func (lr *LineReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON lines file (reads from stdin if not provided)",
		Destination: &lr.fileFlagValue,
	}
}

// Open returns the configured input. The caller closes it.
func (lr *LineReader[T]) Open() (io.ReadCloser, error) {
	return openInput(lr.fileFlagValue)
}

// LineError reports a line that could not be decoded.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// EachLine calls fn for every non-blank line of r. Lines that fail to decode
// are passed to fn as a *LineError with a zero value; returning a non-nil
// error from fn stops the scan and is returned as is.
func EachLine[T any](r io.Reader, fn func(v T, err error) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var v T
		var lineErr error
		if err := json.Unmarshal(raw, &v); err != nil {
			var zero T
			v = zero
			lineErr = &LineError{Line: line, Err: err}
		}

		if err := fn(v, lineErr); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}
	return io.NopCloser(os.Stdin), nil
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// expandInputs resolves file arguments and doublestar globs
// ("events/**/*.jsonl") into a sorted, de-duplicated list of files.
func expandInputs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		files = append(files, matches...)
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

type multiFile struct {
	io.Reader
	files []*os.File
}

func (m *multiFile) Close() error {
	var errs []error
	for _, f := range m.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

// openInputs concatenates files into one line stream. A newline separates
// files so a missing trailing newline cannot merge two lines.
func openInputs(paths []string) (io.ReadCloser, error) {
	m := &multiFile{}
	readers := make([]io.Reader, 0, len(paths)*2)
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		m.files = append(m.files, f)
		readers = append(readers, f, strings.NewReader("\n"))
	}
	m.Reader = io.MultiReader(readers...)
	return m, nil
}

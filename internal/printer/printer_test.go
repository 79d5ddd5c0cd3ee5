package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/pkg/tuitest"
)

func TestPrinter_lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %d", 3)
	p.Warnf("careful")
	p.Errorf("broken: %s", "yes")
	p.Printf("  plain")

	want := styles.IconNotifySuccess + " saved 3\n" +
		styles.IconNotifyWarning + " careful\n" +
		styles.IconNotifyError + " broken: yes\n" +
		"  plain"
	assert.Equal(t, want, tuitest.StripANSI(buf.String()))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()), "falls back to stderr")
}

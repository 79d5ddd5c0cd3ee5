// Package printer writes styled, line-oriented status output for CLI
// commands. Output goes to stderr by default so stdout stays free for data.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/toaster/internal/core/styles"
)

type ctxKey struct{}

// Printer writes one styled line per call.
type Printer struct {
	w io.Writer
}

// New returns a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or a stderr Printer if none is set.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessTextStyle, styles.IconNotifySuccess, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.InfoTextStyle, styles.IconNotifyInfo, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningTextStyle, styles.IconNotifyWarning, format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorTextStyle, styles.IconNotifyError, format, args...)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, style.Render(icon)+" "+fmt.Sprintf(format, args...))
}

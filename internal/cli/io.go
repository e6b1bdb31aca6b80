package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/calvinalkan/chk/internal/session"
)

// IO is the output of one invocation. Warnings are shown on stderr before
// the next stdout write and repeated by Finish, so they survive a pipe into
// head or tail. Any warning makes the exit code 1.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	style    styles
	warnings []string
	shown    int
}

// NewIO returns an IO with plain styles.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut, style: newStyles(out, session.ColorNever)}
}

// Warn records what went wrong and what to do about it. Repeats of the same
// warning are dropped.
func (o *IO) Warn(issue, action string) {
	w := issue + ": " + action
	if !slices.Contains(o.warnings, w) {
		o.warnings = append(o.warnings, w)
	}
}

func (o *IO) Println(a ...any) {
	o.showPending()
	_, _ = fmt.Fprintln(o.out, a...)
}

func (o *IO) Printf(format string, a ...any) {
	o.showPending()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish writes every warning to stderr and returns the exit code.
func (o *IO) Finish() int {
	o.showPending()

	if len(o.warnings) == 0 {
		return 0
	}

	o.writeWarnings(o.warnings)

	return 1
}

// showPending writes warnings recorded since the last stdout write. The
// shell shares one IO across lines, so later commands still get theirs.
func (o *IO) showPending() {
	if o.shown < len(o.warnings) {
		o.writeWarnings(o.warnings[o.shown:])
		o.shown = len(o.warnings)
	}
}

func (o *IO) writeWarnings(ws []string) {
	for _, w := range ws {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}

// Package stackreport captures a symbolicated backtrace at the moment an
// error report is constructed and renders it, together with the report's
// causal chain, on demand. The report container itself lives outside this
// package; it talks to stackreport through the Hook and Handler interfaces.
package stackreport

import (
	"fmt"
	"os"
	"strings"
)

// BacktraceEnv gates the "Stack backtrace:" section of debug output.
// Unset or "0" suppresses it; any other value enables it. It is read once
// per FormatDebug call, never at capture time.
const BacktraceEnv = "STACKREPORT_BACKTRACE"

// Context is the diagnostic snapshot owned by a single error report. It is
// captured once, when the report is constructed, and is immutable from
// then on. Formatting only reads the snapshot and the caller's chain.
type Context struct {
	frames []Frame
}

// Capture walks the current call stack and returns its snapshot. The err
// argument exists to satisfy the report container's calling convention;
// the snapshot does not depend on it.
func Capture(err error) *Context {
	_ = err
	return &Context{frames: captureStack(1)}
}

// Frames returns a copy of the captured stack, top of stack first.
func (c *Context) Frames() []Frame {
	out := make([]Frame, len(c.frames))
	copy(out, c.frames)
	return out
}

// FormatDisplay renders the causal chain of err as one line: the
// descriptions joined with ": ", root cause last. No frame data.
func (c *Context) FormatDisplay(err error) string {
	chain := Chain(err)
	parts := make([]string, len(chain))
	for i, e := range chain {
		parts[i] = e.Error()
	}
	return strings.Join(parts, ": ")
}

// FormatDebug renders the full report: the top-level description, a
// numbered "Caused by:" section when there is more than one entry in the
// chain, and the captured backtrace when BacktraceEnv enables it. Output
// is byte-identical across calls for the same inputs and switch state.
func (c *Context) FormatDebug(err error) string {
	var b strings.Builder

	chain := Chain(err)
	if len(chain) > 0 {
		b.WriteString(chain[0].Error())
	}
	if len(chain) > 1 {
		b.WriteString("\n\nCaused by:")
		for i, cause := range chain[1:] {
			fmt.Fprintf(&b, "\n%4d: %s", i, cause.Error())
		}
	}

	if !backtraceEnabled() {
		fmt.Fprintf(&b, "\n\nnote: backtrace omitted by default; set %s=1 to include it", BacktraceEnv)
		return b.String()
	}

	b.WriteString("\n\nStack backtrace:")
	for i, f := range c.frames {
		if f.Function != "" {
			fmt.Fprintf(&b, "\n%4d: %s", i, f.Function)
		} else {
			fmt.Fprintf(&b, "\n%4d: %#x", i, f.PC)
		}
		if f.File != "" {
			fmt.Fprintf(&b, "\n      at %s:%d", f.File, f.Line)
		}
	}
	return b.String()
}

func backtraceEnabled() bool {
	v, ok := os.LookupEnv(BacktraceEnv)
	return ok && v != "0"
}

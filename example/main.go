package main

import (
	"errors"
	"fmt"
	"os"

	"stackreport"
)

// report is a minimal stand-in for a full error-report container: it asks
// the installed hook for a handler at construction time and delegates all
// rendering to it.
type report struct {
	err     error
	handler stackreport.Handler
}

func newReport(err error) *report {
	hook, ok := stackreport.InstalledHook()
	if !ok {
		hook = stackreport.BacktraceHook{}
	}
	return &report{err: err, handler: hook.Capture(err)}
}

func (r *report) Error() string       { return r.handler.FormatDisplay(r.err) }
func (r *report) DebugReport() string { return r.handler.FormatDebug(r.err) }

type wrapped struct {
	msg   string
	cause error
}

func (e *wrapped) Error() string { return e.msg }
func (e *wrapped) Unwrap() error { return e.cause }

func main() {
	if err := stackreport.Install(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err := &wrapped{
		msg: "command failed",
		cause: &wrapped{
			msg:   "failed to save file",
			cause: errors.New("disk full"),
		},
	}

	rep := newReport(err)
	fmt.Println(rep.Error())
	fmt.Println()
	fmt.Println(rep.DebugReport())
}

package stackreport

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadyInstalled is returned when a hook has already been registered
// for this process.
var ErrAlreadyInstalled = errors.New("stackreport: hook already installed")

// Handler renders the diagnostic state of one report. A Handler is created
// per report, owned by it, and dies with it.
type Handler interface {
	FormatDisplay(err error) string
	FormatDebug(err error) string
}

// Hook produces a Handler whenever a new report is constructed. A process
// registers at most one Hook, once, via Install or InstallHook; report
// containers fetch it with InstalledHook.
type Hook interface {
	Capture(err error) Handler
}

// BacktraceHook is the default Hook: every report gets a Context with a
// freshly captured backtrace.
type BacktraceHook struct{}

var _ Handler = (*Context)(nil)
var _ Hook = BacktraceHook{}

func (BacktraceHook) Capture(err error) Handler {
	_ = err
	return &Context{frames: captureStack(1)}
}

// hookSlot is a write-once registration cell. The CAS guarantees that of
// any number of concurrent first-time installers exactly one wins and no
// reader ever observes a partial registration.
type hookSlot struct {
	p atomic.Pointer[Hook]
}

func (s *hookSlot) install(h Hook) error {
	if !s.p.CompareAndSwap(nil, &h) {
		return ErrAlreadyInstalled
	}
	return nil
}

func (s *hookSlot) get() (Hook, bool) {
	p := s.p.Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}

var processHook hookSlot

// Install registers BacktraceHook as the process-wide strategy. It must be
// called before any report is constructed and succeeds at most once per
// process; there is no way to unregister.
func Install() error {
	return InstallHook(BacktraceHook{})
}

// InstallHook registers hook for the lifetime of the process. The second
// and every later call returns ErrAlreadyInstalled, whichever component
// made the first one.
func InstallHook(hook Hook) error {
	return processHook.install(hook)
}

// InstalledHook returns the registered hook, if any. Report containers
// call this once per report construction.
func InstalledHook() (Hook, bool) {
	return processHook.get()
}

package stackreport

import "runtime"

// Frame is one entry of a captured call stack. PC is always set; Function,
// File and Line stay zero when symbolication fails for that address.
type Frame struct {
	PC       uintptr
	Function string
	File     string
	Line     int
}

// maxDepth caps the number of captured frames. Stacks deeper than this are
// truncated at the bottom.
const maxDepth = 1024

// captureStack walks the calling goroutine's stack and symbolicates every
// program counter. skip is the number of frames above captureStack itself
// to exclude, so the capture machinery never shows up in the snapshot.
func captureStack(skip int) []Frame {
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(skip+2, pcs)
		if n < len(pcs) || len(pcs) >= maxDepth {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, len(pcs)*2)
	}

	frames := make([]Frame, 0, len(pcs))
	for _, pc := range pcs {
		frames = append(frames, symbols.resolve(pc))
	}
	return frames
}

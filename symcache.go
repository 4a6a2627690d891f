package stackreport

import (
	"runtime"

	"github.com/tidwall/tinylru"
)

// symCacheSize bounds the process-wide PC lookup cache. Program counters
// repeat heavily across captures (the same call sites fail again and
// again), so a small LRU absorbs most of the symbolication cost.
const symCacheSize = 4096

var symbols = newSymbolCache(symCacheSize)

type symbolCache struct {
	lru tinylru.LRU
}

func newSymbolCache(size int) *symbolCache {
	c := &symbolCache{}
	c.lru.Resize(size)
	return c
}

// resolve maps a program counter to a symbolicated frame. Lookup failure
// is not an error: the frame is returned address-only, and cached as such.
func (c *symbolCache) resolve(pc uintptr) Frame {
	if raw, ok := c.lru.Get(pc); ok {
		if f, ok := raw.(Frame); ok {
			return f
		}
	}

	f := Frame{PC: pc}
	if rf, _ := runtime.CallersFrames([]uintptr{pc}).Next(); rf.PC != 0 {
		f.Function = rf.Function
		f.File = rf.File
		f.Line = rf.Line
	}
	c.lru.Set(pc, f)
	return f
}

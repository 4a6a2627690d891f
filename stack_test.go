package stackreport

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureExcludesCaptureMachinery(t *testing.T) {
	ctx := Capture(nil)
	frames := ctx.Frames()

	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0].Function, "TestCaptureExcludesCaptureMachinery")
	for _, f := range frames {
		assert.NotContains(t, f.Function, "stackreport.Capture")
		assert.NotContains(t, f.Function, "captureStack")
	}
}

func TestCaptureBoundedDepth(t *testing.T) {
	frames := Capture(nil).Frames()
	assert.Greater(t, len(frames), 0)
	assert.LessOrEqual(t, len(frames), maxDepth)
}

func TestCaptureDeepRecursion(t *testing.T) {
	var recurse func(n int) []Frame
	recurse = func(n int) []Frame {
		if n == 0 {
			return Capture(nil).Frames()
		}
		return recurse(n - 1)
	}

	frames := recurse(100)
	require.LessOrEqual(t, len(frames), maxDepth)

	seen := 0
	for _, f := range frames {
		if f.Function != "" && f.File != "" {
			seen++
		}
	}
	assert.GreaterOrEqual(t, seen, 100)
}

func TestFramesReturnsCopy(t *testing.T) {
	ctx := Capture(nil)
	frames := ctx.Frames()
	require.NotEmpty(t, frames)

	frames[0].Function = "mutated"
	assert.NotEqual(t, "mutated", ctx.Frames()[0].Function)
}

func TestSymbolCacheResolvesKnownPC(t *testing.T) {
	var pcs [1]uintptr
	require.Equal(t, 1, runtime.Callers(1, pcs[:]))

	c := newSymbolCache(8)
	f := c.resolve(pcs[0])
	assert.Equal(t, pcs[0], f.PC)
	assert.Contains(t, f.Function, "TestSymbolCacheResolvesKnownPC")
	assert.NotEmpty(t, f.File)
	assert.NotZero(t, f.Line)

	assert.Equal(t, f, c.resolve(pcs[0]))
}

func TestSymbolCacheAddressOnlyFallback(t *testing.T) {
	c := newSymbolCache(8)
	f := c.resolve(uintptr(1))

	assert.Equal(t, uintptr(1), f.PC)
	assert.Empty(t, f.Function)
	assert.Empty(t, f.File)
	assert.Zero(t, f.Line)
}

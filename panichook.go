package hyperlinked

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// tracebackHeader matches the header emitted by conventional interpreter
// tracebacks, so hyperlinked output stays visually compatible with tools
// that recognize it.
const tracebackHeader = "Traceback (most recent call last):\n"

// PrintTraceback writes a hyperlinked traceback for a recovered panic
// value: the conventional header, the frames outermost call first, then
// the panic value rendered the way the runtime's default panic output
// renders it. frames are expected innermost first, as returned by
// Callers.
func PrintTraceback(w io.Writer, frames []Frame, v any, scheme string) {
	if scheme == "" {
		scheme = DefaultScheme
	}
	io.WriteString(w, tracebackHeader)
	writeFrames(w, frames, scheme)
	fmt.Fprintf(w, "panic: %v\n", v)
}

// Recover is a process-level panic hook, installed explicitly with a
// defer at the top of main (or of a goroutine):
//
//	defer hyperlinked.Recover()
//
// If the goroutine is panicking it writes a hyperlinked traceback to
// standard error and exits the process with status 2, the runtime's
// panic exit status. When not panicking it does nothing. Unlike the
// runtime's own handler it cannot be inherited implicitly; installing
// it is a deliberate act of the caller.
func Recover() {
	v := recover()
	if v == nil {
		return
	}
	// Skip Recover itself and the deferred-call machinery above it.
	frames := trimRuntimeFrames(Callers(1, 0))
	PrintTraceback(os.Stderr, frames, v, DefaultScheme)
	os.Exit(2)
}

// trimRuntimeFrames drops the runtime's panic plumbing (gopanic and
// friends) from the front of a captured stack so the traceback starts
// at the frame that actually panicked.
func trimRuntimeFrames(frames []Frame) []Frame {
	i := 0
	for i < len(frames) && strings.HasPrefix(frames[i].Function, "runtime.") {
		i++
	}
	return frames[i:]
}

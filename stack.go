package hyperlinked

import (
	"io"
	"os"
)

// StackOptions configures PrintStack. The zero value captures the
// caller's stack (excluding PrintStack's own frame), writes all frames
// to os.Stderr, and links with DefaultScheme.
type StackOptions struct {
	// Frames supplies the stack to print, innermost frame first, as
	// returned by Callers. Nil means capture the caller's stack.
	Frames []Frame

	// Limit caps the number of frames printed; <= 0 means all. The
	// innermost frames are kept when truncating.
	Limit int

	// Writer receives the output. Nil means os.Stderr.
	Writer io.Writer

	// Scheme overrides the URI scheme. Empty means DefaultScheme.
	Scheme string
}

// PrintStack writes a hyperlinked stack trace, mimicking the shape of a
// conventional interpreter traceback: frames are printed outermost call
// first, each as a `File "...", line N, in func` location line followed
// by its source text when available.
func PrintStack(opts StackOptions) {
	frames := opts.Frames
	if frames == nil {
		// Skip PrintStack itself; inspecting our own invocation point
		// is not meaningful to the caller.
		frames = Callers(1, opts.Limit)
	} else if opts.Limit > 0 && len(frames) > opts.Limit {
		frames = frames[:opts.Limit]
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	scheme := opts.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}

	writeFrames(w, frames, scheme)
}

// writeFrames emits frames outermost first. frames arrive innermost
// first (runtime order), so iteration runs backwards.
func writeFrames(w io.Writer, frames []Frame, scheme string) {
	for i := len(frames) - 1; i >= 0; i-- {
		io.WriteString(w, FormatFrame(frames[i], scheme))
	}
}

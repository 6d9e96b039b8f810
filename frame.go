package hyperlinked

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame describes one stack frame as captured from the runtime.
type Frame struct {
	// File is the absolute path of the source file, as recorded by the
	// compiler. May be empty for synthetic frames.
	File string

	// Line is the 1-based line number, or zero if unknown.
	Line int

	// Function is the function name qualified with its package
	// (e.g. "hyperlinked.Print"), with the package's directory path
	// trimmed off.
	Function string

	// SourceLine is the stripped text of the source line, or empty when
	// the source file is not available on disk.
	SourceLine string
}

// maxStackDepth caps unbounded captures; deeper stacks are truncated.
const maxStackDepth = 128

// Callers captures the current goroutine's call stack. skip is the number
// of frames to skip before recording: 0 identifies the caller of Callers,
// 1 its caller, and so on. limit caps the number of frames returned;
// limit <= 0 means all (up to an internal depth cap). Frames are returned
// innermost first, the runtime's natural order. Returns nil when no
// frames are available.
func Callers(skip, limit int) []Frame {
	depth := limit
	if depth <= 0 || depth > maxStackDepth {
		depth = maxStackDepth
	}

	// +2 skips runtime.Callers itself and this function.
	pcs := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	out := make([]Frame, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			File:       fr.File,
			Line:       fr.Line,
			Function:   trimFunction(fr.Function),
			SourceLine: sourceLine(fr.File, fr.Line),
		})
		if !more || len(out) == depth {
			break
		}
	}
	return out
}

// caller returns the single frame identifying the caller at the given
// skip depth (0 = caller of caller()), without reading source text.
func caller(skip int) (Frame, bool) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{}, false
	}
	f := Frame{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.Function = trimFunction(fn.Name())
	}
	return f, true
}

// trimFunction drops the package directory from a runtime function name,
// keeping the package-qualified form: "github.com/x/y/pkg.Func" -> "pkg.Func".
func trimFunction(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// FormatFrame renders a frame in the conventional traceback shape:
//
//	  File "<path>", line <n>, in <function>
//	    <source line>
//
// with the File/line portion hyperlinked to the location. The indented
// source line is omitted when the frame carries no source text, so the
// result is a single line for compiled-away or unreadable files. The
// result always ends with a newline.
func FormatFrame(f Frame, scheme string) string {
	location := fmt.Sprintf("File %q, line %d", f.File, f.Line)
	linked := Hyperlink(location, URLForLocation(f.File, f.Line, scheme))

	s := "  " + linked
	if f.Function != "" {
		s += ", in " + f.Function
	}
	s += "\n"
	if f.SourceLine != "" {
		s += "    " + f.SourceLine + "\n"
	}
	return s
}

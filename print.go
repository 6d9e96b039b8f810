package hyperlinked

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Options configures Fprint. The zero value means: arguments joined with
// a single space, terminated with a newline, written to os.Stdout, no
// flush, DefaultScheme for the link target.
type Options struct {
	// Sep separates stringified arguments. Empty means " ".
	Sep string

	// End terminates the output. Empty means "\n".
	End string

	// Writer receives the output. Nil means os.Stdout.
	Writer io.Writer

	// Flush requests a flush after writing when the writer implements
	// Flush() error (e.g. *bufio.Writer). Plain *os.File writers are
	// unbuffered, so the flag is a no-op for them.
	Flush bool

	// Scheme overrides the URI scheme for this call. Empty means
	// DefaultScheme.
	Scheme string
}

// Print writes its arguments to standard output as a single line
// hyperlinked to the caller's source location, behaving otherwise like
// fmt.Println. If the caller's frame cannot be determined the same
// content is written unlinked — output is never dropped. Write errors
// are ignored, as with fmt.Print; use Fprint to observe them.
func Print(args ...any) {
	_ = fprint(Options{}, 1, args...)
}

// Fprint is Print with explicit options and an error return. The caller
// resolved for the link target is the caller of Fprint itself.
func Fprint(opts Options, args ...any) error {
	return fprint(opts, 1, args...)
}

func fprint(opts Options, skip int, args ...any) error {
	sep := opts.Sep
	if sep == "" {
		sep = " "
	}
	end := opts.End
	if end == "" {
		end = "\n"
	}
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	scheme := opts.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	text := strings.Join(parts, sep)

	if f, ok := caller(skip + 1); ok {
		text = Hyperlink(text, URLForLocation(f.File, f.Line, scheme))
	}

	if _, err := io.WriteString(w, text+end); err != nil {
		return err
	}
	if opts.Flush {
		if fl, ok := w.(interface{ Flush() error }); ok {
			return fl.Flush()
		}
	}
	return nil
}

// Hyperlinked returns text wrapped in a hyperlink to the caller's source
// location using DefaultScheme. When the caller's frame cannot be
// determined the text is returned unchanged. Performs no I/O.
func Hyperlinked(text string) string {
	f, ok := caller(1)
	if !ok {
		return text
	}
	return Hyperlink(text, URLForLocation(f.File, f.Line, DefaultScheme))
}

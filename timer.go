package hyperlinked

import (
	"fmt"
	"sync"
	"time"
)

var (
	startTime time.Time
	startMu   sync.RWMutex
)

// StartTimer sets the zero point for the relative timestamps used by F,
// Ln and RelativeMs. Call it at the beginning of a test or program.
func StartTimer() {
	startMu.Lock()
	defer startMu.Unlock()
	startTime = time.Now()
}

func elapsedMs() int64 {
	startMu.RLock()
	start := startTime
	startMu.RUnlock()

	if start.IsZero() {
		return 0
	}
	return time.Since(start).Milliseconds()
}

// F prints to standard output with a millisecond timestamp prefix, like
// printf. The output is hyperlinked to the call site and truncated to
// the terminal width when truncation is enabled.
func F(format string, args ...any) {
	text := fmt.Sprintf("[%5d] "+format, append([]any{elapsedMs()}, args...)...)
	printTimed(text)
}

// Ln prints to standard output with a millisecond timestamp prefix, like
// println. The output is hyperlinked to the call site and truncated to
// the terminal width when truncation is enabled.
func Ln(msg string) {
	printTimed(fmt.Sprintf("[%5d] %s\n", elapsedMs(), msg))
}

func printTimed(text string) {
	if Truncate {
		text = truncateToWidth(text, termWidth())
	}
	if f, ok := caller(2); ok {
		text = Hyperlink(text, URLForLocation(f.File, f.Line, DefaultScheme))
	}
	fmt.Print(text)
}

// RelativeMs renders t as a millisecond offset from the StartTimer zero
// point, like "+1000" or "-500". Zero time renders as "now"; when no
// timer has been started the absolute RFC3339Nano form is used.
func RelativeMs(t time.Time) string {
	if t.IsZero() {
		return "now"
	}

	startMu.RLock()
	start := startTime
	startMu.RUnlock()

	if start.IsZero() {
		return t.Format(time.RFC3339Nano)
	}

	ms := t.Sub(start).Milliseconds()
	if ms >= 0 {
		return fmt.Sprintf("+%d", ms)
	}
	return fmt.Sprintf("%d", ms)
}

package hyperlinked

import (
	"strings"
	"testing"
)

func TestCallers(t *testing.T) {
	frames := Callers(0, 0) // line recorded below

	if len(frames) == 0 {
		t.Fatal("expected at least one frame")
	}

	f := frames[0]
	if !strings.HasSuffix(f.File, "frame_test.go") {
		t.Errorf("expected innermost frame in frame_test.go, got %q", f.File)
	}
	if !strings.Contains(f.Function, "TestCallers") {
		t.Errorf("expected function TestCallers, got %q", f.Function)
	}
	if f.Line <= 0 {
		t.Errorf("expected positive line number, got %d", f.Line)
	}
	if !strings.Contains(f.SourceLine, "Callers(0, 0)") {
		t.Errorf("expected source line of the capture call, got %q", f.SourceLine)
	}
}

func TestCallerUnavailable(t *testing.T) {
	// A skip far past the top of the stack has no frame to report; the
	// printers fall back to unlinked output in that case.
	if _, ok := caller(10000); ok {
		t.Error("expected no frame for an out-of-range skip")
	}
}

func TestCallersLimit(t *testing.T) {
	frames := Callers(0, 1)
	if len(frames) != 1 {
		t.Errorf("expected exactly 1 frame, got %d", len(frames))
	}
}

func TestTrimFunction(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full import path", "github.com/aceteam-ai/hyperlinked.Print", "hyperlinked.Print"},
		{"nested package", "github.com/x/y/internal/pkg.Func", "pkg.Func"},
		{"no slash", "main.main", "main.main"},
		{"method", "github.com/x/pkg.(*T).Method", "pkg.(*T).Method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimFunction(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatFrame(t *testing.T) {
	f := Frame{
		File:       "/home/dev/app/main.go",
		Line:       12,
		Function:   "main.main",
		SourceLine: "doWork()",
	}

	got := FormatFrame(f, "file")

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}

	if !strings.Contains(lines[0], `File "/home/dev/app/main.go", line 12`) {
		t.Errorf("location line missing, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], ", in main.main") {
		t.Errorf("expected function suffix, got %q", lines[0])
	}
	if lines[1] != "    doWork()" {
		t.Errorf("expected indented source line, got %q", lines[1])
	}
	if !strings.Contains(got, "file://file/home/dev/app/main.go:12") {
		t.Errorf("expected link url in output, got %q", got)
	}
}

func TestFormatFrameNoSourceLine(t *testing.T) {
	f := Frame{File: "/proc/self/synthetic.go", Line: 3, Function: "pkg.fn"}

	got := FormatFrame(f, "file")

	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected a single line for a frame without source text, got %q", got)
	}
	if !strings.HasSuffix(got, ", in pkg.fn\n") {
		t.Errorf("expected location line ending with function, got %q", got)
	}
}

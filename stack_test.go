package hyperlinked

import (
	"bytes"
	"strings"
	"testing"
)

func syntheticFrames() []Frame {
	// Innermost first, the order Callers produces.
	return []Frame{
		{File: "/app/inner.go", Line: 5, Function: "app.inner", SourceLine: "fail()"},
		{File: "/app/middle.go", Line: 10, Function: "app.middle"},
		{File: "/app/outer.go", Line: 20, Function: "app.outer", SourceLine: "middle()"},
	}
}

func TestPrintStackExplicitFrames(t *testing.T) {
	var buf bytes.Buffer

	PrintStack(StackOptions{Frames: syntheticFrames(), Writer: &buf, Scheme: "file"})

	out := buf.String()
	outer := strings.Index(out, "outer.go")
	middle := strings.Index(out, "middle.go")
	inner := strings.Index(out, "inner.go")
	if outer < 0 || middle < 0 || inner < 0 {
		t.Fatalf("missing frames in output: %q", out)
	}
	if !(outer < middle && middle < inner) {
		t.Errorf("expected outermost frame first, got %q", out)
	}
	if !strings.Contains(out, "    fail()\n") {
		t.Errorf("expected indented source line, got %q", out)
	}
}

func TestPrintStackLimit(t *testing.T) {
	var buf bytes.Buffer

	PrintStack(StackOptions{Frames: syntheticFrames(), Limit: 2, Writer: &buf})

	out := buf.String()
	if strings.Contains(out, "outer.go") {
		t.Errorf("expected outermost frame to be dropped by limit, got %q", out)
	}
	if !strings.Contains(out, "inner.go") || !strings.Contains(out, "middle.go") {
		t.Errorf("expected the innermost frames to survive the limit, got %q", out)
	}
}

func TestPrintStackCapturesCaller(t *testing.T) {
	var buf bytes.Buffer

	PrintStack(StackOptions{Writer: &buf})

	out := buf.String()
	if !strings.Contains(out, "stack_test.go") {
		t.Errorf("expected this test in the captured stack, got %q", out)
	}
	if !strings.Contains(out, "TestPrintStackCapturesCaller") {
		t.Errorf("expected this test function name, got %q", out)
	}
	if strings.Contains(out, "hyperlinked.PrintStack") {
		t.Errorf("PrintStack's own frame should be excluded, got %q", out)
	}
}

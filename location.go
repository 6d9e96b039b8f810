package hyperlinked

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultScheme is the URI scheme used for link targets when no explicit
// scheme is given. It is read once from HYPERLINKED_SCHEME at process
// start and falls back to "file". Schemes like "vscode" or "cursor"
// produce editor deep links of the same shape.
var DefaultScheme = getEnvOrDefault("HYPERLINKED_SCHEME", "file")

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// URLForLocation builds a link target of the form
// <scheme>://file/<absolute-path> with :<line> appended when line > 0.
// The path is resolved to an absolute, cleaned form; a line of 0 means
// "no line number". Reserved URL characters in the path are passed
// through verbatim — no percent-encoding is performed, which is a known
// limitation of the format, not something to paper over here.
func URLForLocation(path string, line int, scheme string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		// Abs only fails when the working directory is gone; the raw
		// path is still a usable link target.
		abs = filepath.Clean(path)
	}
	// Slash-separated with a leading slash, so Windows drive paths become
	// scheme://file/C:/... the way editor URL handlers expect.
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	url := scheme + "://file" + abs
	if line > 0 {
		url += ":" + strconv.Itoa(line)
	}
	return url
}

package hyperlinked

import (
	"os"
	"strings"
	"sync"
)

// Source text for frames is read from disk on first use and cached per
// file for the life of the process, the way Python's linecache backs
// traceback rendering. Failures are absorbed: a frame whose source
// cannot be read simply has no source line.
var lineCache = struct {
	sync.Mutex
	files map[string][]string
}{files: make(map[string][]string)}

// sourceLine returns the stripped text of the given 1-based line of file,
// or "" when the file is unreadable or the line is out of range.
func sourceLine(file string, line int) string {
	if file == "" || line <= 0 {
		return ""
	}

	lineCache.Lock()
	lines, ok := lineCache.files[file]
	lineCache.Unlock()

	if !ok {
		lines = readLines(file)
		lineCache.Lock()
		lineCache.files[file] = lines
		lineCache.Unlock()
	}

	if line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}

func readLines(file string) []string {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}

// Package hyperlinked adds OSC 8 terminal hyperlinks to console output,
// pointing back at the source location of the call site. In a terminal
// that supports OSC 8 link detection (iTerm2, Windows Terminal, GNOME
// Terminal, Konsole, etc.) the printed text becomes clickable and opens
// your editor at that file and line.
//
// The formatting core is Hyperlink and URLForLocation; Print, Hyperlinked,
// PrintStack and Recover are thin callers that resolve the caller's frame
// through the runtime and feed it to the formatter. The URI scheme for
// link targets defaults to "file" and can be overridden process-wide with
// the HYPERLINKED_SCHEME environment variable, or per call through the
// options structs.
//
// No terminal capability detection is performed: output always carries
// the escape sequences, and terminals without OSC 8 support simply show
// the plain text.
package hyperlinked

package hyperlinked

// OSC 8 framing: ESC ] 8 ; ; <url> ST <text> ESC ] 8 ; ; ST, where ST is
// the two-byte string terminator ESC \. Terminals that detect hyperlinks
// depend on this exact byte sequence, so it is built by concatenation
// rather than any escaping or encoding layer.
const (
	osc = "\x1b]"
	st  = "\x1b\\"
)

// Hyperlink wraps text in OSC 8 escape codes so that terminals render it
// as a clickable link to url. Neither argument is validated or escaped;
// if the text contains escape bytes of its own they pass through verbatim.
// Empty text produces a zero-width open/close marker pair.
func Hyperlink(text, url string) string {
	return osc + "8;;" + url + st + text + osc + "8;;" + st
}

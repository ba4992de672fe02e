package content

import (
	"regexp"
	"strings"
)

// ansiPattern matches CSI and OSC escape sequences
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)

// Sanitize strips ANSI sequences and control characters from a single line, tabs become spaces
func Sanitize(s string) string {
	return sanitize(s, false)
}

// SanitizeBlock is Sanitize for multi-line text, newlines are kept
func SanitizeBlock(s string) string {
	return sanitize(s, true)
}

func sanitize(s string, keepNewlines bool) string {
	s = ansiPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case r == '\n':
			if keepNewlines {
				b.WriteRune('\n')
			} else {
				b.WriteRune(' ')
			}
		case r < 0x20 || r == 0x7f:
			// Control character
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

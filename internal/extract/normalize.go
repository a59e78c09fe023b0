package extract

import (
	"strings"
	"unicode"
)

// Normalize strips leading whitespace from every line of a literal body and
// drops the blank lines that precede the first line of script. Trailing and
// internal blank lines are kept, as is the final line break.
func Normalize(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}

package syntax

import "strings"

// Escape backslash-escapes every meta-character in s, the way
// escapeLiteral does for a single literal node, so that using the
// result as a pattern matches s literally.
func Escape(s string) string {
	var buf strings.Builder
	for _, c := range s {
		escapeLiteral(&buf, c)
	}
	return buf.String()
}

// Unescape is the left inverse of Escape for any string Escape could
// have produced: it removes a backslash preceding a meta-character,
// leaving every other rune untouched.
func Unescape(s string) string {
	var buf strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) && strings.ContainsRune(metaChars, runes[i+1]) {
			i++
			buf.WriteRune(runes[i])
			continue
		}
		buf.WriteRune(c)
	}
	return buf.String()
}

// Package document holds the line-level primitives shared by the merge and
// header logic: line classification and key/value splitting for the
// `key:value` base format.
package document

import "strings"

// Delimiter separates the key from the value region on a content line. Only
// the first occurrence counts; the value may contain further colons.
const Delimiter = ":"

// IsContent reports whether a line carries a key/value entry. Blank lines and
// `#` comments (directive lines included) are structure, not content.
func IsContent(line string) bool {
	return line != "" && !strings.HasPrefix(line, "#")
}

// SplitKey splits a content line at the first delimiter. The returned key is
// the raw, untrimmed substring before the colon; value is everything after
// it. ok is false when the line has no delimiter, in which case key holds the
// whole line.
func SplitKey(line string) (key, value string, ok bool) {
	idx := strings.Index(line, Delimiter)
	if idx < 0 {
		return line, "", false
	}
	return line[:idx], line[idx+1:], true
}

// Key returns the trimmed lookup key for a line, the form under which
// translation entries are addressed.
func Key(line string) string {
	key, _, _ := SplitKey(line)
	return strings.TrimSpace(key)
}

// HasDirectiveHeader reports whether the document opens with a `##` directive
// line, the marker for a replaceable language metadata header.
func HasDirectiveHeader(lines []string) bool {
	return len(lines) > 0 && strings.HasPrefix(lines[0], "##")
}

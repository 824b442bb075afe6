// Package overlay merges updated translation values onto a base language
// file while preserving line order, comments, and key spacing.
package overlay

import (
	"strings"

	"weblate-bridge/internal/document"
	"weblate-bridge/internal/header"
)

// Lookup resolves a trimmed key to its replacement value.
type Lookup interface {
	Get(key string) (string, bool)
}

// Result holds the merged document and counters for reporting.
type Result struct {
	// Text is the merged document.
	Text string
	// Replaced counts content lines whose value was overwritten.
	Replaced int
	// HeaderReplaced is true when a directive header was swapped for the
	// canonical block.
	HeaderReplaced bool
}

// Merge overlays updates onto the base document. Blank and comment lines pass
// through untouched; for each content line the trimmed key is looked up and,
// on a hit, everything after the first colon is replaced while the raw key
// substring keeps its original spacing. The existing header, if any, is kept.
func Merge(base string, updates Lookup) *Result {
	lines := strings.Split(base, "\n")
	merged, replaced := mergeLines(lines, updates)
	return &Result{
		Text:     strings.Join(merged, "\n"),
		Replaced: replaced,
	}
}

// MergeWithHeader merges like Merge and then, when the document opens with a
// `##` directive line, drops the leading header block and prepends the
// profile's canonical lines with a single blank separator. Documents without
// a directive header are returned without header substitution.
func MergeWithHeader(base string, updates Lookup, profile *header.Profile) *Result {
	lines := strings.Split(base, "\n")
	merged, replaced := mergeLines(lines, updates)

	result := &Result{Replaced: replaced}
	if document.HasDirectiveHeader(merged) {
		rest := merged[min(header.LineCount, len(merged)):]
		block := profile.Lines()

		out := make([]string, 0, len(block)+1+len(rest))
		out = append(out, block...)
		out = append(out, "")
		out = append(out, rest...)

		merged = out
		result.HeaderReplaced = true
	}
	result.Text = strings.Join(merged, "\n")
	return result
}

func mergeLines(lines []string, updates Lookup) ([]string, int) {
	out := make([]string, len(lines))
	replaced := 0
	for i, line := range lines {
		merged, hit := mergeLine(line, updates)
		out[i] = merged
		if hit {
			replaced++
		}
	}
	return out, replaced
}

// mergeLine rewrites a single line. Lines without a colon keep their full
// text as the key; in practice such keys never appear in the mapping and the
// line passes through.
func mergeLine(line string, updates Lookup) (string, bool) {
	if !document.IsContent(line) {
		return line, false
	}

	value, ok := updates.Get(document.Key(line))
	if !ok {
		return line, false
	}
	key, _, _ := document.SplitKey(line)
	return key + document.Delimiter + value, true
}

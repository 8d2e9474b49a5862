// Package normalize removes blank-line noise between Markdown list
// items, a common artifact of pasting list content from elsewhere.
//
// In strict mode, indented blank lines (whitespace-only lines with at
// least one space or tab) between list items are stripped, while a
// single empty line separating two distinct lists is kept. In merge
// mode every blank line between list items is removed, joining
// adjacent lists into one. Blank lines that follow non-list content
// are never touched, and non-blank lines are never modified.
//
// Input is split on \n only; a trailing \r counts as line content, so
// the blank lines of a CRLF document are never merged or collapsed.
package normalize

import "strings"

// Document normalizes a full document and returns the replacement
// text. It is a pure function: the same input and mode always produce
// the same output, and the input is never mutated. Note that a
// trailing newline after a final list item is removed, since the
// closing empty line counts as a blank run after a list item.
func Document(text string, strict bool) string {
	return strings.Join(Lines(strings.Split(text, "\n"), strict), "\n")
}

// Lines applies the blank-line rules to an ordered line sequence.
//
// The pass is single and left to right. Blank lines are never decided
// one at a time: they accumulate in a pending run until the next
// non-blank line (or end of input) is known, then the whole run is
// resolved at once against the classification of the last emitted
// non-blank line.
func Lines(lines []string, strict bool) []string {
	out := make([]string, 0, len(lines))
	var run []string
	afterItem := false // start of document counts as non-list

	for _, line := range lines {
		if IsBlank(line) {
			run = append(run, line)
			continue
		}
		out = resolveRun(out, run, afterItem, strict)
		run = run[:0]
		out = append(out, line)
		afterItem = IsListItem(line)
	}

	// Tail: a run that closes the document is kept verbatim after
	// non-list content but dropped entirely after a list item, in
	// both modes. A trailing blank line is never meaningful.
	if !afterItem {
		out = append(out, run...)
	}
	return out
}

// resolveRun appends the replacement for a pending blank run to out.
//
// After non-list content (or at the start of the document) the run is
// block separation and survives verbatim, whatever follows it. After
// a list item, merge mode drops the run outright; strict mode drops
// every indented blank and collapses the empty lines, if any, down to
// a single empty separator.
func resolveRun(out, run []string, afterItem, strict bool) []string {
	if len(run) == 0 {
		return out
	}
	if !afterItem {
		return append(out, run...)
	}
	if strict {
		for _, b := range run {
			if b == "" {
				return append(out, "")
			}
		}
	}
	return out
}

package normalize

import "regexp"

// listItemRE matches the marker prefix of a Markdown list item: a
// bullet (-, +, *) with an optional task checkbox, or an ordered
// marker (digits followed by . or ), each with required trailing
// whitespace. Content after the marker is never inspected, so an
// empty item like "- " classifies the same as a populated one.
var listItemRE = regexp.MustCompile(`^[ \t]*(?:[-+*](?:[ \t]+\[[ xX]\])?|[0-9]+[.)])[ \t]`)

// IsListItem reports whether line begins with a bullet, task, or
// ordered list marker, at any indentation.
func IsListItem(line string) bool {
	return listItemRE.MatchString(line)
}

// IsBlank reports whether line contains only spaces and tabs.
// The empty string is blank.
func IsBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}

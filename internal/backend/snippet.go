package backend

import (
	"regexp"
	"strings"
)

// ArgumentKind is the type of a value captured from a step name by a snippet pattern.
type ArgumentKind string

const (
	// ArgumentString is captured from a double-quoted string.
	ArgumentString ArgumentKind = "string"
	// ArgumentInt is captured from an integer.
	ArgumentInt ArgumentKind = "int"
)

var argumentPattern = regexp.MustCompile(`"([^"]*)"|(\d+)`)

// SnippetPattern creates an anchored regular expression matching the step name for use in snippets. Double-quoted
// strings and integers in the name are replaced with capture groups, everything else is matched literally.
func SnippetPattern(name string) (string, []ArgumentKind) {
	var pattern strings.Builder
	var args []ArgumentKind
	pattern.WriteString("^")
	last := 0
	for _, loc := range argumentPattern.FindAllStringSubmatchIndex(name, -1) {
		pattern.WriteString(regexp.QuoteMeta(name[last:loc[0]]))
		if loc[2] >= 0 {
			pattern.WriteString(`"([^"]*)"`)
			args = append(args, ArgumentString)
		} else {
			pattern.WriteString(`(\d+)`)
			args = append(args, ArgumentInt)
		}
		last = loc[1]
	}
	pattern.WriteString(regexp.QuoteMeta(name[last:]))
	pattern.WriteString("$")
	return pattern.String(), args
}

package gofunc

import (
	"fmt"
	"strconv"
	"strings"

	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/scenario"
)

// GenerateSnippet creates a step definition stub for an undefined step. Double-quoted strings in the step name
// become string arguments, integers become int arguments.
func GenerateSnippet(step scenario.Step) string {
	pattern, args := backend.SnippetPattern(step.Name)
	params := []string{"ctx *gofunc.Context"}
	for i, kind := range args {
		params = append(params, fmt.Sprintf("arg%d %s", i+1, kind))
	}
	return fmt.Sprintf(
		"gofunc.Step(gluePath, %s, func(%s) error {\n"+
			"\t// %s\n"+
			"\treturn gofunc.ErrPending\n"+
			"})",
		quotePattern(pattern),
		strings.Join(params, ", "),
		strings.TrimSpace(step.Keyword)+" "+step.Name,
	)
}

// quotePattern writes the pattern as a raw string literal unless it contains a backtick.
func quotePattern(pattern string) string {
	if strings.Contains(pattern, "`") {
		return strconv.Quote(pattern)
	}
	return "`" + pattern + "`"
}

package report

import (
	"fmt"
	"io"
	"strconv"

	"go.flow.arcalot.io/stepflow/internal/tableprinter"
	"go.flow.arcalot.io/stepflow/internal/tidy"
	"go.flow.arcalot.io/stepflow/scenario"
)

// PrintSummary writes a table with the number of steps per status. Statuses without steps are left out.
func PrintSummary(w io.Writer, counts map[Status]int) error {
	var rows [][]string
	total := 0
	for _, status := range Statuses {
		count := counts[status]
		if count == 0 {
			continue
		}
		total += count
		rows = append(rows, []string{string(status), strconv.Itoa(count)})
	}
	rows = append(rows, []string{"total", strconv.Itoa(total)})
	return tableprinter.PrintTable(w, []string{"status", "steps"}, rows)
}

// PrintSnippets writes the snippets for undefined steps, separated by blank lines.
func PrintSnippets(w io.Writer, snippets []string) error {
	if len(snippets) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "You can implement the undefined steps with these snippets:"); err != nil {
		return err
	}
	for _, snippet := range snippets {
		if _, err := fmt.Fprintf(w, "\n%s\n", snippet); err != nil {
			return err
		}
	}
	return nil
}

// PrintUndefinedSteps writes a table of the undefined steps grouped by the document they were found in.
func PrintUndefinedSteps(w io.Writer, steps []scenario.Step) error {
	if len(steps) == 0 {
		return nil
	}
	groups := map[string][]string{}
	for _, step := range steps {
		groups[step.Location.URI] = append(groups[step.Location.URI], step.Text())
	}
	return tableprinter.PrintTable(w, []string{"document", "undefined step"}, tidy.UnnestLongerSorted(groups))
}

// Package tableprinter provides behavior to write tabular data to a given
// destination.
package tableprinter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = tabwriter.FilterHTML
)

// NewTabWriter returns a tabwriter that transforms tabbed columns into aligned
// text.
func NewTabWriter(output io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(output, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
}

// PrintTable writes a table with upper-cased headers to the output. Rows
// shorter than the header are padded with empty cells, longer rows are cut.
func PrintTable(output io.Writer, headers []string, rows [][]string) error {
	w := NewTabWriter(output)

	upper := make([]string, len(headers))
	for i, col := range headers {
		upper[i] = strings.ToUpper(col)
	}
	if _, err := fmt.Fprintln(w, strings.Join(upper, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return w.Flush()
}

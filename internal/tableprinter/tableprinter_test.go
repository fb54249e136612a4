package tableprinter_test

import (
	"bytes"
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/stepflow/internal/tableprinter"
)

const basicTable = `STATUS      STEPS
passed      2
undefined   1
`

func TestPrintTable(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	headers := []string{"status", "steps"}
	rows := [][]string{
		{"passed", "2"},
		{"undefined", "1"},
	}
	assert.NoError(t, tableprinter.PrintTable(buf, headers, rows))
	assert.Equals(t, buf.String(), basicTable)
}

const shortRowTable = "KIND   PATH\n" +
	"go     \n" +
	"yaml   glue\n"

func TestPrintTableShortRow(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	assert.NoError(t, tableprinter.PrintTable(buf, []string{"kind", "path"}, [][]string{
		{"go"},
		{"yaml", "glue", "ignored"},
	}))
	assert.Equals(t, buf.String(), shortRowTable)
}

// Package tidy reshapes grouped values into sorted two-column rows for printing.
package tidy

import "sort"

// UnnestLongerSorted turns a map of groups into one row per value. Groups and the values within a group are
// sorted, duplicate values of a group are listed once.
func UnnestLongerSorted(twoColDf map[string][]string) [][]string {
	df := [][]string{}
	groupNames := make([]string, 0, len(twoColDf))
	for name := range twoColDf {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)
	for _, name := range groupNames {
		groupRows := append([]string(nil), twoColDf[name]...)
		sort.Strings(groupRows)
		for i, rowValue := range groupRows {
			if i > 0 && groupRows[i-1] == rowValue {
				continue
			}
			df = append(df, []string{name, rowValue})
		}
	}
	return df
}

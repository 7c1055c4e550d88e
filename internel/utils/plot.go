package utils

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// PlotSteps draws a step waveform as text. Each distinct value gets a row,
// highest first, and each symbol is two columns wide.
//
//	 1 |--  --
//	 0 |  --
func PlotSteps[T constraints.Integer](values []T) string {
	rows := slices.Clone(values)
	slices.Sort(rows)
	rows = slices.Compact(rows)
	slices.Reverse(rows)

	var sb strings.Builder
	for _, row := range rows {
		var line strings.Builder
		fmt.Fprintf(&line, "%2d |", row)
		for _, v := range values {
			if v == row {
				line.WriteString("--")
			} else {
				line.WriteString("  ")
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package render formats simulation results as text tables for the CLI.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sangn12/disksched/internal/disksim"
)

// Title prints a dashed banner around a section title.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Steps prints the service order and the per-leg movement table for one run.
// Boundary stops made by the sweep algorithms show up as their own legs.
func Steps(w io.Writer, result disksim.Result) {
	_, _ = fmt.Fprintln(w, "Service order:", joinInts(result.Order, " -> "))
	_, _ = fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "From", "To", "Distance", "Movement"})
	for i, step := range result.Steps {
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(step.From),
			strconv.Itoa(step.To),
			strconv.Itoa(step.Movement),
			bar(step.From, step.To),
		})
	}
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Total\n%d", result.TotalMovement), ""})
	table.Render()
}

// Comparison prints every algorithm's total side by side, best (lowest
// movement, so least implied seek time) first.
func Comparison(w io.Writer, results []disksim.Result) {
	sorted := append([]disksim.Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalMovement < sorted[j].TotalMovement
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Total Movement", "Service Order"})
	for _, r := range sorted {
		table.Append([]string{
			r.Algorithm.String(),
			strconv.Itoa(r.TotalMovement),
			joinInts(r.Order, " "),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w, "Lower total movement = better (less seek time).")
}

// bar draws head movement as a capped run of '>' (toward higher cylinders)
// or '<' (toward lower), '-' for none.
func bar(from, to int) string {
	distance := to - from
	if distance < 0 {
		distance = -distance
	}

	length := distance / 5
	if length < 1 {
		length = 1
	}
	if length > 30 {
		length = 30
	}

	switch {
	case to > from:
		return strings.Repeat(">", length)
	case to < from:
		return strings.Repeat("<", length)
	}
	return "-"
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

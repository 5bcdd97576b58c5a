// Package report renders a stats.Summary as the three lines printed by the CLI
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"peoplestats/internal/core/stats"
	perr "peoplestats/internal/platform/errors"
)

// AverageLine renders the average sibling count
func AverageLine(avg int) string { return "Average siblings: " + strconv.Itoa(avg) }

// FoodsLine renders ranked foods as name(count) pairs
func FoodsLine(foods []stats.FoodCount) string {
	parts := make([]string, len(foods))
	for i, f := range foods {
		parts[i] = fmt.Sprintf("%s(%d)", f.Food, f.Count)
	}
	return "Three favourite foods: " + strings.Join(parts, ", ")
}

// MonthsLine renders month counts as MonthName(count) pairs in the given order
func MonthsLine(months []stats.MonthCount) string {
	parts := make([]string, len(months))
	for i, m := range months {
		parts[i] = fmt.Sprintf("%s(%d)", m.Month, m.Count)
	}
	return "Birth Months: " + strings.Join(parts, ", ")
}

// Lines returns the report lines in their fixed order
func Lines(s stats.Summary) []string {
	return []string{AverageLine(s.AverageSiblings), FoodsLine(s.TopFoods), MonthsLine(s.BirthMonths)}
}

// Write prints the report to w in a single write
func Write(w io.Writer, s stats.Summary) error {
	var b strings.Builder
	for _, l := range Lines(s) {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "write report")
	}
	return nil
}

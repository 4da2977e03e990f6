// Package render formats aggregation results for terminal output.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/goprofile/internal/profile"
)

// TableOptions controls table rendering.
type TableOptions struct {
	// Color enables ANSI styling of the header row.
	Color bool
}

const columnGap = "   "

// Table renders the result as a two-column table: property name and the
// ordered set of observed type labels. Column widths are display-cell
// widths, so wide runes in property names keep the columns aligned.
func Table(res *profile.Result, opts *TableOptions) string {
	if opts == nil {
		opts = &TableOptions{}
	}

	nameHeader, valueHeader := "Name", "Value"

	nameWidth := runewidth.StringWidth(nameHeader)
	valueWidth := runewidth.StringWidth(valueHeader)

	values := make([]string, len(res.Entries))
	for i, e := range res.Entries {
		values[i] = strings.Join(e.Labels, ", ")
		if w := runewidth.StringWidth(e.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(values[i]); w > valueWidth {
			valueWidth = w
		}
	}

	var b strings.Builder

	writeRow := func(name, value string, styled bool) {
		left := runewidth.FillRight(name, nameWidth)
		if styled && opts.Color {
			left = color.Bold.Sprint(left)
			value = color.Bold.Sprint(value)
		}
		b.WriteString(left)
		b.WriteString(columnGap)
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeRow(nameHeader, valueHeader, true)
	writeRow(strings.Repeat("-", nameWidth), strings.Repeat("-", valueWidth), false)

	for i, e := range res.Entries {
		writeRow(e.Name, values[i], false)
	}

	return b.String()
}

// Summary renders the session statistics as a single line.
func Summary(res *profile.Result) string {
	return fmt.Sprintf("Profiled %d record(s): %d propert%s, %d value(s) read (%d null) in %s",
		res.Stats.RecordsObserved,
		res.Stats.PropertiesSeen,
		pluralY(res.Stats.PropertiesSeen),
		res.Stats.ValuesRead,
		res.Stats.NullValues,
		res.Stats.Duration.Round(time.Microsecond),
	)
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

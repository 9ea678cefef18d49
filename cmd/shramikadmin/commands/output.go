package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// card is one summary tile.
type card struct {
	label string
	value string
}

func printCards(w io.Writer, cards ...card) {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.label + ": " + c.value
	}
	fmt.Fprintln(w, strings.Join(parts, " | "))
	fmt.Fprintln(w)
}

// newTable returns a tabwriter with the header row written.
func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func join(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("Jan 2, 2006")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Package render prints resource rows as plain-text tables for the line
// oriented front ends.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/backoffice/internal/client/resource"
)

// MaxCell is the widest cell printed; longer values are cut with "...".
const MaxCell = 40

// Table prints columns and rows aligned, with a dashed rule under the
// header. An empty row set prints "No records.".
func Table(w io.Writer, columns []string, rows []resource.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No records.")
		return err
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, c := range columns {
		header[i] = strings.ToUpper(c)
		rule[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(rule, "\t"))
	for _, r := range rows {
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = Truncate(c, MaxCell)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Record prints one row as "column: value" lines.
func Record(w io.Writer, columns []string, row resource.Row) error {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)
	for i, c := range columns {
		v := ""
		if i < len(row.Cells) {
			v = row.Cells[i]
		}
		fmt.Fprintf(tw, "%s:\t%s\n", c, v)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Truncate cuts s to at most n characters, ending in "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

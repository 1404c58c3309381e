package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"namefold/internal/report"
)

// isTerminal reports whether w is an interactive terminal; piped output
// falls back to the plain renderer so downstream tools get stable text.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderGroupTable(result report.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Size", "Members"})

	for i, group := range result.Groups {
		for j, member := range group.Members {
			if j == 0 {
				tw.AppendRow(table.Row{i + 1, group.Size(), member})
				continue
			}
			tw.AppendRow(table.Row{"", "", member})
		}
		tw.AppendSeparator()
	}
	tw.AppendFooter(table.Row{"", "", strconv.Itoa(result.Stats.Groups) + " groups, " +
		strconv.Itoa(result.Stats.Duplicates) + " duplicates"})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

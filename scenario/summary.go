package scenario

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// RenderSummary prints one row per executed step.
func RenderSummary(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Step", "Lines", "Duration", "ID"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := lo.Map(results, func(r Result, i int) []string {
		return []string{
			strconv.Itoa(i + 1),
			r.Name,
			strconv.Itoa(len(r.Lines)),
			r.Duration.Round(time.Microsecond).String(),
			r.ID.String()[:8],
		}
	})
	table.AppendBulk(rows)
	table.Render()
}

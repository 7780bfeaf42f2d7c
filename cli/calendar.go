package cli

import (
	"io"
	"pqdate/core"
	"pqdate/domain"
	"pqdate/services"

	"github.com/olekukonko/tablewriter"
)

func (a *app) renderCalendar(w io.Writer, months []services.MonthSummary) error {
	header := []string{"Month", "Start", "End", "Last business day"}
	if a.display.ShowLocal {
		header = append(header, "Local")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range months {
		row := []string{m.Month.String()}
		for _, i := range []domain.Instant{m.Start, m.End, m.LastBusinessDay} {
			s, err := core.FormatISO(i)
			if err != nil {
				return err
			}
			row = append(row, s)
		}
		if a.display.ShowLocal {
			desc, err := a.Service.Describe(m.LastBusinessDay, a.options())
			if err != nil {
				return err
			}
			row = append(row, desc.Local)
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

package export

import (
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/motorsim/internal/motor"
)

// WriteXLSX writes a workbook with the channels, the alerts and the
// summary statistics on separate sheets.
func WriteXLSX(w io.Writer, res *motor.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeChannels(f, res); err != nil {
		return err
	}
	if err := writeAlerts(f, res); err != nil {
		return err
	}
	if err := writeSummary(f, res); err != nil {
		return err
	}
	return f.Write(w)
}

func writeChannels(f *excelize.File, res *motor.Result) error {
	sheet := "Channels"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	n := res.GrainCount()
	header := make([]interface{}, 0, 4+4*n)
	for _, h := range CSVHeader(n) {
		header = append(header, h)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i := 0; i < res.Len(); i++ {
		row := []interface{}{res.Time[i], res.KN[i], res.Pressure[i], res.Force[i]}
		for g := 0; g < n; g++ {
			row = append(row, res.Mass[i][g], res.MassFlow[i][g], res.MassFlux[i][g], res.Regression[i][g])
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

func writeAlerts(f *excelize.File, res *motor.Result) error {
	sheet := "Alerts"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Level", "Type", "Location", "Description"}); err != nil {
		return err
	}
	for i, a := range res.Alerts {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{a.Level.String(), a.Type.String(), a.Location, a.Description}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, res *motor.Result) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	st := res.Stats()
	values := st.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := [][]interface{}{
		{"designation", st.Designation},
		{"success", res.Success},
	}
	for _, k := range keys {
		rows = append(rows, []interface{}{k, values[k]})
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

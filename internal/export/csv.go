package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/motorsim/internal/motor"
)

var ErrMalformedCSV = errors.New("export: malformed channel csv")

var grainColumns = []string{"mass", "massFlow", "massFlux", "regression"}

// CSVHeader lists the columns WriteCSV emits for a stack of n grains.
func CSVHeader(n int) []string {
	header := []string{"time", "kn", "pressure", "force"}
	for g := 1; g <= n; g++ {
		for _, c := range grainColumns {
			header = append(header, fmt.Sprintf("%s_%d", c, g))
		}
	}
	return header
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes one row per sample. Values keep full precision so
// ReadCSV restores the channels exactly.
func WriteCSV(w io.Writer, res *motor.Result) error {
	cw := csv.NewWriter(w)
	n := res.GrainCount()
	if err := cw.Write(CSVHeader(n)); err != nil {
		return err
	}

	for i := 0; i < res.Len(); i++ {
		row := []string{
			formatFloat(res.Time[i]),
			formatFloat(res.KN[i]),
			formatFloat(res.Pressure[i]),
			formatFloat(res.Force[i]),
		}
		for g := 0; g < n; g++ {
			row = append(row,
				formatFloat(res.Mass[i][g]),
				formatFloat(res.MassFlow[i][g]),
				formatFloat(res.MassFlux[i][g]),
				formatFloat(res.Regression[i][g]),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV restores the channels written by WriteCSV. Alerts and the success
// flag are not part of the file.
func ReadCSV(r io.Reader) (*motor.Result, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedCSV)
	}

	cols := len(records[0]) - 4
	if cols < 0 || cols%len(grainColumns) != 0 {
		return nil, fmt.Errorf("%w: %d columns", ErrMalformedCSV, len(records[0]))
	}
	n := cols / len(grainColumns)

	res := &motor.Result{}
	for line, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line+2, err)
			}
			vals[j] = v
		}

		res.Time = append(res.Time, vals[0])
		res.KN = append(res.KN, vals[1])
		res.Pressure = append(res.Pressure, vals[2])
		res.Force = append(res.Force, vals[3])

		mass, flow, flux, reg := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
		for g := 0; g < n; g++ {
			base := 4 + g*len(grainColumns)
			mass[g], flow[g], flux[g], reg[g] = vals[base], vals[base+1], vals[base+2], vals[base+3]
		}
		res.Mass = append(res.Mass, mass)
		res.MassFlow = append(res.MassFlow, flow)
		res.MassFlux = append(res.MassFlux, flux)
		res.Regression = append(res.Regression, reg)
	}
	return res, nil
}

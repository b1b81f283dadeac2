// Package units converts between the SI units the engine works in and the
// display units offered by the CLI.
package units

import (
	"errors"
	"fmt"
)

var ErrUnknownConversion = errors.New("units: unknown conversion")

var Labels = map[string]string{
	"m":          "Length",
	"N":          "Force",
	"Ns":         "Impulse",
	"Pa":         "Pressure",
	"kg":         "Mass",
	"kg/m^3":     "Density",
	"kg/(m^2*s)": "Mass Flux",
}

type conversion struct {
	from, to string
	rate     float64
}

var table = []conversion{
	{"m", "cm", 100},
	{"m", "mm", 1000},
	{"m", "in", 39.37},
	{"m", "ft", 3.28},

	{"N", "lbf", 0.2248},

	{"Ns", "lbfs", 0.2248},

	{"Pa", "MPa", 1.0 / 1000000},
	{"Pa", "psi", 1.0 / 6895},

	{"kg", "g", 1000},
	{"kg", "lb", 2.205},
	{"kg", "oz", 2.205 * 16},

	{"kg/m^3", "lb/in^3", 3.61273e-5},

	{"kg/(m^2*s)", "lb/(in^2*s)", 0.001422},
}

// Conversions lists unit itself followed by every unit it converts to
// directly.
func Conversions(unit string) []string {
	out := []string{unit}
	for _, c := range table {
		switch unit {
		case c.from:
			out = append(out, c.to)
		case c.to:
			out = append(out, c.from)
		}
	}
	return out
}

func Rate(from, to string) (float64, error) {
	if from == to {
		return 1, nil
	}
	for _, c := range table {
		if c.from == from && c.to == to {
			return c.rate, nil
		}
		if c.to == from && c.from == to {
			return 1 / c.rate, nil
		}
	}
	return 0, fmt.Errorf("%w: %s to %s", ErrUnknownConversion, from, to)
}

func Convert(q float64, from, to string) (float64, error) {
	rate, err := Rate(from, to)
	if err != nil {
		return 0, err
	}
	return q * rate, nil
}

func ConvertAll(qs []float64, from, to string) ([]float64, error) {
	rate, err := Rate(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = q * rate
	}
	return out, nil
}

package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/motorsim/internal/motor"
	"github.com/san-kum/motorsim/internal/units"
)

// Channels lists the plottable channel names.
var Channels = []string{"force", "pressure", "kn", "mass", "massFlux"}

// Series is one plottable line in display units.
type Series struct {
	Name   string
	Unit   string
	Values []float64
}

// ChannelSeries extracts a channel and converts it to the display unit.
// Per-grain channels are reduced to one value per sample: the total for
// mass, the stack maximum for mass flux. An empty unit keeps SI.
func ChannelSeries(res *motor.Result, name, unit string) (Series, error) {
	var si string
	var vals []float64
	switch name {
	case "force":
		si, vals = "N", res.Force
	case "pressure":
		si, vals = "Pa", res.Pressure
	case "kn":
		return Series{Name: name, Values: res.KN}, nil
	case "mass":
		si = "kg"
		for _, row := range res.Mass {
			total := 0.0
			for _, m := range row {
				total += m
			}
			vals = append(vals, total)
		}
	case "massFlux":
		si = "kg/(m^2*s)"
		for _, row := range res.MassFlux {
			peak := 0.0
			for _, f := range row {
				peak = max(peak, f)
			}
			vals = append(vals, peak)
		}
	default:
		return Series{}, fmt.Errorf("unknown channel: %s (available: %v)", name, Channels)
	}

	if unit == "" {
		unit = si
	}
	conv, err := units.ConvertAll(vals, si, unit)
	if err != nil {
		return Series{}, err
	}
	return Series{Name: name, Unit: unit, Values: conv}, nil
}

func (s Series) Caption(burnTime float64) string {
	if s.Unit == "" {
		return fmt.Sprintf("%s over %.2f s", s.Name, burnTime)
	}
	return fmt.Sprintf("%s (%s) over %.2f s", s.Name, s.Unit, burnTime)
}

// Plot draws a series with asciigraph.
func Plot(s Series, burnTime float64, width, height int) string {
	if len(s.Values) == 0 {
		return Subtle.Render("no samples")
	}
	return asciigraph.Plot(s.Values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(s.Caption(burnTime)),
	)
}

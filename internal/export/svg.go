package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/motorsim/internal/motor"
)

const (
	thrustColor   = "#ff8c00"
	pressureColor = "#00bfff"
)

// curvePath scales a series into the plot box, leaving a 10% margin
// above the peak.
func curvePath(xs, ys []float64, width, height int) string {
	maxX, maxY := 0.0, 0.0
	for i := range xs {
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}
	if maxX == 0 {
		maxX = 1
	}
	if maxY == 0 {
		maxY = 1
	}
	maxY *= 1.1

	var sb strings.Builder
	for i := range xs {
		x := xs[i] / maxX * float64(width)
		y := float64(height) - ys[i]/maxY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	return sb.String()
}

// ThrustCurveSVG draws thrust and chamber pressure against time, each
// scaled to its own peak.
func ThrustCurveSVG(res *motor.Result, width, height int) string {
	if res.Len() < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, c := range []struct {
		name  string
		color string
		ys    []float64
	}{
		{"thrust", thrustColor, res.Force},
		{"pressure", pressureColor, res.Pressure},
	} {
		sb.WriteString(fmt.Sprintf(`<path id="%s" fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, c.name, c.color, curvePath(res.Time, c.ys, width, height)))
	}

	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="%s" font-family="monospace" font-size="12">thrust</text>
<text x="8" y="32" fill="%s" font-family="monospace" font-size="12">pressure</text>
`, thrustColor, pressureColor))
	sb.WriteString("</svg>")
	return sb.String()
}

func WriteSVG(w io.Writer, res *motor.Result, width, height int) error {
	_, err := io.WriteString(w, ThrustCurveSVG(res, width, height))
	return err
}

// Package geometry holds the plain shape formulas shared by the grain
// models and a Euclidean distance transform used to regress rasterized
// cross sections.
package geometry

import "math"

func CircleArea(d float64) float64 {
	return (d / 2) * (d / 2) * math.Pi
}

func CircleDiameterFromArea(a float64) float64 {
	return 2 * math.Sqrt(a/math.Pi)
}

// TubeArea is the lateral area of a cylinder of diameter d and height h.
func TubeArea(d, h float64) float64 {
	return d * math.Pi * h
}

// CylinderArea includes both end caps.
func CylinderArea(d, h float64) float64 {
	return 2*CircleArea(d) + TubeArea(d, h)
}

func CylinderVolume(d, h float64) float64 {
	return h * CircleArea(d)
}

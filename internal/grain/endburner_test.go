package grain

import (
	"math"
	"testing"
)

func TestEndBurner(t *testing.T) {
	e := NewEndBurner()
	e.Diameter = 0.05
	e.Length = 0.2

	face := math.Pi / 4 * 0.05 * 0.05
	if got := e.SurfaceAreaAtRegression(0.1); math.Abs(got-face) > 1e-12 {
		t.Errorf("surface = %v, want %v", got, face)
	}
	if got := e.VolumeAtRegression(0.05); math.Abs(got-face*0.15) > 1e-12 {
		t.Errorf("volume = %v, want %v", got, face*0.15)
	}
	if got := e.VolumeAtRegression(0.3); got != 0 {
		t.Errorf("volume past the end = %v, want 0", got)
	}
	if got := e.WebLeft(0.05); math.Abs(got-0.15) > 1e-12 {
		t.Errorf("web = %v, want 0.15", got)
	}
	if _, ok := e.PortArea(0); ok {
		t.Error("end burner must not report a port")
	}
	if got := e.PeakMassFlux(1, 0.01, 0, 0.001, 1800); got != 0 {
		t.Errorf("mass flux = %v, want 0", got)
	}
	if errs := e.GeometryErrors(); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
	if errs := NewEndBurner().GeometryErrors(); len(errs) != 2 {
		t.Errorf("expected 2 errors for an empty grain, got %v", errs)
	}
}

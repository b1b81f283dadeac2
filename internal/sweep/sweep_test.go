package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/grain"
	"github.com/san-kum/motorsim/internal/motor"
)

func TestApply(t *testing.T) {
	tests := []struct {
		param   string
		check   func(d motor.Definition) float64
		wantErr bool
	}{
		{"nozzle.throat", func(d motor.Definition) float64 { return d.Nozzle.Throat }, false},
		{"propellant.density", func(d motor.Definition) float64 { return d.Propellant.Density }, false},
		{"config.timestep", func(d motor.Definition) float64 { return d.Config.Timestep }, false},
		{"config.mapDim", func(d motor.Definition) float64 { return float64(d.Config.MapDim) }, false},
		{"grain.2.coreDiameter", func(d motor.Definition) float64 {
			return d.Grains[1].Properties["coreDiameter"].(float64)
		}, false},
		{"nozzle.throat.extra", nil, true},
		{"nozzle", nil, true},
		{"nozzle.convergence", nil, true},
		{"grain.3.coreDiameter", nil, true},
		{"grain.0.coreDiameter", nil, true},
		{"grain.1.numFins", nil, true},
		{"chamber.volume", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			def := config.GetPreset("bates-knsu")
			err := Apply(def, tt.param, 500)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnknownParam) {
					t.Errorf("expected ErrUnknownParam, got %v", err)
				}
				return
			}
			if got := tt.check(*def); got != 500 {
				t.Errorf("value = %v, want 500", got)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"1,2, 3", []float64{1, 2, 3}, false},
		{"0:1:5", []float64{0, 0.25, 0.5, 0.75, 1}, false},
		{"2:4:1", []float64{2}, false},
		{"1:2", nil, true},
		{"a,b", nil, true},
		{"0:x:3", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseValues(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if math.Abs(got[i]-tt.want[i]) > 1e-12 {
				t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}

func TestSweep_Run(t *testing.T) {
	base := *config.GetPreset("bates-knsu")
	throats := []float64{0.015, 0.017, 0.019, 0.5}

	points, err := New("nozzle.throat", throats, 3).Run(context.Background(), base)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != len(throats) {
		t.Fatalf("got %d points", len(points))
	}
	for i, p := range points[:3] {
		if p.Value != throats[i] || !p.Success || p.Err != nil {
			t.Errorf("point %d = %+v", i, p)
		}
	}
	if points[0].Stats.MaxPressure <= points[2].Stats.MaxPressure {
		t.Error("a smaller throat should raise the chamber pressure")
	}
	if points[3].Success {
		t.Error("a throat wider than the grain should not burn to completion")
	}

	best, ok := Best(points, "maxPressure", false)
	if !ok || best.Value != 0.019 {
		t.Errorf("best = %+v, %v", best, ok)
	}
	best, ok = Best(points, "maxPressure", true)
	if !ok || best.Value != 0.015 {
		t.Errorf("best = %+v, %v", best, ok)
	}
	if _, ok := Best(points, "volume", true); ok {
		t.Error("unknown metric should not select a point")
	}

	if base.Nozzle.Throat != 0.017 {
		t.Error("sweep modified the base definition")
	}
}

func TestSweep_PointErrors(t *testing.T) {
	base := *config.GetPreset("finocyl-knsu")
	base.Config.MapDim = 250

	points, err := New("grain.2.numFins", []float64{2.5}, 1).Run(context.Background(), base)
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(points[0].Err, grain.ErrBadProperty) {
		t.Errorf("expected a property error, got %v", points[0].Err)
	}

	if _, err := New("nozzle.length", []float64{1}, 1).Run(context.Background(), base); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestSweep_OutOfBounds(t *testing.T) {
	base := *config.GetPreset("bates-knsu")

	points, err := New("config.burnoutThrustThres", []float64{-1, 0.1}, 1).Run(context.Background(), base)
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(points[0].Err, config.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", points[0].Err)
	}
	if points[0].Success {
		t.Error("out of bounds point was simulated")
	}
	if points[1].Err != nil || !points[1].Success {
		t.Errorf("in-bounds point failed: %+v", points[1])
	}
}

func TestSweep_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	points, err := New("nozzle.throat", []float64{0.015, 0.017}, 2).Run(ctx, *config.GetPreset("bates-knsu"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
	for _, p := range points {
		if p.Success {
			t.Error("cancelled sweep reported a completed run")
		}
	}
}

package motor

import (
	"fmt"
	"math"

	"github.com/san-kum/motorsim/internal/alert"
)

// StandardGravity converts impulse per mass into ISP seconds.
const StandardGravity = 9.80665

type Stats struct {
	BurnTime        float64 `json:"burnTime"`
	InitialKN       float64 `json:"initialKN"`
	PeakKN          float64 `json:"peakKN"`
	AveragePressure float64 `json:"averagePressure"`
	MaxPressure     float64 `json:"maxPressure"`
	Impulse         float64 `json:"impulse"`
	AverageForce    float64 `json:"averageForce"`
	MaxForce        float64 `json:"maxForce"`
	PropellantMass  float64 `json:"propellantMass"`
	ISP             float64 `json:"isp"`
	PeakMassFlux    float64 `json:"peakMassFlux"`
	PeakMassFluxAt  string  `json:"peakMassFluxAt"`
	Designation     string  `json:"designation"`
	ErrorCount      int     `json:"errors"`
	WarningCount    int     `json:"warnings"`
}

func (r *Result) BurnTime() float64 { return r.Time.Last() }

func (r *Result) InitialKN() float64 {
	if len(r.KN) < 2 {
		return 0
	}
	return r.KN[1]
}

func (r *Result) AveragePressure() float64 {
	if len(r.Pressure) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range r.Pressure {
		sum += p
	}
	return sum / float64(len(r.Pressure))
}

// Impulse integrates thrust with a rectangular sum over the sample times.
func (r *Result) Impulse() float64 {
	imp, last := 0.0, 0.0
	for i, f := range r.Force {
		imp += f * (r.Time[i] - last)
		last = r.Time[i]
	}
	return imp
}

func (r *Result) AverageForce() float64 {
	bt := r.BurnTime()
	if bt <= 0 {
		return 0
	}
	return r.Impulse() / bt
}

func (r *Result) PropellantMass() float64 {
	if len(r.Mass) == 0 {
		return 0
	}
	total := 0.0
	for _, m := range r.Mass[0] {
		total += m
	}
	return total
}

func (r *Result) ISP() float64 {
	mass := r.PropellantMass()
	if mass <= 0 {
		return 0
	}
	return r.Impulse() / (mass * StandardGravity)
}

// Designation is the letter impulse class followed by the average thrust,
// e.g. "H120".
func (r *Result) Designation() string {
	imp := r.Impulse()
	if imp <= 1.25 {
		return "N/A"
	}
	class := rune(int(math.Log2(imp/1.25)) + 'A')
	return fmt.Sprintf("%c%d", class, int(r.AverageForce()))
}

func (r *Result) Stats() Stats {
	flux, at := r.MassFlux.Peak()
	loc := ""
	if at >= 0 {
		loc = grainLocation(at)
	}
	return Stats{
		BurnTime:        r.BurnTime(),
		InitialKN:       r.InitialKN(),
		PeakKN:          r.KN.Max(),
		AveragePressure: r.AveragePressure(),
		MaxPressure:     r.Pressure.Max(),
		Impulse:         r.Impulse(),
		AverageForce:    r.AverageForce(),
		MaxForce:        r.Force.Max(),
		PropellantMass:  r.PropellantMass(),
		ISP:             r.ISP(),
		PeakMassFlux:    flux,
		PeakMassFluxAt:  loc,
		Designation:     r.Designation(),
		ErrorCount:      len(r.AlertsByLevel(alert.Error)),
		WarningCount:    len(r.AlertsByLevel(alert.Warning)),
	}
}

// Values flattens the numeric statistics for storage and sweeps.
func (s Stats) Values() map[string]float64 {
	return map[string]float64{
		"burnTime":        s.BurnTime,
		"initialKN":       s.InitialKN,
		"peakKN":          s.PeakKN,
		"averagePressure": s.AveragePressure,
		"maxPressure":     s.MaxPressure,
		"impulse":         s.Impulse,
		"averageForce":    s.AverageForce,
		"maxForce":        s.MaxForce,
		"propellantMass":  s.PropellantMass,
		"isp":             s.ISP,
		"peakMassFlux":    s.PeakMassFlux,
	}
}

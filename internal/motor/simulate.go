package motor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/motorsim/internal/alert"
)

// ProgressFunc receives the burn progress in [0, 1] once per step and
// returns true to cancel the run.
type ProgressFunc func(progress float64) bool

// Simulate runs the motor until thrust tails off, the callback cancels, or
// validation rejects it. A rejected result carries alerts only; a cancelled
// one keeps its partial channels with Success false.
func (m *Motor) Simulate(onProgress ProgressFunc) *Result {
	res := &Result{Alerts: m.Validate()}
	if res.Rejected() {
		return res
	}

	for _, g := range m.Grains {
		g.SimulationSetup(m.Config.grainSetup())
	}

	n := len(m.Grains)
	ts := m.Config.Timestep
	reg := make([]float64, n)
	initialWeb := make([]float64, n)
	mass := make([]float64, n)
	for i, g := range m.Grains {
		initialWeb[i] = g.WebLeft(0)
		mass[i] = g.VolumeAtRegression(0) * m.Propellant.Density
	}

	res.append(sample{
		mass:     mass,
		massFlow: make([]float64, n),
		massFlux: make([]float64, n),
		regr:     make([]float64, n),
	})

	kn := m.KN(reg)
	pc := m.PressureFromKN(kn)
	res.append(sample{
		time:     ts,
		kn:       kn,
		pressure: pc,
		force:    m.Force(pc),
		mass:     append([]float64(nil), mass...),
		massFlow: make([]float64, n),
		massFlux: make([]float64, n),
		regr:     make([]float64, n),
	})

	if ratio, ok := m.PortThroatRatio(); ok && ratio < m.Config.MinPortThroat {
		desc := fmt.Sprintf("Initial port/throat ratio of %s was less than %s",
			formatRatio(math.Round(ratio*1000)/1000), formatRatio(m.Config.MinPortThroat))
		res.Alerts = append(res.Alerts, alert.New(alert.Warning, alert.Constraint, desc, "N/A"))
	}

	for !thrustBurnout(res.Force, m.Config.BurnoutThrustThres) {
		m.step(res, reg)
		if onProgress != nil && onProgress(burnProgress(m, reg, initialWeb)) {
			return res
		}
	}

	res.Success = true
	if res.MassFlux.Max() > m.Config.MaxMassFlux {
		res.Alerts = append(res.Alerts, alert.New(alert.Warning, alert.Constraint, "Peak mass flux exceeded configured limit", "Motor"))
	}
	if res.Pressure.Max() > m.Config.MaxPressure {
		res.Alerts = append(res.Alerts, alert.New(alert.Warning, alert.Constraint, "Max pressure exceeded configured limit", "Motor"))
	}
	return res
}

// step advances every grain by one timestep, forward to aft, threading the
// cumulative mass flow through the stack, and appends the new sample.
func (m *Motor) step(res *Result, reg []float64) {
	n := len(m.Grains)
	ts := m.Config.Timestep
	prop := m.Propellant
	prevMass := res.Mass.Last()
	dr := ts * prop.BurnRate(res.Pressure.Last())

	mass := make([]float64, n)
	flow := make([]float64, n)
	flux := make([]float64, n)
	massFlow := 0.0
	for i, g := range m.Grains {
		if !g.IsWebLeft(reg[i], m.Config.BurnoutWebThres) {
			mass[i] = prevMass[i]
			flow[i] = massFlow
			continue
		}
		flux[i] = g.PeakMassFlux(massFlow, ts, reg[i], dr, prop.Density)
		mass[i] = g.VolumeAtRegression(reg[i]+dr) * prop.Density
		massFlow += (prevMass[i] - mass[i]) / ts
		flow[i] = massFlow
		reg[i] += dr
	}

	kn := m.KN(reg)
	pc := m.PressureFromKN(kn)
	res.append(sample{
		time:     res.Time.Last() + ts,
		kn:       kn,
		pressure: pc,
		force:    m.Force(pc),
		mass:     mass,
		massFlow: flow,
		massFlux: flux,
		regr:     append([]float64(nil), reg...),
	})
}

// thrustBurnout reports whether the last thrust sample has dropped to
// thresPercent of the peak seen so far.
func thrustBurnout(force Channel, thresPercent float64) bool {
	return !(force.Last() > thresPercent/100*force.Max())
}

// burnProgress follows the grain with the largest fraction of its web left.
func burnProgress(m *Motor, reg, initialWeb []float64) float64 {
	left := 0.0
	for i, g := range m.Grains {
		if initialWeb[i] <= 0 {
			continue
		}
		left = math.Max(left, g.WebLeft(reg[i])/initialWeb[i])
	}
	return math.Min(math.Max(1-left, 0), 1)
}

// PortThroatRatio is the aft grain's initial port area over the throat
// area. It reports false when the aft grain has no port.
func (m *Motor) PortThroatRatio() (float64, bool) {
	if len(m.Grains) == 0 {
		return 0, false
	}
	port, ok := m.Grains[len(m.Grains)-1].PortArea(0)
	if !ok {
		return 0, false
	}
	return port / m.Nozzle.ThroatArea(), true
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package motor

import "github.com/san-kum/motorsim/internal/alert"

type Channel []float64

func (c Channel) Last() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

func (c Channel) Max() float64 {
	if len(c) == 0 {
		return 0
	}
	m := c[0]
	for _, v := range c[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// GrainChannel holds one value per grain for every sample.
type GrainChannel [][]float64

func (c GrainChannel) Last() []float64 {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Grain extracts the series of a single grain.
func (c GrainChannel) Grain(i int) Channel {
	out := make(Channel, len(c))
	for s, row := range c {
		out[s] = row[i]
	}
	return out
}

// Peak returns the largest value along with the grain it belongs to. The
// grain index is -1 for an empty channel.
func (c GrainChannel) Peak() (float64, int) {
	peak, at := 0.0, -1
	for _, row := range c {
		for i, v := range row {
			if at < 0 || v > peak {
				peak, at = v, i
			}
		}
	}
	return peak, at
}

func (c GrainChannel) Max() float64 {
	v, _ := c.Peak()
	return v
}

// Result is owned by the caller of Simulate and is not touched by the
// engine once Simulate returns.
type Result struct {
	Time       Channel       `json:"time"`
	KN         Channel       `json:"kn"`
	Pressure   Channel       `json:"pressure"`
	Force      Channel       `json:"force"`
	Mass       GrainChannel  `json:"mass"`
	MassFlow   GrainChannel  `json:"massFlow"`
	MassFlux   GrainChannel  `json:"massFlux"`
	Regression GrainChannel  `json:"regression"`
	Alerts     []alert.Alert `json:"alerts"`
	Success    bool          `json:"success"`
}

// sample is one row of every channel.
type sample struct {
	time, kn, pressure, force      float64
	mass, massFlow, massFlux, regr []float64
}

func (r *Result) append(s sample) {
	r.Mass = append(r.Mass, s.mass)
	r.MassFlow = append(r.MassFlow, s.massFlow)
	r.MassFlux = append(r.MassFlux, s.massFlux)
	r.Regression = append(r.Regression, s.regr)
	r.KN = append(r.KN, s.kn)
	r.Pressure = append(r.Pressure, s.pressure)
	r.Force = append(r.Force, s.force)
	r.Time = append(r.Time, s.time)
}

func (r *Result) Len() int { return len(r.Time) }

func (r *Result) GrainCount() int {
	if len(r.Mass) == 0 {
		return 0
	}
	return len(r.Mass[0])
}

func (r *Result) AlertsByLevel(level alert.Level) []alert.Alert {
	return alert.Filter(r.Alerts, level)
}

// Rejected reports whether validation stopped the run.
func (r *Result) Rejected() bool {
	return len(r.AlertsByLevel(alert.Error)) > 0
}

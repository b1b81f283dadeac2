package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/motor"
	"github.com/san-kum/motorsim/internal/units"
)

// DisplayUnits picks the units statistics are shown in.
type DisplayUnits struct {
	Pressure string
	Force    string
	Mass     string
}

func SIUnits() DisplayUnits {
	return DisplayUnits{Pressure: "Pa", Force: "N", Mass: "kg"}
}

func convertOrSI(v float64, si, unit string) (float64, string) {
	out, err := units.Convert(v, si, unit)
	if err != nil {
		return v, si
	}
	return out, unit
}

func statLine(label, value string) string {
	return MetricLabel.Render(fmt.Sprintf("%-18s", label)) + MetricValue.Render(value)
}

// RenderStats formats the headline statistics of a run.
func RenderStats(st motor.Stats, u DisplayUnits) string {
	avgP, pUnit := convertOrSI(st.AveragePressure, "Pa", u.Pressure)
	maxP, _ := convertOrSI(st.MaxPressure, "Pa", u.Pressure)
	avgF, fUnit := convertOrSI(st.AverageForce, "N", u.Force)
	maxF, _ := convertOrSI(st.MaxForce, "N", u.Force)
	mass, mUnit := convertOrSI(st.PropellantMass, "kg", u.Mass)

	impUnit := "Ns"
	imp := st.Impulse
	if fUnit == "lbf" {
		imp, impUnit = convertOrSI(st.Impulse, "Ns", "lbfs")
	}

	lines := []string{
		Title.Render("Motor " + st.Designation),
		statLine("Burn time", fmt.Sprintf("%.3f s", st.BurnTime)),
		statLine("Impulse", fmt.Sprintf("%.2f %s", imp, impUnit)),
		statLine("ISP", fmt.Sprintf("%.1f s", st.ISP)),
		statLine("Propellant mass", fmt.Sprintf("%.4g %s", mass, mUnit)),
		statLine("Average thrust", fmt.Sprintf("%.2f %s", avgF, fUnit)),
		statLine("Peak thrust", fmt.Sprintf("%.2f %s", maxF, fUnit)),
		statLine("Average pressure", fmt.Sprintf("%.4g %s", avgP, pUnit)),
		statLine("Peak pressure", fmt.Sprintf("%.4g %s", maxP, pUnit)),
		statLine("Initial KN", fmt.Sprintf("%.1f", st.InitialKN)),
		statLine("Peak KN", fmt.Sprintf("%.1f", st.PeakKN)),
	}
	if st.PeakMassFluxAt != "" {
		lines = append(lines, statLine("Peak mass flux", fmt.Sprintf("%.1f kg/(m^2*s) (%s)", st.PeakMassFlux, st.PeakMassFluxAt)))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// RenderAlerts lists alerts, errors first.
func RenderAlerts(alerts []alert.Alert) string {
	if len(alerts) == 0 {
		return StatusOK.Render("no alerts")
	}
	var sb strings.Builder
	for _, level := range []alert.Level{alert.Error, alert.Warning} {
		style := StatusWarning
		if level == alert.Error {
			style = StatusError
		}
		for _, a := range alert.Filter(alerts, level) {
			sb.WriteString(style.Render(level.String()))
			sb.WriteString(" ")
			sb.WriteString(Subtle.Render(fmt.Sprintf("(%s) %s:", a.Type, a.Location)))
			sb.WriteString(" " + a.Description + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderStatus summarizes how a run ended.
func RenderStatus(res *motor.Result) string {
	switch {
	case res.Success:
		return StatusOK.Render("burnout")
	case res.Rejected():
		return StatusError.Render("rejected")
	default:
		return StatusWarning.Render("cancelled")
	}
}

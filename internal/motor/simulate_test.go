package motor

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/grain"
)

var _ = Describe("Simulate", func() {
	var m *Motor

	BeforeEach(func() {
		m = testMotor()
	})

	Describe("validation", func() {
		It("rejects a motor without grains", func() {
			m.Grains = nil
			res := m.Simulate(nil)

			Expect(res.Success).To(BeFalse())
			Expect(res.Len()).To(Equal(0))
			errs := res.AlertsByLevel(alert.Error)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Location).To(Equal("Motor"))
		})

		It("rejects an end burner behind another grain", func() {
			e := grain.NewEndBurner()
			e.Diameter = 0.083
			e.Length = 0.1
			m.Grains = []grain.Grain{testBates(), e}

			res := m.Simulate(nil)
			errs := res.AlertsByLevel(alert.Error)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Location).To(Equal("Grain 2"))
			Expect(errs[0].Type).To(Equal(alert.Constraint))
			Expect(res.Success).To(BeFalse())
		})

		It("rejects a motor without propellant", func() {
			m.Propellant = nil
			res := m.Simulate(nil)
			Expect(res.Rejected()).To(BeTrue())
			Expect(res.Alerts).To(ContainElement(HaveField("Location", "Motor")))
		})

		It("places grain geometry errors on the grain", func() {
			m.Grains[1].(*grain.Bates).CoreDiameter = 0.1
			res := m.Simulate(nil)
			errs := res.AlertsByLevel(alert.Error)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Location).To(Equal("Grain 2"))
			Expect(errs[0].Type).To(Equal(alert.Geometry))
		})

		It("places nozzle errors on the nozzle", func() {
			m.Nozzle.Exit = 0.01
			res := m.Simulate(nil)
			Expect(res.AlertsByLevel(alert.Error)).To(ConsistOf(HaveField("Location", "Nozzle")))
		})

		It("rejects a non-positive timestep", func() {
			m.Config.Timestep = 0
			Expect(m.Simulate(nil).Rejected()).To(BeTrue())
		})
	})

	Describe("a complete burn", func() {
		var res *Result

		BeforeEach(func() {
			res = m.Simulate(nil)
		})

		It("succeeds without errors", func() {
			Expect(res.Success).To(BeTrue())
			Expect(res.AlertsByLevel(alert.Error)).To(BeEmpty())
			Expect(res.Len()).To(BeNumerically(">", 10))
		})

		It("starts from zero and re-evaluates at the first timestep", func() {
			Expect(res.Time[0]).To(Equal(0.0))
			Expect(res.KN[0]).To(Equal(0.0))
			Expect(res.Pressure[0]).To(Equal(0.0))
			Expect(res.Force[0]).To(Equal(0.0))

			Expect(res.Time[1]).To(Equal(m.Config.Timestep))
			Expect(res.KN[1]).To(Equal(m.KN([]float64{0, 0})))
			Expect(res.Pressure[1]).To(BeNumerically(">", 0))
			Expect(res.Mass[1]).To(Equal(res.Mass[0]))
		})

		It("keeps every channel the same length", func() {
			n := res.Len()
			for _, c := range []Channel{res.KN, res.Pressure, res.Force} {
				Expect(c).To(HaveLen(n))
			}
			for _, c := range []GrainChannel{res.Mass, res.MassFlow, res.MassFlux, res.Regression} {
				Expect(c).To(HaveLen(n))
			}
			Expect(res.GrainCount()).To(Equal(2))
		})

		It("never un-burns propellant", func() {
			for s := 1; s < res.Len(); s++ {
				total, prevTotal := 0.0, 0.0
				for g := 0; g < 2; g++ {
					Expect(res.Regression[s][g]).To(BeNumerically(">=", res.Regression[s-1][g]))
					total += res.Mass[s][g]
					prevTotal += res.Mass[s-1][g]
				}
				Expect(total).To(BeNumerically("<=", prevTotal))
			}
		})

		It("accumulates mass flow down the stack", func() {
			s := res.Len() / 2
			Expect(res.MassFlow[s][1]).To(BeNumerically(">", res.MassFlow[s][0]))
			Expect(res.MassFlux[s][1]).To(BeNumerically(">", res.MassFlux[s][0]))
		})

		It("stops on the thrust tail-off", func() {
			thres := m.Config.BurnoutThrustThres / 100 * res.Force.Max()
			Expect(res.Force.Last()).To(BeNumerically("<=", thres))
			for _, f := range res.Force[1 : res.Len()-1] {
				Expect(f).To(BeNumerically(">", 0))
			}
		})

		It("stops at the first sample that falls to the threshold", func() {
			frac := m.Config.BurnoutThrustThres / 100
			n := res.Len()
			for s := 1; s < n-1; s++ {
				Expect(res.Force[s]).To(BeNumerically(">", frac*res.Force[:s+1].Max()), "sample %d", s)
			}
			Expect(res.Force[n-2]).To(BeNumerically(">", frac*res.Force.Max()))
			Expect(res.Force[n-1]).To(BeNumerically("<=", frac*res.Force.Max()))
		})

		It("is deterministic", func() {
			Expect(m.Simulate(nil)).To(Equal(res))
		})

		It("survives a definition round trip", func() {
			rebuilt, err := FromDefinition(m.Definition())
			Expect(err).NotTo(HaveOccurred())
			Expect(rebuilt.Definition()).To(Equal(m.Definition()))
			Expect(rebuilt.Simulate(nil)).To(Equal(res))
		})

		It("reports sensible statistics", func() {
			st := res.Stats()
			Expect(st.BurnTime).To(Equal(res.Time.Last()))
			Expect(st.ISP).To(BeNumerically("~", 130, 50))
			Expect(st.PropellantMass).To(BeNumerically("~", 2*1889*m.Grains[0].VolumeAtRegression(0), 1e-9))
			Expect(st.PeakMassFluxAt).To(Equal("Grain 2"))
			Expect(st.Designation).NotTo(Equal("N/A"))
		})
	})

	Describe("progress and cancellation", func() {
		It("reports progress within [0, 1]", func() {
			var seen []float64
			res := m.Simulate(func(p float64) bool {
				seen = append(seen, p)
				return false
			})
			Expect(seen).To(HaveLen(res.Len() - 2))
			for i, p := range seen {
				Expect(p).To(BeNumerically(">=", 0))
				Expect(p).To(BeNumerically("<=", 1))
				if i > 0 {
					Expect(p).To(BeNumerically(">=", seen[i-1]))
				}
			}
		})

		It("stops right after the callback asks to cancel", func() {
			calls := 0
			res := m.Simulate(func(float64) bool {
				calls++
				return calls == 2
			})

			Expect(calls).To(Equal(2))
			Expect(res.Success).To(BeFalse())
			Expect(res.Rejected()).To(BeFalse())
			Expect(res.Len()).To(Equal(4))
			Expect(res.Mass).To(HaveLen(4))
			Expect(res.MassFlux).To(HaveLen(4))
		})
	})

	Describe("constraint warnings", func() {
		It("warns about a small port/throat ratio", func() {
			m.Config.MinPortThroat = 4
			res := m.Simulate(nil)

			Expect(res.Success).To(BeTrue())
			Expect(res.Alerts).To(ContainElement(alert.New(alert.Warning, alert.Constraint,
				"Initial port/throat ratio of 3.114 was less than 4", "N/A")))
		})

		It("warns when limits are exceeded without failing the run", func() {
			m.Config.MaxPressure = 1e5
			m.Config.MaxMassFlux = 1
			res := m.Simulate(nil)

			Expect(res.Success).To(BeTrue())
			warnings := res.AlertsByLevel(alert.Warning)
			Expect(warnings).To(ContainElement(HaveField("Description", "Peak mass flux exceeded configured limit")))
			Expect(warnings).To(ContainElement(HaveField("Description", "Max pressure exceeded configured limit")))
		})

		It("stays quiet under generous limits", func() {
			m.Config.MaxPressure = 7e7
			m.Config.MaxMassFlux = 1e4
			Expect(m.Simulate(nil).Alerts).To(BeEmpty())
		})
	})

	Describe("an end burner", func() {
		It("burns without a port check", func() {
			e := grain.NewEndBurner()
			e.Diameter = 0.03
			e.Length = 0.05
			m.Grains = []grain.Grain{e}
			m.Nozzle = Nozzle{Throat: 0.004, Exit: 0.01, Efficiency: 0.9}
			m.Config.MinPortThroat = 4

			res := m.Simulate(nil)
			Expect(res.Success).To(BeTrue())
			Expect(res.AlertsByLevel(alert.Warning)).NotTo(ContainElement(HaveField("Location", "N/A")))
			Expect(res.MassFlux.Max()).To(Equal(0.0))
		})
	})
})

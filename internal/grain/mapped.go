package grain

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/motorsim/internal/geometry"
)

// regressionMap is a rasterized grain cross section. Every propellant
// cell holds the depth the burning surface must regress to consume it.
type regressionMap struct {
	dim     int
	cell    float64
	depths  []float64 // ascending
	wallWeb float64
}

func newRegressionMap(diameter float64, dim int, inCore func(x, y float64) bool) *regressionMap {
	m := &regressionMap{dim: dim, cell: diameter / float64(dim)}
	if dim <= 0 || diameter <= 0 {
		return m
	}

	radius := diameter / 2
	core := make([]bool, dim*dim)
	inGrain := make([]bool, dim*dim)
	for row := 0; row < dim; row++ {
		y := (float64(row)+0.5)*m.cell - radius
		for col := 0; col < dim; col++ {
			x := (float64(col)+0.5)*m.cell - radius
			if x*x+y*y > radius*radius {
				continue
			}
			i := row*dim + col
			inGrain[i] = true
			core[i] = inCore(x, y)
		}
	}

	dist := geometry.DistanceTransform(core, dim, dim)
	m.depths = make([]float64, 0, len(dist))
	for i, d := range dist {
		if !inGrain[i] || core[i] || math.IsInf(d, 1) {
			continue
		}
		// distances run center to center; the surface sits half a cell
		// in front of the nearest core cell
		m.depths = append(m.depths, math.Max(d-0.5, 0)*m.cell)
	}
	sort.Float64s(m.depths)
	if n := len(m.depths); n > 0 {
		m.wallWeb = m.depths[n-1]
	}
	return m
}

func (m *regressionMap) faceArea(r float64) float64 {
	burnt := sort.Search(len(m.depths), func(i int) bool { return m.depths[i] > r })
	return float64(len(m.depths)-burnt) * m.cell * m.cell
}

// corePerimeter is the finite difference of the face area over two cells.
func (m *regressionMap) corePerimeter(r float64) float64 {
	h := 2 * m.cell
	if h <= 0 {
		return 0
	}
	return (m.faceArea(r) - m.faceArea(r+h)) / h
}

type coreShape interface {
	Properties() Properties
	inCore(x, y float64) bool
}

// mapped implements the Grain queries for shapes whose core is only known
// as a point-in-core test.
type mapped struct {
	perforated
	shape coreShape

	rmap        *regressionMap
	fingerprint string
}

func (m *mapped) SimulationSetup(s Setup) {
	dim := s.MapDim
	if dim <= 0 {
		dim = DefaultMapDim
	}
	fp := fmt.Sprint(dim, m.shape.Properties())
	if m.rmap != nil && m.fingerprint == fp {
		return
	}
	m.rmap = newRegressionMap(m.Diameter, dim, m.shape.inCore)
	m.fingerprint = fp
}

func (m *mapped) regMap() *regressionMap {
	if m.rmap == nil {
		m.SimulationSetup(Setup{MapDim: DefaultMapDim})
	}
	return m.rmap
}

func (m *mapped) invalidate() {
	m.rmap = nil
	m.fingerprint = ""
}

func (m *mapped) faceArea(r float64) float64 {
	return m.regMap().faceArea(r)
}

func (m *mapped) port(r float64) float64 {
	return geometry.CircleArea(m.Diameter) - m.faceArea(r)
}

func (m *mapped) SurfaceAreaAtRegression(r float64) float64 {
	rm := m.regMap()
	length := m.regressedLength(r)
	return rm.corePerimeter(r)*length + float64(m.exposedFaces())*rm.faceArea(r)
}

func (m *mapped) VolumeAtRegression(r float64) float64 {
	return m.faceArea(r) * m.regressedLength(r)
}

func (m *mapped) WebLeft(r float64) float64 {
	return m.webLeft(m.regMap().wallWeb-r, r)
}

func (m *mapped) IsWebLeft(r, threshold float64) bool {
	return m.WebLeft(r) > threshold
}

func (m *mapped) PortArea(r float64) (float64, bool) {
	return m.port(r), true
}

func (m *mapped) PeakMassFlux(massIn, dt, r, dr, density float64) float64 {
	return m.peakMassFlux(massIn, dt, r, dr, density, m.port, m.faceArea)
}

func rotate(x, y, angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	return x*c + y*s, -x*s + y*c
}

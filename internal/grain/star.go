package grain

import (
	"math"

	"github.com/san-kum/motorsim/internal/alert"
)

// Star is a core made of triangular points meeting at the grain axis.
type Star struct {
	mapped
	NumPoints   int
	PointLength float64
	PointWidth  float64
}

func NewStar() *Star {
	s := &Star{}
	s.InhibitedEnds = InhibitNeither
	s.shape = s
	return s
}

func (s *Star) Type() string { return TypeStar }

func (s *Star) Properties() Properties {
	p := s.baseProperties()
	p["numPoints"] = s.NumPoints
	p["pointLength"] = s.PointLength
	p["pointWidth"] = s.PointWidth
	return p
}

func (s *Star) SetProperties(p Properties) error {
	s.invalidate()
	if err := s.setBase(p); err != nil {
		return err
	}
	if err := p.setInt("numPoints", &s.NumPoints); err != nil {
		return err
	}
	if err := p.setFloat("pointLength", &s.PointLength); err != nil {
		return err
	}
	return p.setFloat("pointWidth", &s.PointWidth)
}

func (s *Star) inCore(x, y float64) bool {
	if s.PointLength <= 0 {
		return false
	}
	for i := 0; i < s.NumPoints; i++ {
		u, v := rotate(x, y, 2*math.Pi*float64(i)/float64(s.NumPoints))
		if u < 0 || u > s.PointLength {
			continue
		}
		if math.Abs(v) <= (s.PointWidth/2)*(1-u/s.PointLength) {
			return true
		}
	}
	return false
}

func (s *Star) GeometryErrors() []alert.Alert {
	out := s.baseErrors()
	if s.NumPoints <= 0 {
		out = append(out, geometryError("Star grain must have at least one point"))
	}
	if s.PointLength <= 0 {
		out = append(out, geometryError("Point length must not be 0"))
	}
	if s.PointWidth <= 0 {
		out = append(out, geometryError("Point width must not be 0"))
	}
	if s.PointLength >= s.Diameter/2 {
		out = append(out, geometryError("Point length must be less than grain radius"))
	}
	return out
}

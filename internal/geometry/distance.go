package geometry

import "math"

// far stands in for infinity in the squared-distance passes; it keeps the
// parabola intersections finite.
const far = 1e20

// DistanceTransform returns, for every cell of a w×h row-major grid, the
// Euclidean distance (in cells) to the nearest cell marked in src. Cells
// in src get 0. If src has no marked cell every distance is +Inf.
//
// Exact two-pass transform of Felzenszwalb & Huttenlocher: squared
// distances along columns, then the lower envelope of parabolas per row.
func DistanceTransform(src []bool, w, h int) []float64 {
	out := make([]float64, w*h)
	if w == 0 || h == 0 {
		return out
	}

	found := false
	for i, s := range src {
		if s {
			out[i] = 0
			found = true
		} else {
			out[i] = far
		}
	}
	if !found {
		for i := range out {
			out[i] = math.Inf(1)
		}
		return out
	}

	n := w
	if h > n {
		n = h
	}
	f := make([]float64, n)
	d := make([]float64, n)
	v := make([]int, n)
	z := make([]float64, n+1)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f[y] = out[y*w+x]
		}
		transform1D(f[:h], d[:h], v, z)
		for y := 0; y < h; y++ {
			out[y*w+x] = d[y]
		}
	}

	for y := 0; y < h; y++ {
		row := out[y*w : (y+1)*w]
		copy(f[:w], row)
		transform1D(f[:w], d[:w], v, z)
		for x := 0; x < w; x++ {
			row[x] = math.Sqrt(d[x])
		}
	}

	return out
}

func transform1D(f, d []float64, v []int, z []float64) {
	n := len(f)
	k := 0
	v[0] = 0
	z[0] = -far
	z[1] = far

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = far
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

func intersect(f []float64, q, p int) float64 {
	fq, fp := float64(q), float64(p)
	return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
}

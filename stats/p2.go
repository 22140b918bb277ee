package stats

import "sort"

// p2Estimator estimates a single quantile of an unbounded stream using the
// P² algorithm (Jain & Chlamtac, 1985): a fixed set of markers whose heights
// approximate the local distribution around the target quantile. Markers are
// repositioned after each observation by piecewise-parabolic interpolation,
// falling back to linear interpolation when the parabolic prediction would
// leave the bracketing heights. Memory is O(markers), independent of how
// many observations have been fed.
//
// The first len(markers) observations are buffered raw; until the buffer
// fills, estimates are computed by linear interpolation over the sorted
// buffer, then the adaptive update rule takes over.
type p2Estimator struct {
	p       float64   // target quantile fraction
	targets []float64 // desired quantile per marker; middle marker is p
	heights []float64 // marker heights (estimated values)
	pos     []float64 // actual marker positions, 1-based
	desired []float64 // desired marker positions
	count   int
	warm    []float64 // sorted warm-up buffer, discarded once full
}

// newP2Estimator creates an estimator for quantile p with the given marker
// count. markers must be odd and >= 5; the caller validates.
func newP2Estimator(p float64, markers int) *p2Estimator {
	half := (markers - 1) / 2
	targets := make([]float64, markers)
	for i := range targets {
		if i <= half {
			targets[i] = p * float64(i) / float64(half)
		} else {
			targets[i] = p + (1-p)*float64(i-half)/float64(half)
		}
	}
	return &p2Estimator{
		p:       p,
		targets: targets,
		heights: make([]float64, markers),
		pos:     make([]float64, markers),
		desired: make([]float64, markers),
		warm:    make([]float64, 0, markers),
	}
}

// feed adds one observation to the sketch.
func (e *p2Estimator) feed(v float64) {
	m := len(e.targets)
	e.count++

	if e.count <= m {
		// Warm-up: keep raw values sorted until we have one per marker.
		i := sort.SearchFloat64s(e.warm, v)
		e.warm = append(e.warm, 0)
		copy(e.warm[i+1:], e.warm[i:])
		e.warm[i] = v
		if e.count == m {
			copy(e.heights, e.warm)
			for i := range e.pos {
				e.pos[i] = float64(i + 1)
				e.desired[i] = 1 + float64(m-1)*e.targets[i]
			}
			e.warm = nil
		}
		return
	}

	// Locate the cell containing v, extending the extremes if needed.
	var k int
	switch {
	case v < e.heights[0]:
		e.heights[0] = v
		k = 0
	case v >= e.heights[m-1]:
		e.heights[m-1] = v
		k = m - 2
	default:
		k = sort.SearchFloat64s(e.heights, v)
		if e.heights[k] > v {
			k--
		}
		// Equal heights can make the search land past the cell.
		if k > m-2 {
			k = m - 2
		}
	}

	for i := k + 1; i < m; i++ {
		e.pos[i]++
	}
	for i := range e.desired {
		e.desired[i] += e.targets[i]
	}

	// Adjust interior markers toward their desired positions.
	for i := 1; i < m-1; i++ {
		d := e.desired[i] - e.pos[i]
		if (d >= 1 && e.pos[i+1]-e.pos[i] > 1) || (d <= -1 && e.pos[i-1]-e.pos[i] < -1) {
			s := 1.0
			if d < 0 {
				s = -1.0
			}
			h := e.parabolic(i, s)
			if !(e.heights[i-1] < h && h < e.heights[i+1]) {
				h = e.linear(i, s)
			}
			e.heights[i] = h
			e.pos[i] += s
		}
	}
}

// parabolic returns the piecewise-parabolic height prediction for moving
// marker i by d (±1).
func (e *p2Estimator) parabolic(i int, d float64) float64 {
	q, n := e.heights, e.pos
	a := (n[i] - n[i-1] + d) * (q[i+1] - q[i]) / (n[i+1] - n[i])
	b := (n[i+1] - n[i] - d) * (q[i] - q[i-1]) / (n[i] - n[i-1])
	return q[i] + d/(n[i+1]-n[i-1])*(a+b)
}

// linear returns the linear-interpolation fallback for moving marker i by d.
func (e *p2Estimator) linear(i int, d float64) float64 {
	q, n := e.heights, e.pos
	j := i + int(d)
	return q[i] + d*(q[j]-q[i])/(n[j]-n[i])
}

// estimate returns the current quantile estimate. Undefined (returns 0) when
// no observations have been fed; the observer guards that case.
func (e *p2Estimator) estimate() float64 {
	if e.count == 0 {
		return 0
	}
	if e.count < len(e.targets) {
		// Linear interpolation over the sorted warm-up buffer, matching
		// the convention of numpy.quantile.
		rank := e.p * float64(e.count-1)
		i := int(rank)
		frac := rank - float64(i)
		if i+1 >= e.count {
			return e.warm[e.count-1]
		}
		return e.warm[i] + frac*(e.warm[i+1]-e.warm[i])
	}
	return e.heights[(len(e.targets)-1)/2]
}

// reset restores the zero state keeping the marker configuration.
func (e *p2Estimator) reset() {
	e.count = 0
	e.warm = make([]float64, 0, len(e.targets))
	for i := range e.heights {
		e.heights[i] = 0
		e.pos[i] = 0
		e.desired[i] = 0
	}
}

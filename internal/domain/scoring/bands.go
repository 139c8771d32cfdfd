package scoring

// knot is one calibration point of a piecewise-linear score curve:
// raw value x maps to score y.
type knot struct {
	x, y float64
}

// curve is a piecewise-linear mapping through knots sorted by ascending x.
// Adjacent knots share their endpoint, so the mapping is continuous at every
// band boundary. Values beyond the first or last knot saturate.
type curve []knot

func (c curve) at(x float64) float64 {
	if len(c) == 0 {
		return 0
	}
	if x <= c[0].x {
		return c[0].y
	}
	last := c[len(c)-1]
	if x >= last.x {
		return last.y
	}
	for i := 0; i < len(c)-1; i++ {
		lo, hi := c[i], c[i+1]
		if x <= hi.x {
			return linearScale(x, lo.x, hi.x, lo.y, hi.y)
		}
	}
	return last.y
}

// linearScale maps x in [x0, x1] onto [y0, y1]. Values outside the interval
// clamp to the nearer end. A degenerate interval (x0 == x1) yields y0.
func linearScale(x, x0, x1, y0, y1 float64) float64 {
	if x0 == x1 {
		return y0
	}
	t := clamp((x-x0)/(x1-x0), 0, 1)
	return y0 + t*(y1-y0)
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}

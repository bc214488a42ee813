package geometry

// SegmentIntersection computes the crossing point of two segments, if
// any. It returns the point and true when the segments properly cross
// or touch at a single point lying on both segments.
//
// Collinear overlaps are reported as no intersection: overlapping
// stretches have no single crossing point to break at, and the shared
// endpoints already unify in the topology graph.
func SegmentIntersection(a, b, c, d Point) (Point, bool) {
	rx, ry := b.X-a.X, b.Y-a.Y
	sx, sy := d.X-c.X, d.Y-c.Y

	denom := rx*sy - ry*sx
	if denom == 0 {
		// Parallel or collinear.
		return Point{}, false
	}

	acx, acy := c.X-a.X, c.Y-a.Y
	t := (acx*sy - acy*sx) / denom
	u := (acx*ry - acy*rx) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	at := Point{X: a.X + t*rx, Y: a.Y + t*ry}
	// Snap to segment endpoints when the parameter lands exactly on
	// them, so split points compare equal to existing nodes.
	switch {
	case at == a || t == 0:
		return a, true
	case at == b || t == 1:
		return b, true
	case at == c || u == 0:
		return c, true
	case at == d || u == 1:
		return d, true
	}
	return at, true
}

// interiorParam returns the parameter of p along the segment a->b when
// p lies strictly between the endpoints, and ok=false otherwise.
func interiorParam(a, b, p Point) (float64, bool) {
	if p == a || p == b {
		return 0, false
	}
	rx, ry := b.X-a.X, b.Y-a.Y
	var t float64
	if abs(rx) >= abs(ry) {
		if rx == 0 {
			return 0, false
		}
		t = (p.X - a.X) / rx
	} else {
		t = (p.Y - a.Y) / ry
	}
	if t <= 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package geometry

// NearestPair returns the closest pair of points between two non-empty
// sets, the first point taken from a and the second from b.
//
// Ties on distance are broken toward the lexicographically smallest
// pair, so the result does not depend on the order of either input.
func NearestPair(a, b []Point) (Point, Point, error) {
	if len(a) == 0 || len(b) == 0 {
		return Point{}, Point{}, ErrEmptyPointSet
	}

	bestA, bestB := a[0], b[0]
	best := bestA.Distance(bestB)
	for _, pa := range a {
		for _, pb := range b {
			d := pa.Distance(pb)
			switch {
			case d < best:
				best, bestA, bestB = d, pa, pb
			case d == best && lessPair(pa, pb, bestA, bestB):
				bestA, bestB = pa, pb
			}
		}
	}
	return bestA, bestB, nil
}

// lessPair orders point pairs lexicographically.
func lessPair(a1, b1, a2, b2 Point) bool {
	if a1 != a2 {
		return a1.Less(a2)
	}
	return b1.Less(b2)
}

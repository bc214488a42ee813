package geometry

import "sort"

// Decompose splits every input line into atomic two-point segments and
// resolves crossings between segments into shared break points, so
// lines that cross become graph-connected at the crossing instead of
// merely overlapping geometrically.
//
// Zero-length pieces are dropped. Output ordering is insignificant and
// callers must not depend on it.
func Decompose(lines []Line) ([]Segment, error) {
	var raw []Segment
	for i := range lines {
		if err := lines[i].Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, splitLine(&lines[i])...)
	}
	return resolveCrossings(raw), nil
}

// splitLine breaks a line into its consecutive point pairs, skipping
// degenerate pairs caused by repeated vertices.
func splitLine(l *Line) []Segment {
	segments := make([]Segment, 0, len(l.Points)-1)
	for i := 1; i < len(l.Points); i++ {
		seg := Segment{
			Start:      l.Points[i-1],
			End:        l.Points[i],
			Attributes: l.Attributes,
		}
		if seg.Degenerate() {
			continue
		}
		seg.Attributes.Length = seg.Length()
		segments = append(segments, seg)
	}
	return segments
}

// resolveCrossings introduces a break point in every segment crossed by
// another segment's interior, including T-junctions where an endpoint
// of one segment lies inside another. Quadratic over the segment count,
// which matches the expected scale of a single network.
func resolveCrossings(segments []Segment) []Segment {
	cuts := make([][]float64, len(segments))
	points := make([][]Point, len(segments))

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			at, ok := SegmentIntersection(
				segments[i].Start, segments[i].End,
				segments[j].Start, segments[j].End,
			)
			if !ok {
				continue
			}
			if t, interior := interiorParam(segments[i].Start, segments[i].End, at); interior {
				cuts[i] = append(cuts[i], t)
				points[i] = append(points[i], at)
			}
			if t, interior := interiorParam(segments[j].Start, segments[j].End, at); interior {
				cuts[j] = append(cuts[j], t)
				points[j] = append(points[j], at)
			}
		}
	}

	var out []Segment
	for i, seg := range segments {
		if len(cuts[i]) == 0 {
			out = append(out, seg)
			continue
		}
		out = append(out, splitAt(seg, cuts[i], points[i])...)
	}
	return out
}

// splitAt cuts a segment at the given interior points, ordered by their
// parameter along the segment.
func splitAt(seg Segment, params []float64, at []Point) []Segment {
	order := make([]int, len(params))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return params[order[a]] < params[order[b]] })

	out := make([]Segment, 0, len(at)+1)
	prev := seg.Start
	for _, idx := range order {
		p := at[idx]
		if p == prev {
			continue
		}
		piece := Segment{Start: prev, End: p, Attributes: seg.Attributes}
		piece.Attributes.Length = piece.Length()
		out = append(out, piece)
		prev = p
	}
	if prev != seg.End {
		piece := Segment{Start: prev, End: seg.End, Attributes: seg.Attributes}
		piece.Attributes.Length = piece.Length()
		out = append(out, piece)
	}
	return out
}

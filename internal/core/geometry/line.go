// Package geometry provides line and segment definitions
package geometry

// CategoryBridge marks segments synthesized to connect otherwise
// unreachable parts of a network. Original input keeps its own category.
const CategoryBridge = "bridge"

// Attributes carries the payload attached to a line or segment.
// Strongly typed on purpose: string-keyed attribute bags invite
// reflection and silent typos.
type Attributes struct {
	ID       string  `json:"id,omitempty"`
	Category string  `json:"category,omitempty"`
	Length   float64 `json:"length,omitempty"`
}

// Line is an ordered sequence of at least two points with attributes.
type Line struct {
	Points     []Point    `json:"points"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Validate ensures line integrity
func (l *Line) Validate() error {
	if len(l.Points) < 2 {
		return ErrTooFewPoints
	}
	for _, p := range l.Points {
		if !p.Finite() {
			return ErrNonFiniteCoord
		}
	}
	return nil
}

// Length returns the sum of the euclidean lengths of all parts.
func (l *Line) Length() float64 {
	var total float64
	for i := 1; i < len(l.Points); i++ {
		total += l.Points[i-1].Distance(l.Points[i])
	}
	return total
}

// Segment is an atomic two-point piece of a line. Segments are created
// during decomposition and never mutated afterwards.
type Segment struct {
	Start      Point      `json:"start"`
	End        Point      `json:"end"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Degenerate reports whether both endpoints are the same location.
func (s Segment) Degenerate() bool {
	return s.Start == s.End
}

// Line converts the segment back into a two-point line.
func (s Segment) Line() Line {
	return Line{
		Points:     []Point{s.Start, s.End},
		Attributes: s.Attributes,
	}
}

// Package geometry provides the core planar geometry entities
// following Clean Architecture principles with zero external dependencies.
package geometry

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate pair.
//
// Identity is exact floating-point equality: two points are the same
// location only if both coordinates match bit-for-bit. No snapping
// tolerance is applied anywhere in the core, so near-coincident points
// digitized with small error remain distinct.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Less orders points lexicographically (X first, then Y). Used to make
// tie-breaking explicit where the choice would otherwise depend on
// iteration order.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String renders the point as a WKT coordinate pair.
func (p Point) String() string {
	return fmt.Sprintf("%g %g", p.X, p.Y)
}

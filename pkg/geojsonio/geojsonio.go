// Package geojsonio converts between the core line geometry and
// GeoJSON FeatureCollections, as an alternative to the WKT codec for
// pipelines that exchange GeoJSON.
package geojsonio

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/netmend/netmend/internal/core/geometry"
)

// Encode renders lines as a FeatureCollection of LineString features.
// Attributes map onto feature properties.
func Encode(lines []geometry.Line) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i := range lines {
		coords := make([][]float64, len(lines[i].Points))
		for j, p := range lines[i].Points {
			coords[j] = []float64{p.X, p.Y}
		}
		feature := geojson.NewLineStringFeature(coords)
		attrs := lines[i].Attributes
		if attrs.ID != "" {
			feature.SetProperty("id", attrs.ID)
		}
		if attrs.Category != "" {
			feature.SetProperty("category", attrs.Category)
		}
		if attrs.Length != 0 {
			feature.SetProperty("length", attrs.Length)
		}
		fc.AddFeature(feature)
	}
	return fc.MarshalJSON()
}

// Decode reads a FeatureCollection of LineString features back into
// lines. Non-linestring features are rejected.
func Decode(data []byte) ([]geometry.Line, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson decoding failed: %w", err)
	}
	lines := make([]geometry.Line, 0, len(fc.Features))
	for i, feature := range fc.Features {
		if feature.Geometry == nil || !feature.Geometry.IsLineString() {
			return nil, fmt.Errorf("feature %d: only LineString geometries are supported", i)
		}
		line := geometry.Line{}
		for _, coord := range feature.Geometry.LineString {
			if len(coord) < 2 {
				return nil, fmt.Errorf("feature %d: coordinate needs two values", i)
			}
			line.Points = append(line.Points, geometry.Point{X: coord[0], Y: coord[1]})
		}
		if id, err := feature.PropertyString("id"); err == nil {
			line.Attributes.ID = id
		}
		if category, err := feature.PropertyString("category"); err == nil {
			line.Attributes.Category = category
		}
		if length, err := feature.PropertyFloat64("length"); err == nil {
			line.Attributes.Length = length
		}
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/core/geometry"
)

func TestDecodeLines_WKT(t *testing.T) {
	input := `
LINESTRING (0 0, 1 1)

LINESTRING (2 2, 3 3, 4 4)
`
	lines, err := decodeLines([]byte(input), "wkt")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Len(t, lines[0].Points, 2)
	assert.Len(t, lines[1].Points, 3)
}

func TestDecodeLines_BadFormat(t *testing.T) {
	_, err := decodeLines([]byte(""), "shapefile")
	assert.Error(t, err)

	_, err = decodeLines([]byte("LINESTRING (0 0"), "wkt")
	assert.Error(t, err)
}

func TestEncodeLines_WKT(t *testing.T) {
	lines := []geometry.Line{
		{Points: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
	}
	out, err := encodeLines(lines, "wkt")
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (0 0, 1 1)\n", string(out))
}

func TestRoundTrip_GeoJSON(t *testing.T) {
	lines := []geometry.Line{
		{Points: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{Points: []geometry.Point{{X: 5, Y: 5}, {X: 6, Y: 6}}},
	}
	data, err := encodeLines(lines, "geojson")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "FeatureCollection"))

	decoded, err := decodeLines(data, "geojson")
	require.NoError(t, err)
	assert.Equal(t, lines, decoded)
}

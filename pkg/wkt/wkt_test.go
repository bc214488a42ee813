package wkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/core/geometry"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input string
		want  geometry.Point
	}{
		{"POINT (1 2)", geometry.Point{X: 1, Y: 2}},
		{"point(1.5 -2.25)", geometry.Point{X: 1.5, Y: -2.25}},
		{"  POINT ( 1e3   2e-2 ) ", geometry.Point{X: 1000, Y: 0.02}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePoint(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePoint_Errors(t *testing.T) {
	for _, input := range []string{
		"",
		"LINESTRING (0 0, 1 1)",
		"POINT (1 2, 3 4)",
		"POINT (1)",
		"POINT (1 abc)",
		"POINT (1 2) extra",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePoint(input)
			require.Error(t, err)
			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestParseLineString(t *testing.T) {
	line, err := ParseLineString("LINESTRING (0 0, 1 1, 2 0)")
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, line.Points)
}

func TestParseLineString_TooFewPoints(t *testing.T) {
	_, err := ParseLineString("LINESTRING (0 0)")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "invalid linestring")
}

func TestParseMultiLineString(t *testing.T) {
	lines, err := ParseMultiLineString("MULTILINESTRING ((0 0, 1 1), (2 2, 3 3, 4 4))")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Len(t, lines[0].Points, 2)
	assert.Len(t, lines[1].Points, 3)
}

func TestParseMultiLineString_Empty(t *testing.T) {
	lines, err := ParseMultiLineString("MULTILINESTRING EMPTY")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseMultiLineString_Errors(t *testing.T) {
	for _, input := range []string{
		"MULTILINESTRING",
		"MULTILINESTRING ((0 0, 1 1)",
		"MULTILINESTRING ((0 0))",
		"MULTILINESTRING ((0 0, 1 1)) trailing",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMultiLineString(input)
			assert.Error(t, err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	lines := []geometry.Line{
		{Points: []geometry.Point{{X: 0, Y: 0}, {X: 1.5, Y: -2.25}}},
		{Points: []geometry.Point{{X: 10, Y: 10}, {X: 11, Y: 11}, {X: 12, Y: 10}}},
	}

	encoded := EncodeMultiLineString(lines)
	assert.Equal(t, "MULTILINESTRING ((0 0, 1.5 -2.25), (10 10, 11 11, 12 10))", encoded)

	decoded, err := ParseMultiLineString(encoded)
	require.NoError(t, err)
	assert.Equal(t, lines, decoded)
}

func TestEncodeEmpty(t *testing.T) {
	assert.Equal(t, "MULTILINESTRING EMPTY", EncodeMultiLineString(nil))
}

func TestEncodePoint(t *testing.T) {
	assert.Equal(t, "POINT (3 4.5)", EncodePoint(geometry.Point{X: 3, Y: 4.5}))
}

func TestEncodeLineString(t *testing.T) {
	l := geometry.Line{Points: []geometry.Point{{X: 0, Y: 0}, {X: 2, Y: 2}}}
	assert.Equal(t, "LINESTRING (0 0, 2 2)", EncodeLineString(l))

	parsed, err := ParseLineString(EncodeLineString(l))
	require.NoError(t, err)
	assert.Equal(t, l.Points, parsed.Points)
}

func TestParseError_Message(t *testing.T) {
	_, err := ParsePoint("POINT (1 oops)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed number")
	assert.Contains(t, err.Error(), "POINT (1 oops)")
}

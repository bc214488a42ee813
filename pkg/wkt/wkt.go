// Package wkt reads and writes the Well-Known Text subset used for
// network geometries: POINT, LINESTRING and MULTILINESTRING. It is the
// boundary between the text interchange format and the typed geometry
// in internal/core; nothing in the repair pipeline touches WKT.
package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/netmend/netmend/internal/core/geometry"
)

// ParseError reports malformed geometry text. Parse failures are fatal
// for the repair run: no partial result is produced.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wkt: %s at position %d in %q", e.Msg, e.Pos, truncate(e.Input, 60))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ParsePoint parses a WKT POINT.
func ParsePoint(text string) (geometry.Point, error) {
	p := newParser(text)
	if !p.keyword("POINT") {
		return geometry.Point{}, p.failf("expected POINT")
	}
	coords, err := p.coordList()
	if err != nil {
		return geometry.Point{}, err
	}
	if len(coords) != 1 {
		return geometry.Point{}, p.failf("POINT requires exactly one coordinate pair")
	}
	if err := p.end(); err != nil {
		return geometry.Point{}, err
	}
	return coords[0], nil
}

// ParseLineString parses a WKT LINESTRING into a line with no
// attributes.
func ParseLineString(text string) (geometry.Line, error) {
	p := newParser(text)
	if !p.keyword("LINESTRING") {
		return geometry.Line{}, p.failf("expected LINESTRING")
	}
	coords, err := p.coordList()
	if err != nil {
		return geometry.Line{}, err
	}
	if err := p.end(); err != nil {
		return geometry.Line{}, err
	}
	line := geometry.Line{Points: coords}
	if err := line.Validate(); err != nil {
		return geometry.Line{}, p.failf("invalid linestring: %v", err)
	}
	return line, nil
}

// ParseMultiLineString parses a WKT MULTILINESTRING into separate
// lines.
func ParseMultiLineString(text string) ([]geometry.Line, error) {
	p := newParser(text)
	if !p.keyword("MULTILINESTRING") {
		return nil, p.failf("expected MULTILINESTRING")
	}
	if p.keyword("EMPTY") {
		return nil, p.end()
	}
	if !p.expect('(') {
		return nil, p.failf("expected '('")
	}
	var lines []geometry.Line
	for {
		coords, err := p.coordList()
		if err != nil {
			return nil, err
		}
		line := geometry.Line{Points: coords}
		if err := line.Validate(); err != nil {
			return nil, p.failf("invalid linestring: %v", err)
		}
		lines = append(lines, line)
		if p.expect(',') {
			continue
		}
		break
	}
	if !p.expect(')') {
		return nil, p.failf("expected ')'")
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return lines, nil
}

// EncodePoint renders a point as WKT.
func EncodePoint(p geometry.Point) string {
	return fmt.Sprintf("POINT (%s)", p)
}

// EncodeLineString renders a line as WKT.
func EncodeLineString(l geometry.Line) string {
	return fmt.Sprintf("LINESTRING (%s)", coordBody(l.Points))
}

// EncodeMultiLineString renders a set of lines as one WKT geometry.
func EncodeMultiLineString(lines []geometry.Line) string {
	if len(lines) == 0 {
		return "MULTILINESTRING EMPTY"
	}
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = "(" + coordBody(l.Points) + ")"
	}
	return "MULTILINESTRING (" + strings.Join(parts, ", ") + ")"
}

func coordBody(points []geometry.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// parser is a minimal cursor over the WKT text.
type parser struct {
	input string
	pos   int
}

func newParser(text string) *parser {
	return &parser{input: text}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n' || p.input[p.pos] == '\r') {
		p.pos++
	}
}

// keyword consumes an identifier case-insensitively.
func (p *parser) keyword(kw string) bool {
	p.skipSpace()
	if len(p.input)-p.pos < len(kw) {
		return false
	}
	if !strings.EqualFold(p.input[p.pos:p.pos+len(kw)], kw) {
		return false
	}
	p.pos += len(kw)
	return true
}

// expect consumes a single rune if it is next.
func (p *parser) expect(ch byte) bool {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

// coordList parses "( x y, x y, ... )".
func (p *parser) coordList() ([]geometry.Point, error) {
	if !p.expect('(') {
		return nil, p.failf("expected '('")
	}
	var coords []geometry.Point
	for {
		x, err := p.number()
		if err != nil {
			return nil, err
		}
		y, err := p.number()
		if err != nil {
			return nil, err
		}
		coords = append(coords, geometry.Point{X: x, Y: y})
		if p.expect(',') {
			continue
		}
		break
	}
	if !p.expect(')') {
		return nil, p.failf("expected ')'")
	}
	return coords, nil
}

func (p *parser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && !isDelim(p.input[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return 0, p.failf("expected number")
	}
	token := p.input[start:p.pos]
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		p.pos = start
		return 0, p.failf("malformed number %q", token)
	}
	return v, nil
}

func isDelim(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' || c == '(' || c == ')'
}

// end verifies nothing but whitespace remains.
func (p *parser) end() error {
	p.skipSpace()
	if p.pos != len(p.input) {
		return p.failf("unexpected trailing input")
	}
	return nil
}

func (p *parser) failf(format string, args ...interface{}) error {
	return &ParseError{Input: p.input, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// Package geometry provides the 2D value types carried by scalable records.
//
// Points and sizes travel on the wire as 2-element JSON number arrays
// ([x, y] and [width, height]), never as objects.
package geometry

import (
	"encoding/json"

	"github.com/assetforge/halfscale/internal/errors"
)

// Point represents a 2D coordinate
type Point struct {
	X float64
	Y float64
}

// Div returns a new point with both components divided by the given scalar
func (p Point) Div(scalar float64) Point {
	return Point{
		X: p.X / scalar,
		Y: p.Y / scalar,
	}
}

// Halved returns a copy of the point at half scale
func (p Point) Halved() Point {
	return p.Div(2)
}

// MarshalJSON encodes the point as a 2-element [x, y] array
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes a 2-element [x, y] array into the point
func (p *Point) UnmarshalJSON(data []byte) error {
	pair, err := decodePair(data)
	if err != nil {
		return err
	}
	p.X = pair[0]
	p.Y = pair[1]
	return nil
}

// Size represents 2D dimensions
type Size struct {
	Width  float64
	Height float64
}

// Div returns a new size with both components divided by the given scalar
func (s Size) Div(scalar float64) Size {
	return Size{
		Width:  s.Width / scalar,
		Height: s.Height / scalar,
	}
}

// Halved returns a copy of the size at half scale
func (s Size) Halved() Size {
	return s.Div(2)
}

// MarshalJSON encodes the size as a 2-element [width, height] array
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{s.Width, s.Height})
}

// UnmarshalJSON decodes a 2-element [width, height] array into the size
func (s *Size) UnmarshalJSON(data []byte) error {
	pair, err := decodePair(data)
	if err != nil {
		return err
	}
	s.Width = pair[0]
	s.Height = pair[1]
	return nil
}

// decodePair decodes a JSON array of exactly two numbers
func decodePair(data []byte) ([2]float64, error) {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return [2]float64{}, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			"expected a 2-element number array")
	}
	if len(raw) != 2 {
		return [2]float64{}, errors.InvalidArgumentf(
			"expected a 2-element number array, got %d elements", len(raw))
	}
	return [2]float64{raw[0], raw[1]}, nil
}

// Package entities provides the scalable game-world records for halfscale.
//
// All records are value snapshots: scaling constructs a fresh tree and never
// mutates its source. Decoding is strict — required fields must be present
// and well-typed or the record refuses to unmarshal.
package entities

import (
	"github.com/assetforge/halfscale/internal/pkg/geometry"
	"github.com/assetforge/halfscale/internal/scaling"
)

// Character represents a character placed in a room
type Character struct {
	Name       string         `json:"name"`
	SpriteName string         `json:"spriteName"`
	Position   geometry.Point `json:"position"`
}

var _ scaling.Halver[Character] = Character{}

// Halved returns a copy of the character with its position at half scale.
// Name and sprite are copied verbatim.
func (c Character) Halved() Character {
	return Character{
		Name:       c.Name,
		SpriteName: c.SpriteName,
		Position:   c.Position.Halved(),
	}
}

// UnmarshalJSON decodes a character object, requiring name, spriteName, and
// position to be present and well-typed
func (c *Character) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "character")
	if err != nil {
		return err
	}

	if err := decodeField(raw, "character", "name", &c.Name); err != nil {
		return err
	}
	if err := decodeField(raw, "character", "spriteName", &c.SpriteName); err != nil {
		return err
	}
	return decodeField(raw, "character", "position", &c.Position)
}

package entities

import (
	"github.com/assetforge/halfscale/internal/scaling"
)

// Room represents a named scene holding its characters by value
type Room struct {
	Name       string      `json:"name"`
	SpriteName string      `json:"spriteName"`
	Characters []Character `json:"characters"`
}

var _ scaling.Halver[Room] = Room{}

// Halved returns a copy of the room with every character at half scale.
// The room carries no geometry of its own; scaling is pure delegation.
func (r Room) Halved() Room {
	return Room{
		Name:       r.Name,
		SpriteName: r.SpriteName,
		Characters: scaling.HalveSlice(r.Characters),
	}
}

// AddCharacter appends a character to the room's collection
func (r *Room) AddCharacter(c Character) {
	r.Characters = append(r.Characters, c)
}

// UnmarshalJSON decodes a room object, requiring name, spriteName, and
// characters to be present and well-typed
func (r *Room) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "room")
	if err != nil {
		return err
	}

	if err := decodeField(raw, "room", "name", &r.Name); err != nil {
		return err
	}
	if err := decodeField(raw, "room", "spriteName", &r.SpriteName); err != nil {
		return err
	}
	return decodeField(raw, "room", "characters", &r.Characters)
}

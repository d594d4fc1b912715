package entities

import (
	"github.com/assetforge/halfscale/internal/pkg/geometry"
	"github.com/assetforge/halfscale/internal/scaling"
)

// Item represents a carryable object with on-screen dimensions
type Item struct {
	Name       string        `json:"name"`
	SpriteName string        `json:"spriteName"`
	Size       geometry.Size `json:"size"`
}

var _ scaling.Halver[Item] = Item{}

// Halved returns a copy of the item with its size at half scale.
// Name and sprite are copied verbatim.
func (i Item) Halved() Item {
	return Item{
		Name:       i.Name,
		SpriteName: i.SpriteName,
		Size:       i.Size.Halved(),
	}
}

// UnmarshalJSON decodes an item object, requiring name, spriteName, and
// size to be present and well-typed
func (i *Item) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "item")
	if err != nil {
		return err
	}

	if err := decodeField(raw, "item", "name", &i.Name); err != nil {
		return err
	}
	if err := decodeField(raw, "item", "spriteName", &i.SpriteName); err != nil {
		return err
	}
	return decodeField(raw, "item", "size", &i.Size)
}

// Inventory represents an ordered collection of items, owned by value
type Inventory struct {
	Items []Item `json:"items"`
}

var _ scaling.Halver[Inventory] = Inventory{}

// Halved returns a copy of the inventory with every item at half scale
func (inv Inventory) Halved() Inventory {
	return Inventory{
		Items: scaling.HalveSlice(inv.Items),
	}
}

// AddItem appends an item to the inventory's collection
func (inv *Inventory) AddItem(i Item) {
	inv.Items = append(inv.Items, i)
}

// UnmarshalJSON decodes an inventory object, requiring items to be present
// and well-typed
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "inventory")
	if err != nil {
		return err
	}

	return decodeField(raw, "inventory", "items", &inv.Items)
}

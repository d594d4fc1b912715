package scale

import "github.com/assetforge/halfscale/internal/entities"

// HalveRoomInput defines the request for halving a room document
type HalveRoomInput struct {
	// Data is the room document at source scale
	Data []byte
}

// HalveRoomOutput defines the response for halving a room document
type HalveRoomOutput struct {
	// Room is the halved record tree
	Room *entities.Room
	// Data is the halved room re-encoded
	Data []byte
}

// HalveInventoryInput defines the request for halving an inventory document
type HalveInventoryInput struct {
	// Data is the inventory document at source scale
	Data []byte
}

// HalveInventoryOutput defines the response for halving an inventory document
type HalveInventoryOutput struct {
	// Inventory is the halved record tree
	Inventory *entities.Inventory
	// Data is the halved inventory re-encoded
	Data []byte
}

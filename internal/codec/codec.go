// Package codec is the serialization adapter between structured text and
// scalable record trees. The scaling core never reasons about the wire
// format; it only relies on decode(encode(x)) being structurally lossless.
package codec

//go:generate mockgen -destination=mock/mock_codec.go -package=codecmock github.com/assetforge/halfscale/internal/codec Codec

import (
	"github.com/assetforge/halfscale/internal/entities"
)

// Codec defines the interface for encoding and decoding record trees
type Codec interface {
	// DecodeRoom decodes a room document, rejecting missing or mistyped fields
	DecodeRoom(data []byte) (*entities.Room, error)

	// EncodeRoom encodes a room with deterministic field ordering
	EncodeRoom(room *entities.Room) ([]byte, error)

	// DecodeInventory decodes an inventory document, rejecting missing or
	// mistyped fields
	DecodeInventory(data []byte) (*entities.Inventory, error)

	// EncodeInventory encodes an inventory with deterministic field ordering
	EncodeInventory(inventory *entities.Inventory) ([]byte, error)
}

package codec

import (
	"encoding/json"

	"github.com/assetforge/halfscale/internal/entities"
	"github.com/assetforge/halfscale/internal/errors"
)

// JSONConfig holds the options for the JSON codec
type JSONConfig struct {
	// Indent, when non-empty, pretty-prints encoded documents with the given
	// indent string. Encoding stays deterministic either way.
	Indent string
}

type jsonCodec struct {
	indent string
}

// NewJSON creates a JSON codec. A nil config yields compact output.
func NewJSON(cfg *JSONConfig) Codec {
	if cfg == nil {
		cfg = &JSONConfig{}
	}
	return &jsonCodec{indent: cfg.Indent}
}

// DecodeRoom decodes a room document
func (c *jsonCodec) DecodeRoom(data []byte) (*entities.Room, error) {
	var room entities.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode room")
	}
	return &room, nil
}

// EncodeRoom encodes a room document
func (c *jsonCodec) EncodeRoom(room *entities.Room) ([]byte, error) {
	if room == nil {
		return nil, errors.InvalidArgument("room is required")
	}

	// Collections encode as arrays, never null.
	out := *room
	if out.Characters == nil {
		out.Characters = []entities.Character{}
	}

	return c.marshal(out, "failed to encode room")
}

// DecodeInventory decodes an inventory document
func (c *jsonCodec) DecodeInventory(data []byte) (*entities.Inventory, error) {
	var inventory entities.Inventory
	if err := json.Unmarshal(data, &inventory); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode inventory")
	}
	return &inventory, nil
}

// EncodeInventory encodes an inventory document
func (c *jsonCodec) EncodeInventory(inventory *entities.Inventory) ([]byte, error) {
	if inventory == nil {
		return nil, errors.InvalidArgument("inventory is required")
	}

	out := *inventory
	if out.Items == nil {
		out.Items = []entities.Item{}
	}

	return c.marshal(out, "failed to encode inventory")
}

func (c *jsonCodec) marshal(v interface{}, message string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.indent != "" {
		data, err = json.MarshalIndent(v, "", c.indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, errors.Wrap(err, message)
	}
	return data, nil
}

// Package scale implements the halving orchestrator, the decode → halve →
// encode pipeline that adapts documents authored for the double-density
// reference device into half-scale copies.
package scale

import (
	"context"
	"log/slog"

	"github.com/assetforge/halfscale/internal/codec"
	"github.com/assetforge/halfscale/internal/errors"
)

// Service defines the interface for halving operations
type Service interface {
	// HalveRoom decodes a room document, halves it, and re-encodes it
	HalveRoom(ctx context.Context, input *HalveRoomInput) (*HalveRoomOutput, error)

	// HalveInventory decodes an inventory document, halves it, and
	// re-encodes it
	HalveInventory(ctx context.Context, input *HalveInventoryInput) (*HalveInventoryOutput, error)
}

// Config holds the dependencies for the halving orchestrator
type Config struct {
	Codec codec.Codec
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Codec == nil {
		vb.RequiredField("Codec")
	}

	return vb.Build()
}

type orchestrator struct {
	codec codec.Codec
}

// NewOrchestrator creates a new halving orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		codec: cfg.Codec,
	}, nil
}

// HalveRoom decodes a room document, halves it, and re-encodes it
func (o *orchestrator) HalveRoom(_ context.Context, input *HalveRoomInput) (*HalveRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	room, err := o.codec.DecodeRoom(input.Data)
	if err != nil {
		// Decode failure propagates unchanged; scaling is never attempted.
		return nil, err
	}

	halved := room.Halved()

	slog.Info("Room halved",
		"room", halved.Name,
		"character_count", len(halved.Characters),
	)

	data, err := o.codec.EncodeRoom(&halved)
	if err != nil {
		return nil, err
	}

	return &HalveRoomOutput{
		Room: &halved,
		Data: data,
	}, nil
}

// HalveInventory decodes an inventory document, halves it, and re-encodes it
func (o *orchestrator) HalveInventory(_ context.Context, input *HalveInventoryInput) (*HalveInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inventory, err := o.codec.DecodeInventory(input.Data)
	if err != nil {
		return nil, err
	}

	halved := inventory.Halved()

	slog.Info("Inventory halved",
		"item_count", len(halved.Items),
	)

	data, err := o.codec.EncodeInventory(&halved)
	if err != nil {
		return nil, err
	}

	return &HalveInventoryOutput{
		Inventory: &halved,
		Data:      data,
	}, nil
}

package contracts

import (
	"context"

	"github.com/shopspring/decimal"
)

// RoomTypeDTO mirrors a record owned by the room management module.
type RoomTypeDTO struct {
	RoomTypeID  string
	Name        string
	Description string
	MaxGuests   int64
}

// BookingChannelDTO mirrors a record owned by the channel management module.
type BookingChannelDTO struct {
	BookingChannelID string
	Name             string
	Commission       decimal.Decimal
	PaymentType      string
}

// RoomTypeDirectory lists room types for grid rows. Read-only: room types
// are created and edited elsewhere, this engine never mutates them.
type RoomTypeDirectory interface {
	List(ctx context.Context) ([]*RoomTypeDTO, error)
}

// BookingChannelDirectory lists booking channels for the channel selector.
type BookingChannelDirectory interface {
	List(ctx context.Context) ([]*BookingChannelDTO, error)
}

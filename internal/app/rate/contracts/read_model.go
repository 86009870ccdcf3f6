package contracts

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// RateDTO is the read-side projection of a room rate.
type RateDTO struct {
	RateID           string
	RoomTypeID       string
	BookingChannelID string
	Day              domain.Day
	Amount           decimal.Decimal
}

// RateReadModel serves calendar reads. The window query runs against the
// (channel, date) composite index so its cost tracks the visible window, not
// the channel's whole history.
type RateReadModel interface {
	// ListForChannelWindow returns every rate for the channel whose day falls
	// within [start, end] inclusive. An empty window yields an empty slice,
	// never an error.
	ListForChannelWindow(ctx context.Context, channelID string, start, end domain.Day) ([]*RateDTO, error)
}

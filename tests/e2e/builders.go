//go:build e2e

package e2e

import (
	"github.com/shopspring/decimal"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate_range"
)

// RateRangeBuilder helps create rate range requests with a fluent interface.
type RateRangeBuilder struct {
	channelID  string
	roomTypeID string
	from       domain.Day
	to         domain.Day
	amount     decimal.Decimal
}

// NewRateRangeBuilder creates a new builder with default values.
func NewRateRangeBuilder(from, to domain.Day) *RateRangeBuilder {
	return &RateRangeBuilder{
		channelID:  "ch-1",
		roomTypeID: "rt-1",
		from:       from,
		to:         to,
		amount:     decimal.RequireFromString("120.00"),
	}
}

// WithChannel sets the booking channel.
func (b *RateRangeBuilder) WithChannel(channelID string) *RateRangeBuilder {
	b.channelID = channelID
	return b
}

// WithRoomType sets the room type.
func (b *RateRangeBuilder) WithRoomType(roomTypeID string) *RateRangeBuilder {
	b.roomTypeID = roomTypeID
	return b
}

// WithAmount sets the nightly amount.
func (b *RateRangeBuilder) WithAmount(amount string) *RateRangeBuilder {
	b.amount = decimal.RequireFromString(amount)
	return b
}

// Build creates the create_rate_range.Request.
func (b *RateRangeBuilder) Build() *create_rate_range.Request {
	return &create_rate_range.Request{
		BookingChannelID: b.channelID,
		RoomTypeID:       b.roomTypeID,
		DateFrom:         b.from,
		DateTo:           b.to,
		Amount:           b.amount,
	}
}

// BuildSingle creates a single-cell create_rate.Request for the from day.
func (b *RateRangeBuilder) BuildSingle() *create_rate.Request {
	return &create_rate.Request{
		BookingChannelID: b.channelID,
		RoomTypeID:       b.roomTypeID,
		Date:             b.from,
		Amount:           b.amount,
	}
}

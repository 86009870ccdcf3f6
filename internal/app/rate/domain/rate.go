package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field names for change tracking
const (
	FieldAmount = "amount"
)

// RoomRate is the aggregate for one persisted price: one room type, on one
// booking channel, on one calendar day. At most one RoomRate exists per
// (room type, channel, day) cell; the store enforces this with a unique
// index, the domain only validates shape.
type RoomRate struct {
	id        string
	roomTypeID string
	channelID  string
	day       Day
	amount    decimal.Decimal
	createdAt time.Time
	updatedAt time.Time

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewRoomRate creates a new RoomRate aggregate (for creation).
// The day is normalized to the canonical calendar day regardless of the
// time-of-day the caller passed in.
func NewRoomRate(id, roomTypeID, channelID string, day Day, amount decimal.Decimal, now time.Time) (*RoomRate, error) {
	if roomTypeID == "" {
		return nil, ErrMissingRoomType
	}

	if channelID == "" {
		return nil, ErrMissingChannel
	}

	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	r := &RoomRate{
		id:         id,
		roomTypeID: roomTypeID,
		channelID:  channelID,
		day:        day,
		amount:     amount,
		createdAt:  now,
		updatedAt:  now,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}

	r.changes.MarkDirty(FieldAmount)

	r.recordEvent(&RateCreatedEvent{
		RateID:           r.id,
		RoomTypeID:       r.roomTypeID,
		BookingChannelID: r.channelID,
		Date:             r.day.String(),
		Amount:           r.amount,
		CreatedAt:        r.createdAt,
	})

	return r, nil
}

// ReconstructRoomRate reconstitutes a RoomRate from database (for loading existing rates).
func ReconstructRoomRate(
	id, roomTypeID, channelID string,
	day Day,
	amount decimal.Decimal,
	createdAt, updatedAt time.Time,
) *RoomRate {
	return &RoomRate{
		id:         id,
		roomTypeID: roomTypeID,
		channelID:  channelID,
		day:        day,
		amount:     amount,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		changes:    NewChangeTracker(), // Start with clean slate
		events:     make([]DomainEvent, 0),
	}
}

// Getters
func (r *RoomRate) ID() string                  { return r.id }
func (r *RoomRate) RoomTypeID() string          { return r.roomTypeID }
func (r *RoomRate) BookingChannelID() string    { return r.channelID }
func (r *RoomRate) Day() Day                    { return r.day }
func (r *RoomRate) Amount() decimal.Decimal     { return r.amount }
func (r *RoomRate) CreatedAt() time.Time        { return r.createdAt }
func (r *RoomRate) UpdatedAt() time.Time        { return r.updatedAt }
func (r *RoomRate) Changes() *ChangeTracker     { return r.changes }
func (r *RoomRate) DomainEvents() []DomainEvent { return r.events }

// DisplayAmount renders the amount the way grid cells show it, fixed to two
// decimal places.
func (r *RoomRate) DisplayAmount() string {
	return r.amount.StringFixed(2)
}

// SetAmount updates the rate amount (the edit flow).
func (r *RoomRate) SetAmount(amount decimal.Decimal, now time.Time) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	r.amount = amount
	r.changes.MarkDirty(FieldAmount)

	r.recordEvent(&RateUpdatedEvent{
		RateID:           r.id,
		RoomTypeID:       r.roomTypeID,
		BookingChannelID: r.channelID,
		Date:             r.day.String(),
		Amount:           r.amount,
		UpdatedAt:        now,
	})

	return nil
}

// recordEvent adds a domain event to the list of events.
func (r *RoomRate) recordEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (r *RoomRate) ClearEvents() {
	r.events = make([]DomainEvent, 0)
}

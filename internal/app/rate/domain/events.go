package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// RateCreatedEvent is emitted when a room rate is created.
type RateCreatedEvent struct {
	RateID           string
	RoomTypeID       string
	BookingChannelID string
	Date             string
	Amount           decimal.Decimal
	CreatedAt        time.Time
}

func (e *RateCreatedEvent) EventType() string {
	return "rate.created"
}

func (e *RateCreatedEvent) AggregateID() string {
	return e.RateID
}

// RateUpdatedEvent is emitted when a rate amount is changed.
type RateUpdatedEvent struct {
	RateID           string
	RoomTypeID       string
	BookingChannelID string
	Date             string
	Amount           decimal.Decimal
	UpdatedAt        time.Time
}

func (e *RateUpdatedEvent) EventType() string {
	return "rate.updated"
}

func (e *RateUpdatedEvent) AggregateID() string {
	return e.RateID
}

// RateDeletedEvent is emitted when a rate is deleted.
type RateDeletedEvent struct {
	RateID    string
	DeletedAt time.Time
}

func (e *RateDeletedEvent) EventType() string {
	return "rate.deleted"
}

func (e *RateDeletedEvent) AggregateID() string {
	return e.RateID
}

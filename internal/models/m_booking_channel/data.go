package m_booking_channel

import (
	"math/big"
	"time"
)

// Data represents the database model for the booking_channels table (read-only here).
type Data struct {
	BookingChannelID string    `spanner:"booking_channel_id"`
	Name             string    `spanner:"name"`
	Commission       big.Rat   `spanner:"commission"`
	PaymentType      string    `spanner:"payment_type"`
	CreatedAt        time.Time `spanner:"created_at"`
}

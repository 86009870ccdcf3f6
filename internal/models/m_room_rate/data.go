package m_room_rate

import (
	"math/big"
	"time"
)

// Data represents the database model for the room_rates table.
// Amount maps to a Spanner NUMERIC column.
type Data struct {
	RateID           string    `spanner:"rate_id"`
	RoomTypeID       string    `spanner:"room_type_id"`
	BookingChannelID string    `spanner:"booking_channel_id"`
	RateDate         time.Time `spanner:"rate_date"`
	Amount           big.Rat   `spanner:"amount"`
	CreatedAt        time.Time `spanner:"created_at"`
	UpdatedAt        time.Time `spanner:"updated_at"`
}

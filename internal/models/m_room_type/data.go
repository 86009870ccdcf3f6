package m_room_type

import "time"

// Data represents the database model for the room_types table (read-only here).
type Data struct {
	RoomTypeID  string    `spanner:"room_type_id"`
	Name        string    `spanner:"name"`
	Description string    `spanner:"description"`
	MaxGuests   int64     `spanner:"max_guests"`
	CreatedAt   time.Time `spanner:"created_at"`
}

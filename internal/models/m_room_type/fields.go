package m_room_type

// Field name constants for the room_types table.
// The table is owned by the room management module; this service reads it
// only to resolve names for the calendar grid.
const (
	TableName = "room_types"

	RoomTypeID  = "room_type_id"
	Name        = "name"
	Description = "description"
	MaxGuests   = "max_guests"
	CreatedAt   = "created_at"
)

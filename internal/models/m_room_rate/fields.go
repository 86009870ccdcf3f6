package m_room_rate

// Field name constants for the room_rates table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "room_rates"

	RateID           = "rate_id"
	RoomTypeID       = "room_type_id"
	BookingChannelID = "booking_channel_id"
	RateDate         = "rate_date"
	Amount           = "amount"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)

// ByCellIndex is the unique index enforcing one rate per
// (channel, room type, day) cell.
const ByCellIndex = "room_rates_by_cell"

// ByChannelDateIndex is the composite index serving windowed calendar reads.
const ByChannelDateIndex = "room_rates_by_channel_date"

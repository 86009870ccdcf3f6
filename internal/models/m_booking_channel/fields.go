package m_booking_channel

// Field name constants for the booking_channels table.
// The table is owned by the channel management module; this service reads it
// only for the channel selector and overlay keys.
const (
	TableName = "booking_channels"

	BookingChannelID = "booking_channel_id"
	Name             = "name"
	Commission       = "commission"
	PaymentType      = "payment_type"
	CreatedAt        = "created_at"
)

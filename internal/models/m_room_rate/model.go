package m_room_rate

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the room_rates table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a room rate.
// It deliberately uses Insert, not InsertOrUpdate: a second write for the
// same (channel, room type, day) cell must fail with AlreadyExists through
// the unique cell index rather than silently overwrite.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			RateID,
			RoomTypeID,
			BookingChannelID,
			RateDate,
			Amount,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.RateID,
			data.RoomTypeID,
			data.BookingChannelID,
			data.RateDate,
			data.Amount,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific rate fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(rateID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always update the UpdatedAt timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, RateID)
	values = append(values, rateID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a room rate.
func (m *Model) DeleteMut(rateID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{rateID})
}

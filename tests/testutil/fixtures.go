package testutil

import (
	"context"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/harborview/rateplan-service/internal/models/m_booking_channel"
	"github.com/harborview/rateplan-service/internal/models/m_outbox"
	"github.com/harborview/rateplan-service/internal/models/m_room_rate"
	"github.com/harborview/rateplan-service/internal/models/m_room_type"
)

// CreateTestRoomType seeds a room type row directly in the database.
func CreateTestRoomType(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	ctx := context.Background()
	roomTypeID := uuid.New().String()

	mutation := spanner.InsertOrUpdate(
		m_room_type.TableName,
		[]string{
			m_room_type.RoomTypeID,
			m_room_type.Name,
			m_room_type.Description,
			m_room_type.MaxGuests,
			m_room_type.CreatedAt,
		},
		[]interface{}{roomTypeID, name, "Test room type", int64(2), spanner.CommitTimestamp},
	)

	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test room type")

	return roomTypeID
}

// CreateTestChannel seeds a booking channel row directly in the database.
func CreateTestChannel(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	ctx := context.Background()
	channelID := uuid.New().String()
	commission := new(big.Rat).SetFloat64(0.15)

	mutation := spanner.InsertOrUpdate(
		m_booking_channel.TableName,
		[]string{
			m_booking_channel.BookingChannelID,
			m_booking_channel.Name,
			m_booking_channel.Commission,
			m_booking_channel.PaymentType,
			m_booking_channel.CreatedAt,
		},
		[]interface{}{channelID, name, commission, "prepaid", spanner.CommitTimestamp},
	)

	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test booking channel")

	return channelID
}

// CreateTestRate seeds a room rate cell directly in the database.
// amount is given in whole currency units, e.g. "120.50" as 12050/100.
func CreateTestRate(t *testing.T, client *spanner.Client, channelID, roomTypeID string, day time.Time, amountNum, amountDen int64) string {
	t.Helper()

	ctx := context.Background()
	rateID := uuid.New().String()

	model := m_room_rate.NewModel()
	data := &m_room_rate.Data{
		RateID:           rateID,
		RoomTypeID:       roomTypeID,
		BookingChannelID: channelID,
		RateDate:         day,
		Amount:           *big.NewRat(amountNum, amountDen),
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test rate")

	return rateID
}

// GetRateByID retrieves a rate row from the database for verification.
func GetRateByID(t *testing.T, client *spanner.Client, rateID string) *m_room_rate.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_room_rate.TableName, spanner.Key{rateID}, []string{
		m_room_rate.RateID,
		m_room_rate.RoomTypeID,
		m_room_rate.BookingChannelID,
		m_room_rate.RateDate,
		m_room_rate.Amount,
		m_room_rate.CreatedAt,
		m_room_rate.UpdatedAt,
	})
	require.NoError(t, err, "failed to get rate by id")

	var data m_room_rate.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse rate data")

	return &data
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// AssertOutboxEventCount verifies the count of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL: "SELECT COUNT(*) FROM outbox_events",
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query outbox event count")

	var count int64
	err = row.Columns(&count)
	require.NoError(t, err, "failed to parse count")

	require.Equal(t, int64(expectedCount), count, "unexpected outbox event count")
}

// CreateTestOutboxEvent creates a test outbox event.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType string, aggregateID string) string {
	t.Helper()

	ctx := context.Background()
	eventID := uuid.New().String()

	model := m_outbox.NewModel()
	data := &m_outbox.Data{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: `{"test": "data"}`, Valid: true},
		Status:      m_outbox.StatusPending,
		RetryCount:  0,
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test outbox event")

	return eventID
}

package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDay(t *testing.T, s string) Day {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestNewRoomRate(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day := DayOf(now)

	tests := []struct {
		name       string
		roomTypeID string
		channelID  string
		amount     decimal.Decimal
		wantErr    error
	}{
		{
			name:       "valid rate",
			roomTypeID: "rt-1",
			channelID:  "ch-1",
			amount:     decimal.RequireFromString("120.00"),
		},
		{
			name:       "zero amount is allowed",
			roomTypeID: "rt-1",
			channelID:  "ch-1",
			amount:     decimal.Zero,
		},
		{
			name:      "missing room type",
			channelID: "ch-1",
			amount:    decimal.RequireFromString("120.00"),
			wantErr:   ErrMissingRoomType,
		},
		{
			name:       "missing channel",
			roomTypeID: "rt-1",
			amount:     decimal.RequireFromString("120.00"),
			wantErr:    ErrMissingChannel,
		},
		{
			name:       "negative amount",
			roomTypeID: "rt-1",
			channelID:  "ch-1",
			amount:     decimal.RequireFromString("-1"),
			wantErr:    ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := NewRoomRate("rate-1", tt.roomTypeID, tt.channelID, day, tt.amount, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "rate-1", rate.ID())
			assert.Equal(t, tt.roomTypeID, rate.RoomTypeID())
			assert.Equal(t, tt.channelID, rate.BookingChannelID())
			assert.True(t, rate.Day().Equal(day))
			assert.True(t, rate.Amount().Equal(tt.amount))
		})
	}
}

func TestNewRoomRate_RecordsCreatedEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rate, err := NewRoomRate("rate-1", "rt-1", "ch-1", DayOf(now), decimal.RequireFromString("99.50"), now)
	require.NoError(t, err)

	events := rate.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "rate.created", events[0].EventType())
	assert.Equal(t, "rate-1", events[0].AggregateID())

	rate.ClearEvents()
	assert.Empty(t, rate.DomainEvents())
}

func TestRoomRate_DisplayAmount(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		amount string
		want   string
	}{
		{amount: "120", want: "120.00"},
		{amount: "99.5", want: "99.50"},
		{amount: "0", want: "0.00"},
		{amount: "120.005", want: "120.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			rate, err := NewRoomRate("rate-1", "rt-1", "ch-1", DayOf(now), decimal.RequireFromString(tt.amount), now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rate.DisplayAmount())
		})
	}
}

func TestRoomRate_SetAmount(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rate := ReconstructRoomRate("rate-1", "rt-1", "ch-1", testDay(t, "2025-06-03"),
		decimal.RequireFromString("100"), now, now)

	require.False(t, rate.Changes().HasChanges())

	err := rate.SetAmount(decimal.RequireFromString("135.50"), now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "135.50", rate.DisplayAmount())
	assert.True(t, rate.Changes().Dirty(FieldAmount))

	events := rate.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "rate.updated", events[0].EventType())
}

func TestRoomRate_SetAmount_RejectsNegative(t *testing.T) {
	now := time.Now().UTC()
	rate := ReconstructRoomRate("rate-1", "rt-1", "ch-1", DayOf(now),
		decimal.RequireFromString("100"), now, now)

	err := rate.SetAmount(decimal.RequireFromString("-0.01"), now)

	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, "100.00", rate.DisplayAmount())
	assert.False(t, rate.Changes().HasChanges())
}

package calendar

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

func day(t *testing.T, s string) domain.Day {
	t.Helper()
	d, err := domain.ParseDay(s)
	require.NoError(t, err)
	return d
}

func rateDTO(t *testing.T, rateID, roomTypeID, channelID, date, amount string) *contracts.RateDTO {
	t.Helper()
	return &contracts.RateDTO{
		RateID:           rateID,
		RoomTypeID:       roomTypeID,
		BookingChannelID: channelID,
		Day:              day(t, date),
		Amount:           decimal.RequireFromString(amount),
	}
}

func TestBuild_FillsRatesAndPlaceholders(t *testing.T) {
	roomTypes := []*contracts.RoomTypeDTO{
		{RoomTypeID: "rt-1", Name: "Double Room"},
	}
	// Week of 2025-06-02 (Mon) .. 2025-06-08 (Sun); rates exist Mon and Tue.
	rates := []*contracts.RateDTO{
		rateDTO(t, "r-2", "rt-1", "ch-1", "2025-06-02", "120"),
		rateDTO(t, "r-3", "rt-1", "ch-1", "2025-06-03", "120"),
	}

	grid := Build("ch-1", roomTypes, day(t, "2025-06-04"), rates)

	require.Len(t, grid.Rows, 1)
	assert.False(t, grid.Loading)
	assert.Equal(t, "ch-1", grid.BookingChannelID)
	assert.Equal(t, "2025-06-02", grid.Week[0].String())
	assert.Equal(t, "2025-06-08", grid.Week[6].String())

	row := grid.Rows[0]
	assert.Equal(t, "Double Room", row.RoomTypeName)

	// Monday and Tuesday carry the rate, the rest show the placeholder.
	for i, cell := range row.Cells {
		if i < 2 {
			assert.True(t, cell.HasRate, "day %s", cell.Day)
			assert.Equal(t, "120.00", cell.Display)
			assert.NotEmpty(t, cell.RateID)
		} else {
			assert.False(t, cell.HasRate, "day %s", cell.Day)
			assert.Equal(t, PlaceholderNoRate, cell.Display)
			assert.Empty(t, cell.RateID)
		}
	}
}

func TestBuild_EveryRoomTypeGetsARow(t *testing.T) {
	roomTypes := []*contracts.RoomTypeDTO{
		{RoomTypeID: "rt-1", Name: "Single"},
		{RoomTypeID: "rt-2", Name: "Double"},
		{RoomTypeID: "rt-3", Name: "Suite"},
	}

	grid := Build("ch-1", roomTypes, day(t, "2025-06-04"), nil)

	require.Len(t, grid.Rows, 3)
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			assert.False(t, cell.HasRate)
			assert.Equal(t, PlaceholderNoRate, cell.Display)
		}
	}
}

func TestBuild_RatePlacedOnlyInItsOwnRow(t *testing.T) {
	roomTypes := []*contracts.RoomTypeDTO{
		{RoomTypeID: "rt-1", Name: "Single"},
		{RoomTypeID: "rt-2", Name: "Double"},
	}
	rates := []*contracts.RateDTO{
		rateDTO(t, "r-1", "rt-2", "ch-1", "2025-06-04", "95.5"),
	}

	grid := Build("ch-1", roomTypes, day(t, "2025-06-04"), rates)

	assert.False(t, grid.Rows[0].Cells[2].HasRate)
	assert.True(t, grid.Rows[1].Cells[2].HasRate)
	assert.Equal(t, "95.50", grid.Rows[1].Cells[2].Display)
}

func TestSkeleton(t *testing.T) {
	grid := Skeleton("ch-1", 4, day(t, "2025-06-04"))

	assert.True(t, grid.Loading)
	require.Len(t, grid.Rows, 4)
	assert.Equal(t, "2025-06-02", grid.Week[0].String())

	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			assert.Equal(t, PlaceholderNoRate, cell.Display)
			assert.False(t, cell.HasRate)
		}
	}
}

func TestGrid_Click(t *testing.T) {
	roomTypes := []*contracts.RoomTypeDTO{{RoomTypeID: "rt-1", Name: "Double"}}
	rates := []*contracts.RateDTO{
		rateDTO(t, "r-1", "rt-1", "ch-1", "2025-06-04", "120"),
	}
	grid := Build("ch-1", roomTypes, day(t, "2025-06-04"), rates)
	today := day(t, "2025-06-04")

	t.Run("empty future cell opens creation seeded from the cell", func(t *testing.T) {
		cell := grid.Rows[0].Cells[3] // Thursday, empty
		outcome, seed := grid.Click(cell, today)

		assert.Equal(t, ClickCreate, outcome)
		require.NotNil(t, seed)
		assert.Equal(t, "ch-1", seed.BookingChannelID)
		assert.Equal(t, "rt-1", seed.RoomTypeID)
		assert.Equal(t, "2025-06-05", seed.Day.String())
	})

	t.Run("occupied cell routes to edit, never duplicate creation", func(t *testing.T) {
		cell := grid.Rows[0].Cells[2] // Wednesday, has rate
		outcome, seed := grid.Click(cell, today)

		assert.Equal(t, ClickEditExisting, outcome)
		assert.Nil(t, seed)
	})

	t.Run("past cell is rejected", func(t *testing.T) {
		cell := grid.Rows[0].Cells[0] // Monday, before today
		outcome, seed := grid.Click(cell, today)

		assert.Equal(t, ClickRejectedPast, outcome)
		assert.Nil(t, seed)
	})

	t.Run("today itself is clickable", func(t *testing.T) {
		cell := grid.Rows[0].Cells[2]
		outcome, _ := grid.Click(cell, day(t, "2025-06-01"))

		assert.Equal(t, ClickEditExisting, outcome)
	})
}

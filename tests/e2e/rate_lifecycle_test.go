//go:build e2e

package e2e

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/delete_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/update_rate"
	"github.com/harborview/rateplan-service/tests/testutil"
)

func mustDay(t *testing.T, s string) domain.Day {
	t.Helper()
	d, err := domain.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestRateLifecycle_CreateRangeUpdateDelete(t *testing.T) {
	services, mockClock, cleanup := setupTestWithMockClock(t)
	defer cleanup()

	mockClock.Set(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	// Create three days at 120.00.
	req := NewRateRangeBuilder(mustDay(t, "2025-06-02"), mustDay(t, "2025-06-04")).Build()
	rates, err := services.CreateRateRange.Execute(ctx(), req)
	require.NoError(t, err)
	require.Len(t, rates, 3)

	testutil.AssertRowCount(t, services.Client, "room_rates", 3)
	testutil.AssertOutboxEvent(t, services.Client, "rate.created")
	testutil.AssertOutboxEventCount(t, services.Client, 3)

	// The calendar week shows all three days.
	result, err := services.ListWeekRates.Execute(ctx(), "ch-1", mustDay(t, "2025-06-04"))
	require.NoError(t, err)
	require.Len(t, result.Rates, 3)
	assert.Equal(t, "2025-06-02", result.Week[0].String())
	for _, r := range result.Rates {
		assert.Equal(t, "120.00", r.Amount.StringFixed(2))
	}

	// Edit the middle day.
	updated, err := services.UpdateRate.Execute(ctx(), &update_rate.Request{
		RateID: rates[1].ID(),
		Amount: decimal.RequireFromString("150"),
	})
	require.NoError(t, err)
	assert.Equal(t, "150.00", updated.DisplayAmount())
	testutil.AssertOutboxEvent(t, services.Client, "rate.updated")

	// Delete the last day.
	err = services.DeleteRate.Execute(ctx(), &delete_rate.Request{RateID: rates[2].ID()})
	require.NoError(t, err)
	testutil.AssertRowCount(t, services.Client, "room_rates", 2)
	testutil.AssertOutboxEvent(t, services.Client, "rate.deleted")

	// The window reflects both changes.
	result, err = services.ListWeekRates.Execute(ctx(), "ch-1", mustDay(t, "2025-06-04"))
	require.NoError(t, err)
	require.Len(t, result.Rates, 2)
	assert.Equal(t, "120.00", result.Rates[0].Amount.StringFixed(2))
	assert.Equal(t, "150.00", result.Rates[1].Amount.StringFixed(2))
}

func TestRateLifecycle_RangeIsAtomic(t *testing.T) {
	services, mockClock, cleanup := setupTestWithMockClock(t)
	defer cleanup()

	mockClock.Set(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	// Occupy one day in the middle of the target range.
	_, err := services.CreateRateRange.Execute(ctx(),
		NewRateRangeBuilder(mustDay(t, "2025-06-03"), mustDay(t, "2025-06-03")).Build())
	require.NoError(t, err)
	testutil.AssertRowCount(t, services.Client, "room_rates", 1)

	// A range overlapping the occupied day must create nothing at all.
	_, err = services.CreateRateRange.Execute(ctx(),
		NewRateRangeBuilder(mustDay(t, "2025-06-02"), mustDay(t, "2025-06-05")).WithAmount("99").Build())

	require.ErrorIs(t, err, domain.ErrCellOccupied)
	testutil.AssertRowCount(t, services.Client, "room_rates", 1)
	testutil.AssertOutboxEventCount(t, services.Client, 1)
}

func TestRateLifecycle_PastStartRejected(t *testing.T) {
	services, mockClock, cleanup := setupTestWithMockClock(t)
	defer cleanup()

	mockClock.Set(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	_, err := services.CreateRateRange.Execute(ctx(),
		NewRateRangeBuilder(mustDay(t, "2025-06-09"), mustDay(t, "2025-06-12")).Build())

	require.ErrorIs(t, err, domain.ErrStartInPast)
	testutil.AssertRowCount(t, services.Client, "room_rates", 0)
}

func TestRateLifecycle_SameCellDifferentChannels(t *testing.T) {
	services, mockClock, cleanup := setupTestWithMockClock(t)
	defer cleanup()

	mockClock.Set(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	day := mustDay(t, "2025-06-03")

	_, err := services.CreateRate.Execute(ctx(),
		NewRateRangeBuilder(day, day).WithChannel("ch-direct").BuildSingle())
	require.NoError(t, err)

	// Same room type and day on another channel is a different cell.
	_, err = services.CreateRate.Execute(ctx(),
		NewRateRangeBuilder(day, day).WithChannel("ch-ota").BuildSingle())
	require.NoError(t, err)

	testutil.AssertRowCount(t, services.Client, "room_rates", 2)
}

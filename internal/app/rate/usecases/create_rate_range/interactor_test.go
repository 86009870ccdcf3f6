package create_rate_range

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/pkg/clock"
)

func TestInteractor_Validate(t *testing.T) {
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	day := func(s string) domain.Day {
		d, err := domain.ParseDay(s)
		require.NoError(t, err)
		return d
	}

	valid := func() *Request {
		return &Request{
			BookingChannelID: "ch-1",
			RoomTypeID:       "rt-1",
			DateFrom:         day("2025-06-05"),
			DateTo:           day("2025-06-07"),
			Amount:           decimal.RequireFromString("120"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:   "valid range passes",
			mutate: func(r *Request) {},
		},
		{
			name:   "single-day range passes",
			mutate: func(r *Request) { r.DateTo = r.DateFrom },
		},
		{
			name:   "today is a valid start",
			mutate: func(r *Request) { r.DateFrom = day("2025-06-04"); r.DateTo = day("2025-06-04") },
		},
		{
			name:    "missing room type",
			mutate:  func(r *Request) { r.RoomTypeID = "" },
			wantErr: domain.ErrMissingRoomType,
		},
		{
			name:    "missing channel",
			mutate:  func(r *Request) { r.BookingChannelID = "" },
			wantErr: domain.ErrMissingChannel,
		},
		{
			name:    "zero dates",
			mutate:  func(r *Request) { r.DateFrom = domain.Day{}; r.DateTo = domain.Day{} },
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "end before start",
			mutate:  func(r *Request) { r.DateFrom = day("2025-06-07"); r.DateTo = day("2025-06-05") },
			wantErr: domain.ErrEndBeforeStart,
		},
		{
			name:    "start in the past",
			mutate:  func(r *Request) { r.DateFrom = day("2025-06-03") },
			wantErr: domain.ErrStartInPast,
		},
		{
			name:    "negative amount",
			mutate:  func(r *Request) { r.Amount = decimal.RequireFromString("-1") },
			wantErr: domain.ErrNegativeAmount,
		},
	}

	interactor := NewInteractor(nil, nil, nil, clk)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := interactor.validate(req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInteractor_Execute_RejectsBeforeStoreAccess(t *testing.T) {
	// Repos and committer are nil: a validation failure must return before
	// any of them is touched.
	clk := clock.NewMockClock(time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC))
	interactor := NewInteractor(nil, nil, nil, clk)

	from, err := domain.ParseDay("2025-06-01")
	require.NoError(t, err)
	to, err := domain.ParseDay("2025-06-03")
	require.NoError(t, err)

	rates, execErr := interactor.Execute(context.Background(), &Request{
		BookingChannelID: "ch-1",
		RoomTypeID:       "rt-1",
		DateFrom:         from,
		DateTo:           to,
		Amount:           decimal.RequireFromString("120"),
	})

	assert.ErrorIs(t, execErr, domain.ErrStartInPast)
	assert.Nil(t, rates)
}

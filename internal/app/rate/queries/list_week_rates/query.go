package list_week_rates

import (
	"context"
	"fmt"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// Result is the windowed rate set for one channel and one calendar week.
type Result struct {
	Week  [domain.WeekDays]domain.Day
	Rates []*contracts.RateDTO
}

// Query resolves the calendar week containing a reference date and fetches
// the channel's rates restricted to that window.
type Query struct {
	readModel contracts.RateReadModel
}

// NewQuery creates a new list week rates query.
func NewQuery(readModel contracts.RateReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute fetches the rates for the week containing reference.
// A week with no rates is a normal result, not an error.
func (q *Query) Execute(ctx context.Context, channelID string, reference domain.Day) (*Result, error) {
	if channelID == "" {
		return nil, domain.ErrMissingChannel
	}
	if reference.IsZero() {
		return nil, domain.ErrInvalidDate
	}

	week := domain.WeekOf(reference)

	rates, err := q.readModel.ListForChannelWindow(ctx, channelID, week[0], week[domain.WeekDays-1])
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for week: %w", err)
	}

	return &Result{
		Week:  week,
		Rates: rates,
	}, nil
}

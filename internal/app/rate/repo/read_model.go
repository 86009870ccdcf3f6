package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/models/m_room_rate"
	"github.com/harborview/rateplan-service/internal/pkg/query"
)

// RateReadModelImpl implements RateReadModel for Spanner.
type RateReadModelImpl struct {
	client *spanner.Client
}

// NewRateReadModel creates a new RateReadModel implementation.
func NewRateReadModel(client *spanner.Client) contracts.RateReadModel {
	return &RateReadModelImpl{
		client: client,
	}
}

// ListForChannelWindow returns the channel's rates with days inside
// [start, end] inclusive. The date bound is part of the query and served by
// the (channel, date) index, so cost is proportional to the window.
func (rm *RateReadModelImpl) ListForChannelWindow(ctx context.Context, channelID string, start, end domain.Day) ([]*contracts.RateDTO, error) {
	if end.Before(start) {
		return []*contracts.RateDTO{}, nil
	}

	stmt := query.From(m_room_rate.TableName).
		ForceIndex(m_room_rate.ByChannelDateIndex).
		Select(
			m_room_rate.RateID,
			m_room_rate.RoomTypeID,
			m_room_rate.BookingChannelID,
			m_room_rate.RateDate,
			m_room_rate.Amount,
			m_room_rate.CreatedAt,
			m_room_rate.UpdatedAt,
		).
		Where(query.Eq(m_room_rate.BookingChannelID, channelID)).
		// Upper bound is the last instant of the end day so rows written
		// before day normalization (with a time-of-day component) still match.
		Where(query.Between(m_room_rate.RateDate, start.Time(), end.AddDays(1).Time().Add(-time.Nanosecond))).
		OrderBy(m_room_rate.RateDate, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	rates := make([]*contracts.RateDTO, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate room rates: %w", err)
		}

		var data m_room_rate.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse room rate: %w", err)
		}

		// Re-truncate to day granularity as a guard: rows written before the
		// normalization existed may carry a time-of-day component.
		day := domain.DayOf(data.RateDate)
		if day.Before(start) || day.After(end) {
			continue
		}

		rates = append(rates, &contracts.RateDTO{
			RateID:           data.RateID,
			RoomTypeID:       data.RoomTypeID,
			BookingChannelID: data.BookingChannelID,
			Day:              day,
			Amount:           decimal.NewFromBigRat(&data.Amount, amountScale),
		})
	}

	return rates, nil
}

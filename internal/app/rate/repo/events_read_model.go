package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/harborview/rateplan-service/internal/app/rate/queries/list_events"
	"github.com/harborview/rateplan-service/internal/models/m_outbox"
	"github.com/harborview/rateplan-service/internal/pkg/query"
)

// EventsReadModel implements list_events.EventsReadModel for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{
		client: client,
	}
}

// ListEvents retrieves events from the outbox_events table, newest first.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error) {
	builder := query.From(m_outbox.TableName).
		Select(
			m_outbox.EventID,
			m_outbox.EventType,
			m_outbox.AggregateID,
			m_outbox.Payload,
			m_outbox.Status,
			m_outbox.CreatedAt,
			m_outbox.ProcessedAt,
			m_outbox.RetryCount,
			m_outbox.ErrorMessage,
		)

	if req.EventType != nil {
		builder = builder.Where(query.Eq(m_outbox.EventType, *req.EventType))
	}
	if req.AggregateID != nil {
		builder = builder.Where(query.Eq(m_outbox.AggregateID, *req.AggregateID))
	}
	if req.Status != nil {
		builder = builder.Where(query.Eq(m_outbox.Status, *req.Status))
	}

	stmt := builder.
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(int64(req.Limit)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
		}

		var event m_outbox.Data
		if err := row.Columns(
			&event.EventID,
			&event.EventType,
			&event.AggregateID,
			&event.Payload,
			&event.Status,
			&event.CreatedAt,
			&event.ProcessedAt,
			&event.RetryCount,
			&event.ErrorMessage,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, &event)
	}

	return events, int64(len(events)), nil
}

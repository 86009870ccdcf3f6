package list_events

import (
	"context"

	"github.com/harborview/rateplan-service/internal/models/m_outbox"
)

// Request contains filtering parameters for listing outbox events.
type Request struct {
	EventType   *string // e.g. "rate.created"
	AggregateID *string // rate id
	Status      *string // "pending", "completed", "failed"
	Limit       int     // max events to return (default 100)
}

// EventsReadModel defines the interface for reading outbox events.
type EventsReadModel interface {
	ListEvents(ctx context.Context, req *Request) ([]*m_outbox.Data, int64, error)
}

// Query handles the list events query, the operational view into the outbox.
type Query struct {
	readModel EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a list of events with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*m_outbox.Data, int64, error) {
	if req.Limit <= 0 {
		req.Limit = 100
	}
	if req.Limit > 1000 {
		req.Limit = 1000
	}

	return q.readModel.ListEvents(ctx, req)
}

package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// OutboxEvent is the persistence shape of a domain event awaiting publication.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
}

// OutboxRepository writes rate lifecycle events transactionally with the row
// mutations that caused them.
type OutboxRepository interface {
	// InsertMut creates a mutation for inserting an outbox event
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// EnrichEvent converts a domain event to an outbox event with metadata
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent
}

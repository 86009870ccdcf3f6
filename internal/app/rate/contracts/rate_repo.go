package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// RateRepository defines the interface for room rate persistence.
// Repositories return mutations, they don't apply them: usecases collect the
// mutations for a whole operation (all days of a range, plus outbox events)
// and commit them atomically through the committer.
type RateRepository interface {
	// InsertMut creates a mutation for inserting a new rate.
	// The mutation fails at commit time with AlreadyExists when the
	// (channel, room type, day) cell is already taken.
	InsertMut(rate *domain.RoomRate) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating a rate (only dirty fields)
	UpdateMut(rate *domain.RoomRate) (*spanner.Mutation, error)

	// DeleteMut creates a mutation for deleting a rate by id
	DeleteMut(rateID string) *spanner.Mutation

	// GetByID retrieves a rate by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, rateID string) (*domain.RoomRate, error)
}

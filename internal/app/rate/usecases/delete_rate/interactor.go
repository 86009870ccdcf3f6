package delete_rate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/pkg/clock"
	"github.com/harborview/rateplan-service/internal/pkg/committer"
)

// Request identifies the rate to delete.
type Request struct {
	RateID string
}

// Interactor handles the delete rate use case.
type Interactor struct {
	repo       contracts.RateRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new delete rate interactor.
func NewInteractor(
	repo contracts.RateRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute deletes a rate by id. Loading first confirms the id exists so a
// bogus id surfaces as ErrRateNotFound rather than a silent no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.RateID == "" {
		return domain.ErrRateNotFound
	}

	rate, err := i.repo.GetByID(ctx, req.RateID)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(rate.ID()))

	event := &domain.RateDeletedEvent{
		RateID:    rate.ID(),
		DeletedAt: i.clock.Now(),
	}
	payload, err := i.serializeEvent(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

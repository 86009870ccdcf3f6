package update_rate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/pkg/clock"
	"github.com/harborview/rateplan-service/internal/pkg/committer"
)

// Request contains the data to change a rate amount (the edit flow the grid
// redirects occupied cells to).
type Request struct {
	RateID string
	Amount decimal.Decimal
}

// Interactor handles the update rate use case.
type Interactor struct {
	repo       contracts.RateRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update rate interactor.
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

// Execute updates a rate amount.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.RoomRate, error) {
	if req.RateID == "" {
		return nil, domain.ErrRateNotFound
	}

	// 1. Load aggregate
	rate, err := i.repo.GetByID(ctx, req.RateID)
	if err != nil {
		return nil, err
	}

	// 2. Call domain method
	if err := rate.SetAmount(req.Amount, i.clock.Now()); err != nil {
		return nil, err
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	mut, err := i.repo.UpdateMut(rate)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	// 4. Add outbox events
	for _, event := range rate.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 5. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rate, nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

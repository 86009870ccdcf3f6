package create_rate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/pkg/clock"
	"github.com/harborview/rateplan-service/internal/pkg/committer"
)

// Request contains the data for a single-cell rate creation, seeded from an
// empty calendar cell click.
type Request struct {
	BookingChannelID string
	RoomTypeID       string
	Date             domain.Day
	Amount           decimal.Decimal
}

// Interactor handles the create rate use case.
type Interactor struct {
	repo       contracts.RateRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new create rate interactor.
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

// Execute creates one rate. Occupied cells are not checked up front: the
// insert is conditional through the unique cell index, so two racing clicks
// cannot both land and the loser gets ErrCellOccupied.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.RoomRate, error) {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}

	// 2. Create domain aggregate
	rate, err := domain.NewRoomRate(
		uuid.New().String(),
		req.RoomTypeID,
		req.BookingChannelID,
		req.Date,
		req.Amount,
		i.clock.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate: %w", err)
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(rate)
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
		if committer.IsAlreadyExists(err) {
			return nil, domain.ErrCellOccupied
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rate, nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.RoomTypeID == "" {
		return domain.ErrMissingRoomType
	}
	if req.BookingChannelID == "" {
		return domain.ErrMissingChannel
	}
	if req.Date.IsZero() {
		return domain.ErrInvalidDate
	}
	if req.Date.Before(domain.DayOf(i.clock.Now())) {
		return domain.ErrStartInPast
	}
	if req.Amount.IsNegative() {
		return domain.ErrNegativeAmount
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

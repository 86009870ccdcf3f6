package create_rate_range

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

// Request contains the data needed to create rates over a date range.
type Request struct {
	BookingChannelID string
	RoomTypeID       string
	DateFrom         domain.Day
	DateTo           domain.Day
	Amount           decimal.Decimal
}

// Interactor handles the create-rate-range use case: it expands one request
// into one RoomRate per day of the inclusive range and commits the whole set
// atomically. There is no partial-commit state: on any failure zero days are
// persisted.
type Interactor struct {
	repo       contracts.RateRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new create rate range interactor.
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

// Execute expands the range and commits every day-record in one transaction.
// On success it returns the created records (with assigned ids) so the
// caller can merge them into the visible grid without a re-fetch.
func (i *Interactor) Execute(ctx context.Context, req *Request) ([]*domain.RoomRate, error) {
	// 1. Validate request synchronously, before any store call
	if err := i.validate(req); err != nil {
		return nil, err
	}

	now := i.clock.Now()

	// 2. Build one aggregate per day of the inclusive range
	days := domain.DaysInRange(req.DateFrom, req.DateTo)
	rates := make([]*domain.RoomRate, 0, len(days))
	plan := committer.NewPlan()

	for _, day := range days {
		rate, err := domain.NewRoomRate(
			uuid.New().String(),
			req.RoomTypeID,
			req.BookingChannelID,
			day,
			req.Amount,
			now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate for %s: %w", day, err)
		}

		mut, err := i.repo.InsertMut(rate)
		if err != nil {
			return nil, fmt.Errorf("failed to build insert for %s: %w", day, err)
		}
		plan.Add(mut)

		for _, event := range rate.DomainEvents() {
			payload, err := i.serializeEvent(event)
			if err != nil {
				return nil, fmt.Errorf("failed to serialize event: %w", err)
			}
			outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
			plan.Add(i.outboxRepo.InsertMut(outboxEvent))
		}

		rates = append(rates, rate)
	}

	// 3. Apply the whole plan atomically: all days or none
	if err := i.committer.Apply(ctx, plan); err != nil {
		if committer.IsAlreadyExists(err) {
			return nil, fmt.Errorf("no days were created: %w", domain.ErrCellOccupied)
		}
		return nil, fmt.Errorf("failed to commit rate range (no days were created): %w", err)
	}

	return rates, nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.RoomTypeID == "" {
		return domain.ErrMissingRoomType
	}
	if req.BookingChannelID == "" {
		return domain.ErrMissingChannel
	}
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return domain.ErrInvalidDate
	}
	if req.DateTo.Before(req.DateFrom) {
		return domain.ErrEndBeforeStart
	}
	if req.DateFrom.Before(domain.DayOf(i.clock.Now())) {
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

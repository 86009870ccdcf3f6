package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/models/m_room_rate"
)

// amountScale is the decimal scale used when reading NUMERIC amounts back
// into decimals. Spanner NUMERIC carries at most 9 fractional digits.
const amountScale = 9

// RateRepo implements RateRepository for Spanner.
type RateRepo struct {
	client *spanner.Client
	model  *m_room_rate.Model
}

// NewRateRepo creates a new RateRepo.
func NewRateRepo(client *spanner.Client) contracts.RateRepository {
	return &RateRepo{
		client: client,
		model:  m_room_rate.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new rate.
func (r *RateRepo) InsertMut(rate *domain.RoomRate) (*spanner.Mutation, error) {
	data, err := r.domainToData(rate)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a rate (only dirty fields).
func (r *RateRepo) UpdateMut(rate *domain.RoomRate) (*spanner.Mutation, error) {
	changes := rate.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldAmount) {
		updates[m_room_rate.Amount] = *rate.Amount().Rat()
	}

	if len(updates) == 0 {
		return nil, nil
	}

	return r.model.UpdateMut(rate.ID(), updates), nil
}

// DeleteMut creates a mutation for deleting a rate by id.
func (r *RateRepo) DeleteMut(rateID string) *spanner.Mutation {
	return r.model.DeleteMut(rateID)
}

// GetByID retrieves a rate by ID, reconstructing the domain aggregate.
func (r *RateRepo) GetByID(ctx context.Context, rateID string) (*domain.RoomRate, error) {
	row, err := r.client.Single().ReadRow(ctx, m_room_rate.TableName, spanner.Key{rateID}, []string{
		m_room_rate.RateID,
		m_room_rate.RoomTypeID,
		m_room_rate.BookingChannelID,
		m_room_rate.RateDate,
		m_room_rate.Amount,
		m_room_rate.CreatedAt,
		m_room_rate.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to read room rate: %w", err)
	}

	var data m_room_rate.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse room rate: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// domainToData converts a domain RoomRate to database Data.
func (r *RateRepo) domainToData(rate *domain.RoomRate) (*m_room_rate.Data, error) {
	if rate.Amount().IsNegative() {
		return nil, domain.ErrNegativeAmount
	}

	return &m_room_rate.Data{
		RateID:           rate.ID(),
		RoomTypeID:       rate.RoomTypeID(),
		BookingChannelID: rate.BookingChannelID(),
		RateDate:         rate.Day().Time(),
		Amount:           *rate.Amount().Rat(),
		CreatedAt:        rate.CreatedAt(),
		UpdatedAt:        rate.UpdatedAt(),
	}, nil
}

// dataToDomain converts database Data to a domain RoomRate.
func (r *RateRepo) dataToDomain(data *m_room_rate.Data) *domain.RoomRate {
	amount := decimal.NewFromBigRat(&data.Amount, amountScale)

	return domain.ReconstructRoomRate(
		data.RateID,
		data.RoomTypeID,
		data.BookingChannelID,
		domain.DayOf(data.RateDate),
		amount,
		data.CreatedAt,
		data.UpdatedAt,
	)
}

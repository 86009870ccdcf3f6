package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/models/m_booking_channel"
	"github.com/harborview/rateplan-service/internal/models/m_room_type"
	"github.com/harborview/rateplan-service/internal/pkg/query"
)

// RoomTypeDirectoryImpl lists room types from the externally-owned table.
type RoomTypeDirectoryImpl struct {
	client *spanner.Client
}

// NewRoomTypeDirectory creates a new RoomTypeDirectory implementation.
func NewRoomTypeDirectory(client *spanner.Client) contracts.RoomTypeDirectory {
	return &RoomTypeDirectoryImpl{client: client}
}

// List returns all room types ordered by name.
func (d *RoomTypeDirectoryImpl) List(ctx context.Context) ([]*contracts.RoomTypeDTO, error) {
	stmt := query.From(m_room_type.TableName).
		Select(
			m_room_type.RoomTypeID,
			m_room_type.Name,
			m_room_type.Description,
			m_room_type.MaxGuests,
			m_room_type.CreatedAt,
		).
		OrderBy(m_room_type.Name, query.Asc).
		Build()

	iter := d.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	roomTypes := make([]*contracts.RoomTypeDTO, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate room types: %w", err)
		}

		var data m_room_type.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse room type: %w", err)
		}

		roomTypes = append(roomTypes, &contracts.RoomTypeDTO{
			RoomTypeID:  data.RoomTypeID,
			Name:        data.Name,
			Description: data.Description,
			MaxGuests:   data.MaxGuests,
		})
	}

	return roomTypes, nil
}

// BookingChannelDirectoryImpl lists channels from the externally-owned table.
type BookingChannelDirectoryImpl struct {
	client *spanner.Client
}

// NewBookingChannelDirectory creates a new BookingChannelDirectory implementation.
func NewBookingChannelDirectory(client *spanner.Client) contracts.BookingChannelDirectory {
	return &BookingChannelDirectoryImpl{client: client}
}

// List returns all booking channels ordered by name.
func (d *BookingChannelDirectoryImpl) List(ctx context.Context) ([]*contracts.BookingChannelDTO, error) {
	stmt := query.From(m_booking_channel.TableName).
		Select(
			m_booking_channel.BookingChannelID,
			m_booking_channel.Name,
			m_booking_channel.Commission,
			m_booking_channel.PaymentType,
			m_booking_channel.CreatedAt,
		).
		OrderBy(m_booking_channel.Name, query.Asc).
		Build()

	iter := d.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	channels := make([]*contracts.BookingChannelDTO, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate booking channels: %w", err)
		}

		var data m_booking_channel.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse booking channel: %w", err)
		}

		channels = append(channels, &contracts.BookingChannelDTO{
			BookingChannelID: data.BookingChannelID,
			Name:             data.Name,
			Commission:       decimal.NewFromBigRat(&data.Commission, amountScale),
			PaymentType:      data.PaymentType,
		})
	}

	return channels, nil
}

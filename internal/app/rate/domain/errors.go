package domain

import "errors"

// Domain errors as sentinel values
var (
	// Rate errors
	ErrRateNotFound   = errors.New("room rate not found")
	ErrMissingRoomType = errors.New("room type id is required")
	ErrMissingChannel  = errors.New("booking channel id is required")
	ErrNegativeAmount  = errors.New("rate amount cannot be negative")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD form")

	// Range errors
	ErrEndBeforeStart = errors.New("end date must not be before start date")
	ErrStartInPast    = errors.New("start date cannot be before today")

	// Cell errors
	// ErrCellOccupied is the uniqueness violation for a (room type, channel,
	// day) cell. It is distinct from validation errors: the cell was written
	// by someone else and the caller should refresh before retrying.
	ErrCellOccupied = errors.New("a rate already exists for this room type, channel and day")

	// Directory errors
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrChannelNotFound  = errors.New("booking channel not found")
)

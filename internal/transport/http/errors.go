package http

import (
	"errors"
	"net/http"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// notification is the JSON error body every failed operation returns.
// Errors never escape a handler: the page renders the message and moves on.
type notification struct {
	Error string `json:"error"`
	// Hint carries a follow-up action for the user, e.g. refreshing after a
	// lost cell race or switching to the edit flow for occupied cells.
	Hint string `json:"hint,omitempty"`
}

// mapDomainError converts domain errors to an HTTP status and notification.
func mapDomainError(err error) (int, notification) {
	switch {
	case errors.Is(err, domain.ErrRateNotFound),
		errors.Is(err, domain.ErrRoomTypeNotFound),
		errors.Is(err, domain.ErrChannelNotFound):
		return http.StatusNotFound, notification{Error: err.Error()}

	case errors.Is(err, domain.ErrCellOccupied):
		// Distinct from validation: someone else won the cell. The client
		// should refresh the grid rather than retry the write.
		return http.StatusConflict, notification{
			Error: domain.ErrCellOccupied.Error(),
			Hint:  "refresh the calendar and use the edit flow for this cell",
		}

	case errors.Is(err, domain.ErrMissingRoomType),
		errors.Is(err, domain.ErrMissingChannel),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEndBeforeStart),
		errors.Is(err, domain.ErrStartInPast):
		return http.StatusBadRequest, notification{Error: err.Error()}

	default:
		return http.StatusInternalServerError, notification{Error: "internal server error"}
	}
}

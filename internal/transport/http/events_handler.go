package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harborview/rateplan-service/internal/app/rate/queries/list_events"
	"github.com/harborview/rateplan-service/internal/models/m_outbox"
)

// EventsHandler exposes the outbox as a read-only operational endpoint, used
// to check what the rate engine has published.
type EventsHandler struct {
	listEvents *list_events.Query
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(listEvents *list_events.Query) *EventsHandler {
	return &EventsHandler{
		listEvents: listEvents,
	}
}

// RegisterRoutes binds the handler to the gin engine.
func (h *EventsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/v1/events", h.ListEvents)
}

type eventJSON struct {
	EventID     string  `json:"event_id"`
	EventType   string  `json:"event_type"`
	AggregateID string  `json:"aggregate_id"`
	Payload     string  `json:"payload,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
	RetryCount  int64   `json:"retry_count"`
}

type listEventsJSON struct {
	Events     []eventJSON `json:"events"`
	TotalCount int64       `json:"total_count"`
}

// ListEvents handles GET /api/v1/events with optional event_type,
// aggregate_id, status and limit filters.
func (h *EventsHandler) ListEvents(c *gin.Context) {
	req := &list_events.Request{}

	if v := c.Query("event_type"); v != "" {
		req.EventType = &v
	}
	if v := c.Query("aggregate_id"); v != "" {
		req.AggregateID = &v
	}
	if v := c.Query("status"); v != "" {
		req.Status = &v
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, notification{Error: "limit must be a positive integer"})
			return
		}
		req.Limit = limit
	}

	events, total, err := h.listEvents.Execute(c.Request.Context(), req)
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}

	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, eventFromData(e))
	}

	c.JSON(http.StatusOK, listEventsJSON{Events: out, TotalCount: total})
}

func eventFromData(e *m_outbox.Data) eventJSON {
	out := eventJSON{
		EventID:     e.EventID,
		EventType:   e.EventType,
		AggregateID: e.AggregateID,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		RetryCount:  e.RetryCount,
	}
	if e.Payload.Valid {
		out.Payload = e.Payload.String()
	}
	if e.ProcessedAt.Valid {
		processedAt := e.ProcessedAt.Time.Format(time.RFC3339)
		out.ProcessedAt = &processedAt
	}
	return out
}

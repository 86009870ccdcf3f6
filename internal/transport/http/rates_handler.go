// Package http exposes the rate calendar page's JSON API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/harborview/rateplan-service/internal/app/rate/calendar"
	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/app/rate/queries/list_week_rates"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate_range"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/delete_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/update_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/view"
	"github.com/harborview/rateplan-service/internal/pkg/clock"
)

// Handler is a thin coordinator between the HTTP surface and the rate
// engine: it validates and maps payloads, delegates to usecases and queries,
// and converts errors to notifications.
type Handler struct {
	// Commands
	createRange *create_rate_range.Interactor
	createRate  *create_rate.Interactor
	updateRate  *update_rate.Interactor
	deleteRate  *delete_rate.Interactor

	// Queries
	listWeekRates *list_week_rates.Query

	// Directories (externally-owned reference data)
	roomTypes contracts.RoomTypeDirectory
	channels  contracts.BookingChannelDirectory

	session *view.Session
	clock   clock.Clock
	logger  *slog.Logger
}

// NewHandler creates a new rates HTTP handler.
func NewHandler(
	createRange *create_rate_range.Interactor,
	createRate *create_rate.Interactor,
	updateRate *update_rate.Interactor,
	deleteRate *delete_rate.Interactor,
	listWeekRates *list_week_rates.Query,
	roomTypes contracts.RoomTypeDirectory,
	channels contracts.BookingChannelDirectory,
	session *view.Session,
	clk clock.Clock,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		createRange:   createRange,
		createRate:    createRate,
		updateRate:    updateRate,
		deleteRate:    deleteRate,
		listWeekRates: listWeekRates,
		roomTypes:     roomTypes,
		channels:      channels,
		session:       session,
		clock:         clk,
		logger:        logger,
	}
}

// RegisterRoutes binds the handler to the gin engine.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/calendar", h.GetCalendar)
		api.POST("/calendar/click", h.ClickCell)

		api.POST("/rates/range", h.CreateRateRange)
		api.POST("/rates", h.CreateRate)
		api.PATCH("/rates/:id", h.UpdateRate)
		api.DELETE("/rates/:id", h.DeleteRate)

		api.GET("/room-types", h.ListRoomTypes)
		api.GET("/channels", h.ListChannels)

		api.GET("/overlay", h.GetOverlay)
		api.PUT("/overlay", h.SetOverlay)
		api.POST("/overlay/step", h.StepOverlay)
	}
}

// GetCalendar fetches the week grid for a channel and reference date.
// The fetch is tagged through the view session so a response superseded by a
// later selection is discarded instead of overwriting newer state.
func (h *Handler) GetCalendar(c *gin.Context) {
	channelID := c.Query("channel_id")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, notification{Error: "channel_id is required"})
		return
	}

	reference := domain.DayOf(h.clock.Now())
	if raw := c.Query("date"); raw != "" {
		var err error
		reference, err = domain.ParseDay(raw)
		if err != nil {
			c.JSON(mapDomainError(err))
			return
		}
	}

	token := h.session.BeginFetch(channelID, reference)

	roomTypes, err := h.roomTypes.List(c.Request.Context())
	if err != nil {
		h.session.FailFetch(token)
		h.logger.Error("room type listing failed", "error", err)
		c.JSON(mapDomainError(err))
		return
	}

	res, err := h.listWeekRates.Execute(c.Request.Context(), channelID, reference)
	if err != nil {
		// The page keeps its last successfully fetched grid; this response
		// only carries the notification.
		h.session.FailFetch(token)
		h.logger.Error("rate fetch failed", "channel_id", channelID, "error", err)
		c.JSON(mapDomainError(err))
		return
	}

	if !h.session.ApplyFetchResult(token, res.Rates) {
		// A newer selection superseded this fetch; answer with the skeleton
		// so the stale data is never rendered as current.
		c.JSON(http.StatusOK, gridToJSON(calendar.Skeleton(channelID, len(roomTypes), reference)))
		return
	}

	c.JSON(http.StatusOK, gridToJSON(calendar.Build(channelID, roomTypes, reference, res.Rates)))
}

type clickJSON struct {
	RoomTypeID string `json:"room_type_id"`
	Date       string `json:"date"`
	RateID     string `json:"rate_id"`
	HasRate    bool   `json:"has_rate"`
}

// ClickCell applies the cell click contract.
func (h *Handler) ClickCell(c *gin.Context) {
	var req clickJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "invalid request body"})
		return
	}

	day, err := domain.ParseDay(req.Date)
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}

	snap := h.session.Snapshot()
	grid := &calendar.Grid{BookingChannelID: snap.ChannelID}
	cell := calendar.Cell{
		RoomTypeID: req.RoomTypeID,
		Day:        day,
		RateID:     req.RateID,
		HasRate:    req.HasRate,
	}

	outcome, seed := grid.Click(cell, domain.DayOf(h.clock.Now()))
	switch outcome {
	case calendar.ClickRejectedPast:
		c.JSON(http.StatusBadRequest, notification{Error: "cannot create a rate for a past day"})
	case calendar.ClickEditExisting:
		c.JSON(http.StatusOK, gin.H{
			"action":  "edit",
			"rate_id": cell.RateID,
			"notice":  "a rate already exists for this cell; use the edit flow",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"action": "create",
			"seed": gin.H{
				"booking_channel_id": seed.BookingChannelID,
				"room_type_id":       seed.RoomTypeID,
				"date":               seed.Day.String(),
			},
		})
	}
}

// CreateRateRange expands a date range into per-day rates, committed
// atomically.
func (h *Handler) CreateRateRange(c *gin.Context) {
	var req createRangeJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "invalid request body"})
		return
	}

	from, err := domain.ParseDay(req.DateFrom)
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}
	to, err := domain.ParseDay(req.DateTo)
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "amount must be a decimal number"})
		return
	}

	rates, err := h.createRange.Execute(c.Request.Context(), &create_rate_range.Request{
		BookingChannelID: req.BookingChannelID,
		RoomTypeID:       req.RoomTypeID,
		DateFrom:         from,
		DateTo:           to,
		Amount:           amount,
	})
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}

	created := make([]rateJSON, 0, len(rates))
	dtos := make([]*contracts.RateDTO, 0, len(rates))
	for _, r := range rates {
		created = append(created, rateFromDomain(r))
		dtos = append(dtos, rateDTOFromDomain(r))
	}
	h.session.MergeCreated(dtos)

	c.JSON(http.StatusCreated, gin.H{"rates": created})
}

// CreateRate creates one rate from a calendar cell seed.
func (h *Handler) CreateRate(c *gin.Context) {
	var req createRateJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "invalid request body"})
		return
	}

	day, err := domain.ParseDay(req.Date)
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "amount must be a decimal number"})
		return
	}

	rate, err := h.createRate.Execute(c.Request.Context(), &create_rate.Request{
		BookingChannelID: req.BookingChannelID,
		RoomTypeID:       req.RoomTypeID,
		Date:             day,
		Amount:           amount,
	})
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}

	h.session.MergeCreated([]*contracts.RateDTO{rateDTOFromDomain(rate)})

	c.JSON(http.StatusCreated, rateFromDomain(rate))
}

// UpdateRate changes a rate amount (the edit flow).
func (h *Handler) UpdateRate(c *gin.Context) {
	var req updateRateJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "invalid request body"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "amount must be a decimal number"})
		return
	}

	rate, err := h.updateRate.Execute(c.Request.Context(), &update_rate.Request{
		RateID: c.Param("id"),
		Amount: amount,
	})
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, rateFromDomain(rate))
}

// DeleteRate removes a rate by id.
func (h *Handler) DeleteRate(c *gin.Context) {
	err := h.deleteRate.Execute(c.Request.Context(), &delete_rate.Request{
		RateID: c.Param("id"),
	})
	if err != nil {
		c.JSON(mapDomainError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRoomTypes lists the room types owned by the room management module.
func (h *Handler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.roomTypes.List(c.Request.Context())
	if err != nil {
		h.logger.Error("room type listing failed", "error", err)
		c.JSON(mapDomainError(err))
		return
	}

	out := make([]roomTypeJSON, 0, len(roomTypes))
	for _, rt := range roomTypes {
		out = append(out, roomTypeJSON{
			RoomTypeID:  rt.RoomTypeID,
			Name:        rt.Name,
			Description: rt.Description,
			MaxGuests:   rt.MaxGuests,
		})
	}

	c.JSON(http.StatusOK, gin.H{"room_types": out})
}

// ListChannels lists the booking channels for the channel selector tabs.
func (h *Handler) ListChannels(c *gin.Context) {
	channels, err := h.channels.List(c.Request.Context())
	if err != nil {
		h.logger.Error("channel listing failed", "error", err)
		c.JSON(mapDomainError(err))
		return
	}

	out := make([]channelJSON, 0, len(channels))
	for _, ch := range channels {
		out = append(out, channelJSON{
			BookingChannelID: ch.BookingChannelID,
			Name:             ch.Name,
			Commission:       ch.Commission.String(),
			PaymentType:      ch.PaymentType,
		})
	}

	c.JSON(http.StatusOK, gin.H{"channels": out})
}

// GetOverlay reads the discount overlay entry for a (room type, channel)
// pair, optionally composing a preview against a base rate.
func (h *Handler) GetOverlay(c *gin.Context) {
	key := domain.OverlayKey{
		RoomTypeName: c.Query("room_type"),
		ChannelName:  c.Query("channel"),
	}

	entry := h.session.Overlay().Get(key)

	var preview *decimal.Decimal
	if raw := c.Query("base_rate"); raw != "" {
		base, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, notification{Error: "base_rate must be a decimal number"})
			return
		}
		p := domain.PreviewPrice(base, entry)
		preview = &p
	}

	c.JSON(http.StatusOK, overlayToJSON(key, entry, preview))
}

type overlaySetJSON struct {
	RoomTypeName string `json:"room_type_name"`
	ChannelName  string `json:"channel_name"`
	Field        string `json:"field"`
	Value        string `json:"value"`
}

// SetOverlay applies a direct-entry value to an overlay field. Invalid input
// is silently dropped: the response carries the unchanged entry, exactly like
// a form field refusing a keystroke.
func (h *Handler) SetOverlay(c *gin.Context) {
	var req overlaySetJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "invalid request body"})
		return
	}

	key := domain.OverlayKey{RoomTypeName: req.RoomTypeName, ChannelName: req.ChannelName}
	overlay := h.session.Overlay()

	var entry domain.OverlayEntry
	switch req.Field {
	case "percent":
		entry = overlay.SetPercent(key, req.Value)
	case "amount":
		entry = overlay.SetAmount(key, req.Value)
	default:
		c.JSON(http.StatusBadRequest, notification{Error: "field must be percent or amount"})
		return
	}

	c.JSON(http.StatusOK, overlayToJSON(key, entry, nil))
}

type overlayStepJSON struct {
	RoomTypeName string `json:"room_type_name"`
	ChannelName  string `json:"channel_name"`
	Field        string `json:"field"`
	Direction    string `json:"direction"`
}

// StepOverlay applies a stepper increment or decrement to an overlay field.
func (h *Handler) StepOverlay(c *gin.Context) {
	var req overlayStepJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, notification{Error: "invalid request body"})
		return
	}

	key := domain.OverlayKey{RoomTypeName: req.RoomTypeName, ChannelName: req.ChannelName}
	overlay := h.session.Overlay()

	var entry domain.OverlayEntry
	switch {
	case req.Field == "percent" && req.Direction == "up":
		entry = overlay.IncrementPercent(key)
	case req.Field == "percent" && req.Direction == "down":
		entry = overlay.DecrementPercent(key)
	case req.Field == "amount" && req.Direction == "up":
		entry = overlay.IncrementAmount(key)
	case req.Field == "amount" && req.Direction == "down":
		entry = overlay.DecrementAmount(key)
	default:
		c.JSON(http.StatusBadRequest, notification{Error: "field must be percent or amount and direction up or down"})
		return
	}

	c.JSON(http.StatusOK, overlayToJSON(key, entry, nil))
}

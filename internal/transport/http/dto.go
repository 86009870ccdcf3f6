package http

import (
	"github.com/shopspring/decimal"

	"github.com/harborview/rateplan-service/internal/app/rate/calendar"
	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// rateJSON is the wire shape of one room rate. Amounts travel as strings so
// the client never sees float rounding.
type rateJSON struct {
	RateID           string `json:"rate_id"`
	RoomTypeID       string `json:"room_type_id"`
	BookingChannelID string `json:"booking_channel_id"`
	Date             string `json:"date"`
	Amount           string `json:"amount"`
}

func rateFromDomain(r *domain.RoomRate) rateJSON {
	return rateJSON{
		RateID:           r.ID(),
		RoomTypeID:       r.RoomTypeID(),
		BookingChannelID: r.BookingChannelID(),
		Date:             r.Day().String(),
		Amount:           r.DisplayAmount(),
	}
}

func rateDTOFromDomain(r *domain.RoomRate) *contracts.RateDTO {
	return &contracts.RateDTO{
		RateID:           r.ID(),
		RoomTypeID:       r.RoomTypeID(),
		BookingChannelID: r.BookingChannelID(),
		Day:              r.Day(),
		Amount:           r.Amount(),
	}
}

type createRangeJSON struct {
	BookingChannelID string `json:"booking_channel_id"`
	RoomTypeID       string `json:"room_type_id"`
	DateFrom         string `json:"date_from"`
	DateTo           string `json:"date_to"`
	Amount           string `json:"amount"`
}

type createRateJSON struct {
	BookingChannelID string `json:"booking_channel_id"`
	RoomTypeID       string `json:"room_type_id"`
	Date             string `json:"date"`
	Amount           string `json:"amount"`
}

type updateRateJSON struct {
	Amount string `json:"amount"`
}

type cellJSON struct {
	RoomTypeID string `json:"room_type_id"`
	Date       string `json:"date"`
	RateID     string `json:"rate_id,omitempty"`
	Display    string `json:"display"`
	HasRate    bool   `json:"has_rate"`
}

type gridRowJSON struct {
	RoomTypeID   string     `json:"room_type_id"`
	RoomTypeName string     `json:"room_type_name"`
	Cells        []cellJSON `json:"cells"`
}

type gridJSON struct {
	BookingChannelID string        `json:"booking_channel_id"`
	Week             []string      `json:"week"`
	Rows             []gridRowJSON `json:"rows"`
	Loading          bool          `json:"loading"`
}

func gridToJSON(g *calendar.Grid) gridJSON {
	week := make([]string, len(g.Week))
	for i, d := range g.Week {
		week[i] = d.String()
	}

	rows := make([]gridRowJSON, 0, len(g.Rows))
	for _, row := range g.Rows {
		cells := make([]cellJSON, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, cellJSON{
				RoomTypeID: c.RoomTypeID,
				Date:       c.Day.String(),
				RateID:     c.RateID,
				Display:    c.Display,
				HasRate:    c.HasRate,
			})
		}
		rows = append(rows, gridRowJSON{
			RoomTypeID:   row.RoomTypeID,
			RoomTypeName: row.RoomTypeName,
			Cells:        cells,
		})
	}

	return gridJSON{
		BookingChannelID: g.BookingChannelID,
		Week:             week,
		Rows:             rows,
		Loading:          g.Loading,
	}
}

type roomTypeJSON struct {
	RoomTypeID  string `json:"room_type_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxGuests   int64  `json:"max_guests"`
}

type channelJSON struct {
	BookingChannelID string `json:"booking_channel_id"`
	Name             string `json:"name"`
	Commission       string `json:"commission"`
	PaymentType      string `json:"payment_type"`
}

type overlayJSON struct {
	RoomTypeName string `json:"room_type_name"`
	ChannelName  string `json:"channel_name"`
	Percent      string `json:"percent"`
	Amount       string `json:"amount"`
	// Preview is the display-only composed price, present when the caller
	// supplied a base rate to preview against.
	Preview string `json:"preview,omitempty"`
}

func overlayToJSON(key domain.OverlayKey, e domain.OverlayEntry, preview *decimal.Decimal) overlayJSON {
	out := overlayJSON{
		RoomTypeName: key.RoomTypeName,
		ChannelName:  key.ChannelName,
		Percent:      e.Percent.String(),
		Amount:       e.Amount.String(),
	}
	if preview != nil {
		out.Preview = preview.StringFixed(2)
	}
	return out
}

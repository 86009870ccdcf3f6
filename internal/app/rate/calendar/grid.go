// Package calendar projects a sparse rate list onto the dense
// room-type x 7-day grid rendered by the back-office rate page.
package calendar

import (
	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// PlaceholderNoRate is what a cell shows when no rate exists for its day.
const PlaceholderNoRate = "—"

// Cell is one (room type, day) slot of the grid.
type Cell struct {
	RoomTypeID string
	Day        domain.Day
	RateID     string
	Display    string
	HasRate    bool
}

// Row is one room type across the week.
type Row struct {
	RoomTypeID   string
	RoomTypeName string
	Cells        [domain.WeekDays]Cell
}

// Grid is the dense projection for one channel and one week.
// Loading marks the skeleton state: the shape is right, the data is not
// there yet, and nothing in a loading grid is clickable.
type Grid struct {
	BookingChannelID string
	Week             [domain.WeekDays]domain.Day
	Rows             []Row
	Loading          bool
}

type cellKey struct {
	roomTypeID string
	day        string
}

// Build projects the sparse rate set onto the full grid. Every room type
// gets a row and every day of the week containing reference gets a column;
// cells without a matching rate show the placeholder.
func Build(channelID string, roomTypes []*contracts.RoomTypeDTO, reference domain.Day, rates []*contracts.RateDTO) *Grid {
	week := domain.WeekOf(reference)

	byCell := make(map[cellKey]*contracts.RateDTO, len(rates))
	for _, r := range rates {
		byCell[cellKey{roomTypeID: r.RoomTypeID, day: r.Day.String()}] = r
	}

	rows := make([]Row, 0, len(roomTypes))
	for _, rt := range roomTypes {
		row := Row{
			RoomTypeID:   rt.RoomTypeID,
			RoomTypeName: rt.Name,
		}
		for i, day := range week {
			cell := Cell{
				RoomTypeID: rt.RoomTypeID,
				Day:        day,
				Display:    PlaceholderNoRate,
			}
			if r, ok := byCell[cellKey{roomTypeID: rt.RoomTypeID, day: day.String()}]; ok {
				cell.RateID = r.RateID
				cell.Display = r.Amount.StringFixed(2)
				cell.HasRate = true
			}
			row.Cells[i] = cell
		}
		rows = append(rows, row)
	}

	return &Grid{
		BookingChannelID: channelID,
		Week:             week,
		Rows:             rows,
		Loading:          false,
	}
}

// Skeleton returns a loading grid with the expected row and column count so
// the page keeps its shape while a fetch is outstanding, instead of showing
// stale data as if it were current.
func Skeleton(channelID string, rowCount int, reference domain.Day) *Grid {
	week := domain.WeekOf(reference)

	rows := make([]Row, rowCount)
	for i := range rows {
		for j, day := range week {
			rows[i].Cells[j] = Cell{Day: day, Display: PlaceholderNoRate}
		}
	}

	return &Grid{
		BookingChannelID: channelID,
		Week:             week,
		Rows:             rows,
		Loading:          true,
	}
}

// ClickOutcome classifies what a click on a grid cell should do.
type ClickOutcome int

const (
	// ClickCreate opens the creation flow seeded from the cell.
	ClickCreate ClickOutcome = iota
	// ClickEditExisting directs the user to the edit flow for the existing
	// rate; clicking an occupied cell never creates a duplicate.
	ClickEditExisting
	// ClickRejectedPast rejects clicks on days strictly before today.
	ClickRejectedPast
)

// CreationSeed pre-fills the creation form from a clicked empty cell.
type CreationSeed struct {
	BookingChannelID string
	RoomTypeID       string
	Day              domain.Day
}

// Click applies the cell click contract for a grid built for one channel.
func (g *Grid) Click(cell Cell, today domain.Day) (ClickOutcome, *CreationSeed) {
	if cell.Day.Before(today) {
		return ClickRejectedPast, nil
	}
	if cell.HasRate {
		return ClickEditExisting, nil
	}
	return ClickCreate, &CreationSeed{
		BookingChannelID: g.BookingChannelID,
		RoomTypeID:       cell.RoomTypeID,
		Day:              cell.Day,
	}
}

// Package view owns the mutable state behind the rate calendar page: the
// selected channel, the reference date, the fetched rate set and the
// discount overlay. Components read snapshots and mutate only through the
// session's methods, never through ad hoc setters.
package view

import (
	"sync"

	"github.com/harborview/rateplan-service/internal/app/rate/contracts"
	"github.com/harborview/rateplan-service/internal/app/rate/domain"
)

// Session is the state object for one rate calendar page.
//
// Fetches are tagged with a monotonically increasing token. A response is
// applied only when its token is the latest issued, so a slow fetch for a
// channel or week the user has already navigated away from can never
// overwrite newer state.
type Session struct {
	mu sync.Mutex

	channelID string
	reference domain.Day
	rates     []*contracts.RateDTO
	loading   bool

	latestToken uint64

	overlay *domain.OverlayTable
}

// Snapshot is a consistent read of the session state for rendering.
type Snapshot struct {
	ChannelID string
	Reference domain.Day
	Rates     []*contracts.RateDTO
	Loading   bool
}

// NewSession creates a session with an empty rate set and a fresh overlay.
func NewSession() *Session {
	return &Session{
		rates:   make([]*contracts.RateDTO, 0),
		overlay: domain.NewOverlayTable(),
	}
}

// BeginFetch records a channel/date selection and enters the loading state.
// It returns the token the eventual response must present.
func (s *Session) BeginFetch(channelID string, reference domain.Day) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.channelID = channelID
	s.reference = reference
	s.loading = true
	s.latestToken++
	return s.latestToken
}

// ApplyFetchResult installs a fetch response. Responses whose token is not
// the latest issued are discarded and the method reports false.
func (s *Session) ApplyFetchResult(token uint64, rates []*contracts.RateDTO) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.latestToken {
		return false
	}

	s.rates = rates
	s.loading = false
	return true
}

// FailFetch ends the loading state after a failed fetch, keeping the last
// successfully fetched rates visible. Stale failures are ignored too.
func (s *Session) FailFetch(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.latestToken {
		return false
	}

	s.loading = false
	return true
}

// MergeCreated folds freshly created records into the visible set without a
// re-fetch. Records for another channel or outside the visible week are
// dropped: the next fetch for that window will pick them up.
func (s *Session) MergeCreated(created []*contracts.RateDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channelID == "" {
		return
	}

	week := domain.WeekOf(s.reference)
	start, end := week[0], week[domain.WeekDays-1]

	for _, r := range created {
		if r.BookingChannelID != s.channelID {
			continue
		}
		if r.Day.Before(start) || r.Day.After(end) {
			continue
		}
		s.rates = append(s.rates, r)
	}
}

// Snapshot returns a copy of the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rates := make([]*contracts.RateDTO, len(s.rates))
	copy(rates, s.rates)

	return Snapshot{
		ChannelID: s.channelID,
		Reference: s.reference,
		Rates:     rates,
		Loading:   s.loading,
	}
}

// Overlay exposes the session's discount overlay table.
func (s *Session) Overlay() *domain.OverlayTable {
	return s.overlay
}

package domain

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// OverlayEntry is the discount adjustment tracked for one
// (room type, channel) pair: a percentage and a fixed amount, both >= 0.
type OverlayEntry struct {
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

// overlayStep is the increment applied by the stepper controls.
var overlayStep = decimal.NewFromInt(1)

// OverlayKey identifies an overlay entry by the displayed names, matching how
// the grid addresses its cells.
type OverlayKey struct {
	RoomTypeName string
	ChannelName  string
}

// OverlayTable holds the ephemeral discount overlay. Entries are never
// persisted and never fed back into rate creation: the overlay only adjusts
// the displayed price (see PreviewPrice). Every pair starts at zero/zero.
type OverlayTable struct {
	mu      sync.RWMutex
	entries map[OverlayKey]OverlayEntry
}

// NewOverlayTable creates an empty overlay table.
func NewOverlayTable() *OverlayTable {
	return &OverlayTable{
		entries: make(map[OverlayKey]OverlayEntry),
	}
}

// Get returns the entry for a pair, defaulting to zero values.
func (t *OverlayTable) Get(key OverlayKey) OverlayEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[key]
}

// IncrementPercent adds the fixed step to the percent field.
func (t *OverlayTable) IncrementPercent(key OverlayKey) OverlayEntry {
	return t.update(key, func(e OverlayEntry) OverlayEntry {
		e.Percent = e.Percent.Add(overlayStep)
		return e
	})
}

// DecrementPercent subtracts the step from the percent field, clamped at 0.
func (t *OverlayTable) DecrementPercent(key OverlayKey) OverlayEntry {
	return t.update(key, func(e OverlayEntry) OverlayEntry {
		e.Percent = clampFloor(e.Percent.Sub(overlayStep))
		return e
	})
}

// IncrementAmount adds the fixed step to the amount field.
func (t *OverlayTable) IncrementAmount(key OverlayKey) OverlayEntry {
	return t.update(key, func(e OverlayEntry) OverlayEntry {
		e.Amount = e.Amount.Add(overlayStep)
		return e
	})
}

// DecrementAmount subtracts the step from the amount field, clamped at 0.
func (t *OverlayTable) DecrementAmount(key OverlayKey) OverlayEntry {
	return t.update(key, func(e OverlayEntry) OverlayEntry {
		e.Amount = clampFloor(e.Amount.Sub(overlayStep))
		return e
	})
}

// SetPercent applies a direct-entry value to the percent field.
// Input that fails validation is silently dropped and the entry is returned
// unchanged, mirroring a form field that refuses the keystroke.
func (t *OverlayTable) SetPercent(key OverlayKey, input string) OverlayEntry {
	v, ok := parseOverlayInput(input)
	if !ok {
		return t.Get(key)
	}
	return t.update(key, func(e OverlayEntry) OverlayEntry {
		e.Percent = v
		return e
	})
}

// SetAmount applies a direct-entry value to the amount field.
func (t *OverlayTable) SetAmount(key OverlayKey, input string) OverlayEntry {
	v, ok := parseOverlayInput(input)
	if !ok {
		return t.Get(key)
	}
	return t.update(key, func(e OverlayEntry) OverlayEntry {
		e.Amount = v
		return e
	})
}

func (t *OverlayTable) update(key OverlayKey, fn func(OverlayEntry) OverlayEntry) OverlayEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := fn(t.entries[key])
	t.entries[key] = e
	return e
}

// parseOverlayInput accepts only digits and at most one decimal point.
func parseOverlayInput(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, true
	}
	if strings.Count(s, ".") > 1 {
		return decimal.Decimal{}, false
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return decimal.Decimal{}, false
		}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}

func clampFloor(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// PreviewPrice composes an overlay entry with a base rate into the displayed
// preview: percent is applied first, then the fixed amount is subtracted,
// and the result is clamped at zero. The preview is display-only; the
// persisted rate is untouched.
func PreviewPrice(rate decimal.Decimal, e OverlayEntry) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	p := rate.Mul(hundred.Sub(e.Percent)).Div(hundred).Sub(e.Amount)
	return clampFloor(p)
}

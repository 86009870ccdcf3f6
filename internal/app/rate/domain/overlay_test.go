package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var overlayKey = OverlayKey{RoomTypeName: "Double Room", ChannelName: "Direct"}

func TestOverlayTable_DefaultsToZero(t *testing.T) {
	table := NewOverlayTable()

	e := table.Get(overlayKey)

	assert.Equal(t, "0", e.Percent.String())
	assert.Equal(t, "0", e.Amount.String())
}

func TestOverlayTable_Steppers(t *testing.T) {
	table := NewOverlayTable()

	e := table.IncrementPercent(overlayKey)
	e = table.IncrementPercent(overlayKey)
	assert.Equal(t, "2", e.Percent.String())

	e = table.DecrementPercent(overlayKey)
	assert.Equal(t, "1", e.Percent.String())

	e = table.IncrementAmount(overlayKey)
	assert.Equal(t, "1", e.Amount.String())
	assert.Equal(t, "1", e.Percent.String(), "amount stepper leaves percent alone")
}

func TestOverlayTable_DecrementClampsAtZero(t *testing.T) {
	table := NewOverlayTable()

	e := table.DecrementPercent(overlayKey)
	assert.Equal(t, "0", e.Percent.String())

	e = table.DecrementAmount(overlayKey)
	assert.Equal(t, "0", e.Amount.String())
}

func TestOverlayTable_SetPercent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "integer", input: "15", want: "15"},
		{name: "decimal", input: "7.5", want: "7.5"},
		{name: "empty resets to zero", input: "", want: "0"},
		{name: "letters rejected", input: "abc", want: "0"},
		{name: "mixed rejected", input: "12a", want: "0"},
		{name: "two dots rejected", input: "1.2.3", want: "0"},
		{name: "sign rejected", input: "-5", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewOverlayTable()
			e := table.SetPercent(overlayKey, tt.input)
			assert.Equal(t, tt.want, e.Percent.String())
		})
	}
}

func TestOverlayTable_RejectedInputKeepsPreviousValue(t *testing.T) {
	table := NewOverlayTable()
	table.SetAmount(overlayKey, "25")

	e := table.SetAmount(overlayKey, "not a number")

	assert.Equal(t, "25", e.Amount.String())
	assert.Equal(t, "25", table.Get(overlayKey).Amount.String())
}

func TestOverlayTable_KeysAreIndependent(t *testing.T) {
	table := NewOverlayTable()
	other := OverlayKey{RoomTypeName: "Suite", ChannelName: "Direct"}

	table.IncrementPercent(overlayKey)

	assert.Equal(t, "1", table.Get(overlayKey).Percent.String())
	assert.Equal(t, "0", table.Get(other).Percent.String())
}

func TestPreviewPrice(t *testing.T) {
	entry := func(percent, amount string) OverlayEntry {
		return OverlayEntry{
			Percent: decimal.RequireFromString(percent),
			Amount:  decimal.RequireFromString(amount),
		}
	}

	tests := []struct {
		name  string
		rate  string
		entry OverlayEntry
		want  string
	}{
		{name: "no overlay", rate: "120", entry: entry("0", "0"), want: "120.00"},
		{name: "percent only", rate: "200", entry: entry("10", "0"), want: "180.00"},
		{name: "amount only", rate: "200", entry: entry("0", "15"), want: "185.00"},
		{name: "percent applies before amount", rate: "100", entry: entry("50", "10"), want: "40.00"},
		{name: "clamped at zero", rate: "10", entry: entry("0", "25"), want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviewPrice(decimal.RequireFromString(tt.rate), tt.entry)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

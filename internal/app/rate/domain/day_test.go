package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf_TruncatesToUTCMidnight(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{
			name:  "midday UTC",
			input: time.Date(2025, 6, 3, 13, 45, 12, 0, time.UTC),
			want:  "2025-06-03",
		},
		{
			name:  "already midnight",
			input: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			want:  "2025-06-03",
		},
		{
			name:  "non-UTC zone normalizes to the UTC date",
			input: time.Date(2025, 6, 3, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want:  "2025-06-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DayOf(tt.input)
			assert.Equal(t, tt.want, d.String())
			assert.Equal(t, time.UTC, d.Time().Location())
			assert.Zero(t, d.Time().Hour())
		})
	}
}

func TestDayOf_SameDateDifferentTimes_AreEqual(t *testing.T) {
	a := DayOf(time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC))
	b := DayOf(time.Date(2025, 6, 3, 22, 59, 59, 0, time.UTC))

	assert.True(t, a.Equal(b))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", d.String())

	_, err = ParseDay("03/06/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDay("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDaysInRange(t *testing.T) {
	day := func(s string) Day {
		d, err := ParseDay(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "single day when from equals to",
			from: "2025-06-01",
			to:   "2025-06-01",
			want: []string{"2025-06-01"},
		},
		{
			name: "three consecutive days",
			from: "2025-06-01",
			to:   "2025-06-03",
			want: []string{"2025-06-01", "2025-06-02", "2025-06-03"},
		},
		{
			name: "crosses a month boundary",
			from: "2025-06-29",
			to:   "2025-07-02",
			want: []string{"2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"},
		},
		{
			name: "empty when to precedes from",
			from: "2025-06-03",
			to:   "2025-06-01",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := DaysInRange(day(tt.from), day(tt.to))
			require.Len(t, days, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, days[i].String())
			}
		})
	}
}

func TestWeekOf_StartsOnMonday(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		wantStart string
	}{
		{name: "wednesday maps back to monday", reference: "2025-06-04", wantStart: "2025-06-02"},
		{name: "monday is its own start", reference: "2025-06-02", wantStart: "2025-06-02"},
		{name: "sunday belongs to the preceding monday", reference: "2025-06-08", wantStart: "2025-06-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseDay(tt.reference)
			require.NoError(t, err)

			week := WeekOf(ref)

			assert.Equal(t, tt.wantStart, week[0].String())
			assert.Equal(t, time.Monday, week[0].Time().Weekday())

			// Seven consecutive days.
			for i := 1; i < WeekDays; i++ {
				assert.True(t, week[i].Equal(week[i-1].AddDays(1)))
			}
		})
	}
}

func TestWeekOf_ContainsReference(t *testing.T) {
	ref, err := ParseDay("2025-06-06")
	require.NoError(t, err)

	week := WeekOf(ref)

	found := false
	for _, d := range week {
		if d.Equal(ref) {
			found = true
		}
	}
	assert.True(t, found, "reference day must be inside its own week")
}

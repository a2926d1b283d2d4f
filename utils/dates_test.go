package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDayUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "already midnight",
			in:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "late evening truncates",
			in:   time.Date(2025, 3, 3, 23, 59, 59, 999, time.UTC),
			want: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "positive offset zone maps to its UTC day",
			in:   time.Date(2025, 3, 4, 1, 30, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			want: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "negative offset zone maps to its UTC day",
			in:   time.Date(2025, 3, 3, 22, 0, 0, 0, time.FixedZone("UTC-4", -4*3600)),
			want: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfDayUTC(tt.in))
		})
	}
}

func TestStartOfDayUTC_SameDayDifferentZonesAgree(t *testing.T) {
	a := time.Date(2025, 3, 3, 8, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	b := time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, StartOfDayUTC(a), StartOfDayUTC(b))
}

func TestStartOfWeekUTC(t *testing.T) {
	sunday := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, sunday, StartOfWeekUTC(time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)), "Sunday stays put")
	assert.Equal(t, sunday, StartOfWeekUTC(time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)), "Wednesday rolls back")
	assert.Equal(t, sunday, StartOfWeekUTC(time.Date(2025, 3, 8, 23, 59, 0, 0, time.UTC)), "Saturday rolls back")
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "not-a-date", "03/03/2025", "2025-13-40"} {
		_, err := ParseDay(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestFormatDay(t *testing.T) {
	in := time.Date(2025, 3, 3, 23, 0, 0, 0, time.FixedZone("UTC-2", -2*3600))
	assert.Equal(t, "2025-03-04", FormatDay(in))
}

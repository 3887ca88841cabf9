package eventtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// now fixed at June 15 2026, noon, so both earlier and later dates in the
// same year are exercised.
var parseNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseExternal(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		when      string
		want      time.Time
	}{
		{
			"typical serp result",
			"Dec 7",
			"Sun, Dec 7, 8:00 – 9:30 PM CST",
			time.Date(2026, time.December, 7, 20, 0, 0, 0, time.UTC),
		},
		{
			"past date rolls to next year",
			"Feb 14",
			"Sat, Feb 14, 7:30 PM",
			time.Date(2027, time.February, 14, 19, 30, 0, 0, time.UTC),
		},
		{
			"am marker kept before noon",
			"Aug 2",
			"Sun, Aug 2, 11:00 AM",
			time.Date(2026, time.August, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			"12 am maps to hour zero",
			"Nov 1",
			"Sat, Nov 1, 12:30 AM",
			time.Date(2026, time.November, 1, 0, 30, 0, 0, time.UTC),
		},
		{
			"12 pm stays noon",
			"Nov 1",
			"Sat, Nov 1, 12:00 PM",
			time.Date(2026, time.November, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			"no time falls back to 8 pm",
			"Sep 9",
			"doors open at sunset",
			time.Date(2026, time.September, 9, 20, 0, 0, 0, time.UTC),
		},
		{
			"no date falls back to jan 1 next year",
			"TBA",
			"8:00 PM",
			// Jan 1 2026 8 PM is already past, so the year rolls.
			time.Date(2027, time.January, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			"both fields garbage",
			"", "",
			time.Date(2027, time.January, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			"full month name",
			"December 31",
			"9:15 pm",
			time.Date(2026, time.December, 31, 21, 15, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExternal(tt.startDate, tt.when, parseNow))
		})
	}
}

func TestParseExternalNeverPanicsOnNoise(t *testing.T) {
	noise := []string{"", "   ", "|||", "99:99", "Jan", "Dec 99 25:61 xm", "\x00\xff"}
	for _, s := range noise {
		assert.NotPanics(t, func() {
			ParseExternal(s, s, parseNow)
		})
	}
}

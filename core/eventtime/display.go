// Package eventtime converts between stored event timestamps, the display
// shape used by the app (day / 3-letter month / 12-hour clock), and the
// free-text date strings returned by the external event search.
package eventtime

import (
	"fmt"
	"strings"
	"time"
)

// MonthCodes is the fixed month order used everywhere a 3-letter code
// appears: event cards, the calendar header, and calendar sorting.
var MonthCodes = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// MonthIndex returns the 0-based index of a 3-letter month code, or -1.
func MonthIndex(code string) int {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i, m := range MonthCodes {
		if m == code {
			return i
		}
	}
	return -1
}

// DisplayTime is the UI-ready form of an event timestamp.
type DisplayTime struct {
	Day   int    `json:"day"`
	Month string `json:"month"`
	Time  string `json:"time"`
}

// Display formats a timestamp for event cards. Hours 0 and 12 both render
// as 12, minutes are zero-padded.
func Display(t time.Time) DisplayTime {
	return DisplayTime{
		Day:   t.Day(),
		Month: MonthCodes[int(t.Month())-1],
		Time:  formatClock(t.Hour(), t.Minute()),
	}
}

func formatClock(hour, minute int) string {
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, ampm)
}

package eventtime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The search API reports dates as loose text, e.g. start_date "Dec 7" and
// when "Sun, Dec 7, 8:00 – 9:30 PM CST". Extraction runs in two independent
// stages (month+day, then clock time) so a miss in one never discards the
// other. Anything unrecognizable falls back to the defaults below; parsing
// never fails a record.

// Fallbacks applied when a stage finds no match.
const (
	defaultDay    = 1  // January 1st
	defaultHour   = 20 // 8:00 PM
	defaultMinute = 0
)

var (
	monthDayPattern = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*(\d{1,2})`)
	clockPattern    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)?`)
	meridiemPattern = regexp.MustCompile(`(?i)\b(am|pm)\b`)
)

// ParseExternal turns the raw date fields of an external search result into
// a concrete timestamp in now's location. Events are assumed upcoming: a
// result that lands strictly in the past rolls forward one year.
func ParseExternal(startDate, when string, now time.Time) time.Time {
	month := time.January
	day := defaultDay
	hour := defaultHour
	minute := defaultMinute

	if m := monthDayPattern.FindStringSubmatch(startDate); m != nil {
		if idx := MonthIndex(m[1][:3]); idx >= 0 {
			month = time.Month(idx + 1)
		}
		if d, err := strconv.Atoi(m[2]); err == nil && d > 0 {
			day = d
		}
	}

	if m := clockPattern.FindStringSubmatch(when); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		ampm := m[3]
		if ampm == "" {
			// Ranges like "8:00 – 9:30 PM" put the marker after the second
			// time; a marker anywhere later in the text covers the first.
			loc := clockPattern.FindStringIndex(when)
			if mm := meridiemPattern.FindString(when[loc[1]:]); mm != "" {
				ampm = mm
			}
		}
		switch strings.ToLower(ampm) {
		case "pm":
			if h < 12 {
				h += 12
			}
		case "am":
			if h == 12 {
				h = 0
			}
		}
		hour = h
		minute = min
	}

	t := time.Date(now.Year(), month, day, hour, minute, 0, 0, now.Location())
	if t.Before(now) {
		t = t.AddDate(1, 0, 0)
	}
	return t
}

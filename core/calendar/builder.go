// Package calendar buckets a viewer's confirmed events into the month grid
// shown on the calendar screen and applies the single-day filter.
package calendar

import (
	"sort"
	"time"

	"soundcheck/core/eventtime"
	"soundcheck/model"
)

// GridCells is the fixed size of the month grid: 6 rows of 7 weekday
// columns, Sunday first.
const GridCells = 42

// MonthGrid lays out the viewed month. The first day of the month lands on
// its weekday column (0=Sunday); cells outside the month have Day 0. A cell
// is marked when any event's display day and month hit it.
func MonthGrid(year int, monthIndex int, events []model.EventWithFriends) []model.CalendarCell {
	cells := make([]model.CalendarCell, GridCells)
	if monthIndex < 0 || monthIndex > 11 {
		return cells
	}

	month := time.Month(monthIndex + 1)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	monthCode := eventtime.MonthCodes[monthIndex]

	marked := make(map[int]bool)
	for _, e := range events {
		if e.Month == monthCode {
			marked[e.Day] = true
		}
	}

	for day := 1; day <= daysInMonth; day++ {
		idx := offset + day - 1
		if idx >= GridCells {
			break
		}
		cells[idx] = model.CalendarCell{Day: day, HasEvent: marked[day]}
	}

	return cells
}

// DaySelection is a single-day filter on the calendar.
type DaySelection struct {
	Day   int    `json:"day"`
	Month string `json:"month"`
}

// Toggle applies a tap on a day cell. Selecting the already-selected day
// clears the filter; anything else selects the new day.
func Toggle(current *DaySelection, day int, month string) *DaySelection {
	if current != nil && current.Day == day && current.Month == month {
		return nil
	}
	return &DaySelection{Day: day, Month: month}
}

// Filter returns the confirmed events for the selection, or, with no
// selection, every confirmed event sorted by (month order, day) ascending.
func Filter(events []model.EventWithFriends, sel *DaySelection) []model.EventWithFriends {
	if sel == nil {
		out := make([]model.EventWithFriends, len(events))
		copy(out, events)
		sort.SliceStable(out, func(i, j int) bool {
			mi, mj := eventtime.MonthIndex(out[i].Month), eventtime.MonthIndex(out[j].Month)
			if mi != mj {
				return mi < mj
			}
			return out[i].Day < out[j].Day
		})
		return out
	}

	out := make([]model.EventWithFriends, 0, len(events))
	for _, e := range events {
		if e.Day == sel.Day && e.Month == sel.Month {
			out = append(out, e)
		}
	}
	return out
}

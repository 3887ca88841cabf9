package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundcheck/model"
)

func ev(day int, month string) model.EventWithFriends {
	return model.EventWithFriends{Day: day, Month: month}
}

func TestMonthGridFeb2026(t *testing.T) {
	// Feb 2026 has 28 days and starts on a Sunday, so the grid is exactly
	// four full weeks with no leading offset.
	events := []model.EventWithFriends{ev(14, "FEB"), ev(14, "MAR")}
	cells := MonthGrid(2026, 1, events)

	require.Len(t, cells, 42)
	assert.Equal(t, 1, cells[0].Day)
	assert.Equal(t, 28, cells[27].Day)
	for i := 28; i < 42; i++ {
		assert.Zero(t, cells[i].Day)
		assert.False(t, cells[i].HasEvent)
	}

	assert.True(t, cells[13].HasEvent) // Feb 14
	assert.False(t, cells[12].HasEvent)
}

func TestMonthGridWeekdayOffset(t *testing.T) {
	// Jun 2026 starts on a Monday: cell 0 empty, cell 1 is day 1.
	cells := MonthGrid(2026, 5, nil)
	assert.Zero(t, cells[0].Day)
	assert.Equal(t, 1, cells[1].Day)
	assert.Equal(t, 30, cells[30].Day)
}

func TestMonthGridIgnoresOtherMonths(t *testing.T) {
	cells := MonthGrid(2026, 1, []model.EventWithFriends{ev(3, "DEC")})
	for _, c := range cells {
		assert.False(t, c.HasEvent)
	}
}

func TestMonthGridBadIndex(t *testing.T) {
	for _, idx := range []int{-1, 12, 99} {
		cells := MonthGrid(2026, idx, nil)
		require.Len(t, cells, 42)
		for _, c := range cells {
			assert.Zero(t, c.Day)
		}
	}
}

func TestToggle(t *testing.T) {
	sel := Toggle(nil, 14, "FEB")
	require.NotNil(t, sel)
	assert.Equal(t, 14, sel.Day)

	// Tapping another day moves the selection.
	sel = Toggle(sel, 15, "FEB")
	require.NotNil(t, sel)
	assert.Equal(t, 15, sel.Day)

	// Tapping the same day clears it.
	assert.Nil(t, Toggle(sel, 15, "FEB"))
}

func TestFilter(t *testing.T) {
	events := []model.EventWithFriends{
		ev(21, "FEB"), ev(3, "JAN"), ev(15, "FEB"), ev(15, "FEB"), ev(1, "DEC"),
	}

	all := Filter(events, nil)
	got := make([][2]interface{}, 0, len(all))
	for _, e := range all {
		got = append(got, [2]interface{}{e.Month, e.Day})
	}
	assert.Equal(t, [][2]interface{}{
		{"JAN", 3}, {"FEB", 15}, {"FEB", 15}, {"FEB", 21}, {"DEC", 1},
	}, got)

	day := Filter(events, &DaySelection{Day: 15, Month: "FEB"})
	assert.Len(t, day, 2)

	none := Filter(events, &DaySelection{Day: 9, Month: "JUL"})
	assert.Empty(t, none)
}

func TestFilterToggleRoundTrip(t *testing.T) {
	events := []model.EventWithFriends{ev(21, "FEB"), ev(3, "JAN")}

	sel := Toggle(nil, 21, "FEB")
	assert.Len(t, Filter(events, sel), 1)

	sel = Toggle(sel, 21, "FEB")
	assert.Nil(t, sel)
	assert.Len(t, Filter(events, sel), len(events))
}

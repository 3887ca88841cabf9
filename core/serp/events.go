package serp

import (
	"strings"
	"time"

	"soundcheck/core/eventtime"
	"soundcheck/model"
)

// ToEvent maps a search result to an event insert payload. Location joins
// venue and address as "<venue> – <address>", falling back to "TBD" when
// both are absent. The timestamp comes from the two-stage date parser; a
// result with no usable date text still produces an event at the parser's
// defaults, never an error.
func ToEvent(res EventResult, createdBy string, now time.Time) model.Event {
	title := strings.TrimSpace(res.Title)
	if title == "" {
		title = "Untitled event"
	}

	var parts []string
	if v := strings.TrimSpace(res.Venue.Name); v != "" {
		parts = append(parts, v)
	}
	if addr := strings.Join(res.Address, ", "); strings.TrimSpace(addr) != "" {
		parts = append(parts, addr)
	}
	location := strings.Join(parts, " – ")
	if location == "" {
		location = "TBD"
	}

	return model.Event{
		Title:       title,
		Description: res.Description,
		DateTime:    eventtime.ParseExternal(res.Date.StartDate, res.Date.When, now),
		Location:    location,
		VenueType:   "venue",
		CreatedBy:   createdBy,
		ArtistIDs:   model.StringList{},
	}
}

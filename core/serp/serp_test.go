package serp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mapNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestToEvent(t *testing.T) {
	var res EventResult
	res.Title = "  Mitski Live "
	res.Description = "One night only"
	res.Venue.Name = "Moody Amphitheater"
	res.Address = []string{"1401 Trinity St", "Austin, TX"}
	res.Date.StartDate = "Dec 7"
	res.Date.When = "Sun, Dec 7, 8:00 – 9:30 PM CST"

	e := ToEvent(res, "creator-id", mapNow)

	assert.Equal(t, "Mitski Live", e.Title)
	assert.Equal(t, "One night only", e.Description)
	assert.Equal(t, "Moody Amphitheater – 1401 Trinity St, Austin, TX", e.Location)
	assert.Equal(t, "venue", e.VenueType)
	assert.Equal(t, "creator-id", e.CreatedBy)
	assert.Empty(t, e.ArtistIDs)
	assert.Equal(t, time.Date(2026, time.December, 7, 20, 0, 0, 0, time.UTC), e.DateTime)
}

func TestToEventLocationFallbacks(t *testing.T) {
	var res EventResult
	res.Title = "Show"

	e := ToEvent(res, "c", mapNow)
	assert.Equal(t, "TBD", e.Location)

	res.Venue.Name = "Cactus Cafe"
	e = ToEvent(res, "c", mapNow)
	assert.Equal(t, "Cactus Cafe", e.Location)

	res.Venue.Name = ""
	res.Address = []string{"2247 Guadalupe St"}
	e = ToEvent(res, "c", mapNow)
	assert.Equal(t, "2247 Guadalupe St", e.Location)
}

func TestToEventEmptyResult(t *testing.T) {
	e := ToEvent(EventResult{}, "c", mapNow)
	assert.Equal(t, "Untitled event", e.Title)
	assert.Equal(t, "TBD", e.Location)
	// Parser defaults: Jan 1 8 PM, rolled past "now" into next year.
	assert.Equal(t, time.Date(2027, time.January, 1, 20, 0, 0, 0, time.UTC), e.DateTime)
}

func TestSearchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google_events", r.URL.Query().Get("engine"))
		assert.Equal(t, "Mitski events Austin, Texas", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"events_results":[{"title":"Mitski Live","date":{"start_date":"Dec 7","when":"8:00 PM"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	results, err := client.SearchEvents(context.Background(), "Mitski events Austin, Texas", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mitski Live", results[0].Title)
	assert.Equal(t, "Dec 7", results[0].Date.StartDate)
}

func TestSearchEventsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-key")
	_, err := client.SearchEvents(context.Background(), "anything", "")
	assert.ErrorContains(t, err, "Invalid API key")
}

func TestSearchEventsNoKey(t *testing.T) {
	client := NewClient("", "")
	_, err := client.SearchEvents(context.Background(), "q", "")
	assert.Error(t, err)
}

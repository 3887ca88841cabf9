package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soundcheck/core/serp"
	"soundcheck/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	artists []model.Profile
}

func (f *fakeProfileRepo) CreateProfile(p *model.Profile) (string, error)     { return p.ID, nil }
func (f *fakeProfileRepo) GetProfileByEmail(string) (*model.Profile, error)   { return nil, nil }
func (f *fakeProfileRepo) UpdateProfile(*model.Profile) error                 { return nil }
func (f *fakeProfileRepo) UpdatePosts(string, model.StringList) error         { return nil }
func (f *fakeProfileRepo) DisplayNames([]string) (map[string]string, error)   { return nil, nil }
func (f *fakeProfileRepo) ListArtists() ([]model.Profile, error)              { return f.artists, nil }
func (f *fakeProfileRepo) GetProfileByID(id string) (*model.Profile, error) {
	for _, a := range f.artists {
		if a.ID == id {
			p := a
			return &p, nil
		}
	}
	return nil, nil
}

type fakeEventRepo struct {
	created []model.Event
}

func (f *fakeEventRepo) CreateEvent(e *model.Event) (string, error) {
	f.created = append(f.created, *e)
	return "evt-" + e.Title, nil
}
func (f *fakeEventRepo) GetEventByID(string) (*model.Event, error) { return nil, nil }
func (f *fakeEventRepo) ListUpcomingEvents(time.Time, int) ([]model.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) ListEventsByIDs([]string) ([]model.Event, error) { return nil, nil }

func newSearchServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google_events", r.URL.Query().Get("engine"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestIngestArtistEvents(t *testing.T) {
	srv := newSearchServer(t, `{"events_results": [
		{"title": "Mitski at Moody Amphitheater", "venue": {"name": "Moody Amphitheater"},
		 "address": ["Austin, TX"], "date": {"start_date": "Dec 7", "when": "Sun, Dec 7, 8:00 PM"}},
		{"title": ""}
	]}`)
	defer srv.Close()

	client := serp.NewClient(srv.URL, "test-key")
	profiles := &fakeProfileRepo{}
	events := &fakeEventRepo{}
	ing := NewIngestor(client, profiles, events, "Austin, Texas", "")

	artist := model.Profile{ID: "artist-1", Name: "Mitski"}
	stored, err := ing.IngestArtistEvents(context.Background(), artist)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	require.Len(t, events.created, 2)
	assert.Equal(t, "Mitski at Moody Amphitheater", events.created[0].Title)
	assert.Equal(t, "Moody Amphitheater – Austin, TX", events.created[0].Location)
	assert.Equal(t, "artist-1", events.created[0].CreatedBy)

	// 无标题的结果退化为占位标题，仍然入库
	assert.Equal(t, "Untitled event", events.created[1].Title)
}

func TestIngestArtistEventsOwnerOverride(t *testing.T) {
	srv := newSearchServer(t, `{"events_results": [{"title": "Beach House"}]}`)
	defer srv.Close()

	client := serp.NewClient(srv.URL, "test-key")
	events := &fakeEventRepo{}
	ing := NewIngestor(client, &fakeProfileRepo{}, events, "Austin, Texas", "system-profile")

	_, err := ing.IngestArtistEvents(context.Background(), model.Profile{ID: "artist-2", Name: "Beach House"})
	require.NoError(t, err)
	require.Len(t, events.created, 1)
	assert.Equal(t, "system-profile", events.created[0].CreatedBy)
}

func TestIngestArtistEventsSearchError(t *testing.T) {
	srv := newSearchServer(t, `{"error": "rate limited"}`)
	defer srv.Close()

	client := serp.NewClient(srv.URL, "test-key")
	events := &fakeEventRepo{}
	ing := NewIngestor(client, &fakeProfileRepo{}, events, "Austin, Texas", "")

	_, err := ing.IngestArtistEvents(context.Background(), model.Profile{ID: "a", Name: "X"})
	assert.Error(t, err)
	assert.Empty(t, events.created)
}

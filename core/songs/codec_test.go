package songs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soundcheck/model"
)

func TestEncode(t *testing.T) {
	songList := []model.Song{
		{Title: " First Love / Late Spring ", Artist: "Mitski"},
		{Title: "Myth", Artist: " Beach House "},
	}
	assert.Equal(t, []string{
		"First Love / Late Spring|||Mitski",
		"Myth|||Beach House",
	}, Encode(songList))

	assert.Nil(t, Encode(nil))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []model.Song
	}{
		{
			"well formed",
			[]string{"Myth|||Beach House", "Nobody|||Mitski"},
			[]model.Song{{Title: "Myth", Artist: "Beach House"}, {Title: "Nobody", Artist: "Mitski"}},
		},
		{
			"missing delimiter is all title",
			[]string{"Just A Title"},
			[]model.Song{{Title: "Just A Title"}},
		},
		{
			"splits on first delimiter only",
			[]string{"a|||b|||c"},
			[]model.Song{{Title: "a", Artist: "b|||c"}},
		},
		{
			"single pipe in title survives",
			[]string{"Sgt. Pepper | Reprise|||The Beatles"},
			[]model.Song{{Title: "Sgt. Pepper | Reprise", Artist: "The Beatles"}},
		},
		{
			"empty pairs dropped",
			[]string{"|||", "", "   |||  ", "ok|||"},
			[]model.Song{{Title: "ok"}},
		},
		{
			"artist only kept",
			[]string{"|||Mitski"},
			[]model.Song{{Artist: "Mitski"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.entries))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	songList := []model.Song{
		{Title: "Washing Machine Heart", Artist: "Mitski"},
		{Title: "Space Song", Artist: "Beach House"},
		{Title: "Archie, Marry Me", Artist: "Alvvays"},
	}
	assert.Equal(t, songList, Decode(Encode(songList)))
}

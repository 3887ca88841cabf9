package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soundcheck/model"
)

func TestScore(t *testing.T) {
	favorites := []string{"Mitski", "Beach House", "Alvvays"}

	tests := []struct {
		name      string
		favorites []string
		similar   []string
		want      float64
	}{
		{"empty similar list always zero", favorites, nil, 0},
		{"empty strings only still zero", favorites, []string{"", "  "}, 0},
		{"full overlap", favorites, []string{"Mitski", "Alvvays"}, 1},
		{"half overlap", favorites, []string{"Mitski", "Slowdive"}, 0.5},
		{"no overlap", favorites, []string{"Slowdive", "Ride"}, 0},
		{"case and whitespace folded", favorites, []string{" mitski ", "BEACH HOUSE"}, 1},
		{"no favorites", nil, []string{"Mitski"}, 0},
		{"denominator is artist list", []string{"Mitski"}, []string{"Mitski", "a", "b", "c"}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.favorites, tt.similar)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestScoreMonotonicInOverlap(t *testing.T) {
	similar := []string{"a", "b", "c", "d"}
	prev := -1.0
	favorites := []string{}
	for _, f := range similar {
		favorites = append(favorites, f)
		s := Score(favorites, similar)
		assert.Greater(t, s, prev)
		prev = s
	}
	assert.Equal(t, 1.0, prev)
}

func TestRank(t *testing.T) {
	artists := []model.Profile{
		{ID: "low", SimilarArtists: model.StringList{"x", "y", "z"}},                  // 0
		{ID: "top1", SimilarArtists: model.StringList{"Mitski", "Beach House"}},       // 1.0
		{ID: "mid", SimilarArtists: model.StringList{"Mitski", "x"}},                  // 0.5
		{ID: "top2", SimilarArtists: model.StringList{"Mitski", "Beach House", "x"}},  // 0.667
		{ID: "none", SimilarArtists: nil},                                             // 0
	}
	favorites := []string{"Mitski", "Beach House"}

	top, explore := Rank(favorites, artists)

	topIDs := ids(top)
	exploreIDs := ids(explore)

	assert.Equal(t, []string{"top1", "top2"}, topIDs)
	// Equal zero scores keep roster order: low before none.
	assert.Equal(t, []string{"mid", "low", "none"}, exploreIDs)

	assert.Equal(t, "100%", top[0].Percent)
	assert.Equal(t, "67%", top[1].Percent)
}

func TestRankThresholdBoundary(t *testing.T) {
	// Exactly 3/5 = 0.60 belongs to top matches.
	artists := []model.Profile{
		{ID: "edge", SimilarArtists: model.StringList{"a", "b", "c", "d", "e"}},
	}
	top, explore := Rank([]string{"a", "b", "c"}, artists)
	assert.Len(t, top, 1)
	assert.Empty(t, explore)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "<1%", FormatPercent(0.001))
	assert.Equal(t, "<1%", FormatPercent(0.004))
	assert.Equal(t, "1%", FormatPercent(0.005))
	assert.Equal(t, "50%", FormatPercent(0.5))
	assert.Equal(t, "100%", FormatPercent(1))
}

func ids(scored []model.ScoredArtist) []string {
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Profile.ID
	}
	return out
}

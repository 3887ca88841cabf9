// Package match scores artist profiles against a listener's declared
// favorites and splits the roster into "top matches" and "explore more".
package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"soundcheck/model"
)

// TopMatchThreshold is the minimum score for the "top matches" bucket.
// Product constant carried over from the app; not configurable at runtime.
const TopMatchThreshold = 0.60

// Normalize lowercases and trims a name list and drops empties, so that
// comparisons ignore case and stray whitespace.
func Normalize(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Score returns the fraction of the artist's similar-acts list found in the
// listener's favorites, in [0,1]. An artist declaring no similar acts scores
// exactly 0.
//
// The denominator is deliberately the artist's list: an artist who names few
// similar acts is easier to match fully than one who names many.
func Score(listenerFavorites, artistSimilarTo []string) float64 {
	similar := Normalize(artistSimilarTo)
	if len(similar) == 0 {
		return 0
	}

	favorites := make(map[string]bool)
	for _, f := range Normalize(listenerFavorites) {
		favorites[f] = true
	}

	hits := 0
	for _, s := range similar {
		if favorites[s] {
			hits++
		}
	}
	return float64(hits) / float64(len(similar))
}

// Rank scores every artist against the listener's favorites and partitions
// the roster at TopMatchThreshold. Both groups come back sorted by
// descending score; equal scores keep roster order.
func Rank(listenerFavorites []string, artists []model.Profile) (top, explore []model.ScoredArtist) {
	scored := make([]model.ScoredArtist, 0, len(artists))
	for _, a := range artists {
		s := Score(listenerFavorites, a.SimilarArtists)
		scored = append(scored, model.ScoredArtist{
			Profile: a,
			Score:   s,
			Percent: FormatPercent(s),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	for _, sa := range scored {
		if sa.Score >= TopMatchThreshold {
			top = append(top, sa)
		} else {
			explore = append(explore, sa)
		}
	}
	return top, explore
}

// FormatPercent renders a score for display. A score that would round to 0%
// but is strictly positive renders as "<1%" so a nonzero overlap never reads
// as no match.
func FormatPercent(score float64) string {
	pct := int(math.Round(score * 100))
	if pct == 0 && score > 0 {
		return "<1%"
	}
	return fmt.Sprintf("%d%%", pct)
}

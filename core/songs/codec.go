// Package songs encodes the "My Songs" list for storage.
//
// Songs live in profiles.posts, one string per entry in the form
// "Title|||Artist". The delimiter was chosen because it does not occur in
// normal titles, including titles that contain a single '|'.
package songs

import (
	"strings"

	"soundcheck/model"
)

// Delimiter separates title from artist in an encoded entry.
const Delimiter = "|||"

// Encode converts songs to their stored form, trimming both fields.
// Order is preserved; any cap on the number of entries is the caller's policy.
func Encode(songList []model.Song) []string {
	if len(songList) == 0 {
		return nil
	}
	out := make([]string, 0, len(songList))
	for _, s := range songList {
		out = append(out, strings.TrimSpace(s.Title)+Delimiter+strings.TrimSpace(s.Artist))
	}
	return out
}

// Decode converts stored entries back to songs. Each entry is split on the
// first occurrence of the delimiter; an entry without the delimiter is all
// title. Entries that decode to an empty title and empty artist are dropped.
func Decode(entries []string) []model.Song {
	if len(entries) == 0 {
		return nil
	}
	out := make([]model.Song, 0, len(entries))
	for _, entry := range entries {
		var s model.Song
		if i := strings.Index(entry, Delimiter); i >= 0 {
			s.Title = strings.TrimSpace(entry[:i])
			s.Artist = strings.TrimSpace(entry[i+len(Delimiter):])
		} else {
			s.Title = strings.TrimSpace(entry)
		}
		if s.Title == "" && s.Artist == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

package model

import "time"

// UserType 用户类型
type UserType string

const (
	UserTypeListener UserType = "listener"
	UserTypeArtist   UserType = "artist"
)

// Profile represents a user profile in the system.
//
// Listeners declare FavoriteArtistNames; artist profiles declare
// SimilarArtists. Posts holds the "My Songs" entries in their encoded
// "Title|||Artist" form (see core/songs).
type Profile struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"` // Not exposed in API responses
	UserType            UserType   `json:"userType"`
	FavoriteArtistNames StringList `json:"favoriteArtistNames"`
	SimilarArtists      StringList `json:"similarArtists"`
	Genres              StringList `json:"genres"`
	Bio                 string     `json:"bio,omitempty"`
	Posts               StringList `json:"posts"`
	InstagramHandle     string     `json:"instagramHandle,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

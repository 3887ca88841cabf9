package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"soundcheck/model"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// ErrDuplicateProfile is returned when a profile with the same email exists.
var ErrDuplicateProfile = errors.New("profile already exists")

// ProfileRepository defines the interface for profile data operations.
type ProfileRepository interface {
	CreateProfile(profile *model.Profile) (string, error)
	GetProfileByID(id string) (*model.Profile, error)
	GetProfileByEmail(email string) (*model.Profile, error)
	ListArtists() ([]model.Profile, error)
	DisplayNames(ids []string) (map[string]string, error)
	UpdateProfile(profile *model.Profile) error
	UpdatePosts(id string, posts model.StringList) error
}

// mysqlProfileRepository implements ProfileRepository for MySQL.
type mysqlProfileRepository struct {
	db *sql.DB
}

// NewMySQLProfileRepository creates a new mysqlProfileRepository.
func NewMySQLProfileRepository(db *sql.DB) ProfileRepository {
	return &mysqlProfileRepository{db: db}
}

const profileColumns = "id, name, email, password_hash, user_type, favorite_artist_names, similar_artists, genres, bio, posts, instagram_handle, created_at, updated_at"

// CreateProfile adds a new profile to the database and returns its id.
func (r *mysqlProfileRepository) CreateProfile(profile *model.Profile) (string, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	query := "INSERT INTO profiles (id, name, email, password_hash, user_type, favorite_artist_names, similar_artists, genres, bio, posts, instagram_handle) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return "", fmt.Errorf("failed to prepare create profile statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(profile.ID, profile.Name, profile.Email, profile.PasswordHash,
		profile.UserType, profile.FavoriteArtistNames, profile.SimilarArtists,
		profile.Genres, nullable(profile.Bio), profile.Posts, nullable(profile.InstagramHandle))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return "", ErrDuplicateProfile
		}
		return "", fmt.Errorf("failed to execute create profile statement: %w", err)
	}
	return profile.ID, nil
}

// GetProfileByID retrieves a profile by its id.
func (r *mysqlProfileRepository) GetProfileByID(id string) (*model.Profile, error) {
	row := r.db.QueryRow("SELECT "+profileColumns+" FROM profiles WHERE id = ?", id)
	profile, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Profile not found
		}
		return nil, fmt.Errorf("failed to scan profile row for id %s: %w", id, err)
	}
	return profile, nil
}

// GetProfileByEmail retrieves a profile by email address.
func (r *mysqlProfileRepository) GetProfileByEmail(email string) (*model.Profile, error) {
	row := r.db.QueryRow("SELECT "+profileColumns+" FROM profiles WHERE email = ?", email)
	profile, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Profile not found
		}
		return nil, fmt.Errorf("failed to scan profile row for email %s: %w", email, err)
	}
	return profile, nil
}

// ListArtists retrieves all artist profiles in creation order.
func (r *mysqlProfileRepository) ListArtists() ([]model.Profile, error) {
	rows, err := r.db.Query("SELECT "+profileColumns+" FROM profiles WHERE user_type = ? ORDER BY created_at ASC", model.UserTypeArtist)
	if err != nil {
		return nil, fmt.Errorf("failed to query artist profiles: %w", err)
	}
	defer rows.Close()

	var artists []model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist profile row: %w", err)
		}
		artists = append(artists, *profile)
	}
	return artists, rows.Err()
}

// DisplayNames resolves profile ids to display names. Ids without a row are
// simply absent from the result.
func (r *mysqlProfileRepository) DisplayNames(ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.Query("SELECT id, name FROM profiles WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query display names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan display name row: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}

// UpdateProfile updates the owner-editable fields of a profile.
func (r *mysqlProfileRepository) UpdateProfile(profile *model.Profile) error {
	query := "UPDATE profiles SET name = ?, favorite_artist_names = ?, similar_artists = ?, genres = ?, bio = ?, instagram_handle = ?, updated_at = NOW() WHERE id = ?"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare update profile statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(profile.Name, profile.FavoriteArtistNames, profile.SimilarArtists,
		profile.Genres, nullable(profile.Bio), nullable(profile.InstagramHandle), profile.ID)
	if err != nil {
		return fmt.Errorf("failed to execute update profile statement: %w", err)
	}
	return nil
}

// UpdatePosts replaces the encoded "My Songs" entries of a profile.
func (r *mysqlProfileRepository) UpdatePosts(id string, posts model.StringList) error {
	_, err := r.db.Exec("UPDATE profiles SET posts = ?, updated_at = NOW() WHERE id = ?", posts, id)
	if err != nil {
		return fmt.Errorf("failed to update profile posts: %w", err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	profile := &model.Profile{}
	var bio, instagram sql.NullString
	err := row.Scan(&profile.ID, &profile.Name, &profile.Email, &profile.PasswordHash,
		&profile.UserType, &profile.FavoriteArtistNames, &profile.SimilarArtists,
		&profile.Genres, &bio, &profile.Posts, &instagram,
		&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}
	profile.Bio = bio.String
	profile.InstagramHandle = instagram.String
	return profile, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"soundcheck/model"

	"github.com/google/uuid"
)

// EventRepository defines the interface for event data operations.
// Events are insert-only; nothing in the app mutates them after creation.
type EventRepository interface {
	CreateEvent(event *model.Event) (string, error)
	GetEventByID(id string) (*model.Event, error)
	ListUpcomingEvents(from time.Time, limit int) ([]model.Event, error)
	ListEventsByIDs(ids []string) ([]model.Event, error)
}

// mysqlEventRepository implements EventRepository for MySQL.
type mysqlEventRepository struct {
	db *sql.DB
}

// NewMySQLEventRepository creates a new mysqlEventRepository.
func NewMySQLEventRepository(db *sql.DB) EventRepository {
	return &mysqlEventRepository{db: db}
}

const eventColumns = "id, title, description, date_time, location, venue_type, created_by, artist_ids, created_at"

// CreateEvent adds a new event to the database and returns its id.
func (r *mysqlEventRepository) CreateEvent(event *model.Event) (string, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	query := "INSERT INTO events (id, title, description, date_time, location, venue_type, created_by, artist_ids) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return "", fmt.Errorf("failed to prepare create event statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(event.ID, event.Title, nullable(event.Description), event.DateTime.UTC(),
		event.Location, nullable(event.VenueType), event.CreatedBy, event.ArtistIDs)
	if err != nil {
		return "", fmt.Errorf("failed to execute create event statement: %w", err)
	}
	return event.ID, nil
}

// GetEventByID retrieves an event by its id.
func (r *mysqlEventRepository) GetEventByID(id string) (*model.Event, error) {
	row := r.db.QueryRow("SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	event, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Event not found
		}
		return nil, fmt.Errorf("failed to scan event row for id %s: %w", id, err)
	}
	return event, nil
}

// ListUpcomingEvents retrieves events at or after the given time, soonest
// first.
func (r *mysqlEventRepository) ListUpcomingEvents(from time.Time, limit int) ([]model.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE date_time >= ? ORDER BY date_time ASC"
	args := []interface{}{from.UTC()}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// ListEventsByIDs retrieves the events with the given ids, soonest first.
func (r *mysqlEventRepository) ListEventsByIDs(ids []string) ([]model.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.Query("SELECT "+eventColumns+" FROM events WHERE id IN ("+placeholders+") ORDER BY date_time ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by ids: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func scanEvent(row rowScanner) (*model.Event, error) {
	event := &model.Event{}
	var description, venueType sql.NullString
	err := row.Scan(&event.ID, &event.Title, &description, &event.DateTime,
		&event.Location, &venueType, &event.CreatedBy, &event.ArtistIDs, &event.CreatedAt)
	if err != nil {
		return nil, err
	}
	event.Description = description.String
	event.VenueType = venueType.String
	return event, nil
}

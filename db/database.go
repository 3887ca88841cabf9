package db

import (
	"database/sql"
	"fmt"
	"log"

	"soundcheck/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database.")
	return nil
}

// InitDB initializes the database schema, creating tables if they don't exist.
// Follows and event_attendance are migrated separately through GORM.
func InitDB() error {
	if err := createProfilesTable(); err != nil {
		return err
	}
	if err := createEventsTable(); err != nil {
		return err
	}

	log.Println("Database initialization completed.")
	return nil
}

func createProfilesTable() error {
	// List-valued columns (favorite_artist_names, similar_artists, genres,
	// posts) hold JSON text; older rows may contain a JSON-encoded string of
	// an array or NULL, which model.StringList tolerates on scan.
	query := `
	CREATE TABLE IF NOT EXISTS profiles (
		id CHAR(36) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		user_type VARCHAR(16) NOT NULL DEFAULT 'listener',
		favorite_artist_names TEXT,
		similar_artists TEXT,
		genres TEXT,
		bio TEXT,
		posts TEXT,
		instagram_handle VARCHAR(100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`
	_, err := DB.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create profiles table: %w", err)
	}
	log.Println("Profiles table initialized successfully (or already exists).")
	return nil
}

func createEventsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		id CHAR(36) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		date_time DATETIME NOT NULL,
		location VARCHAR(512) NOT NULL,
		venue_type VARCHAR(50),
		created_by CHAR(36) NOT NULL,
		artist_ids TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_event_creator FOREIGN KEY (created_by) REFERENCES profiles(id) ON DELETE CASCADE,
		INDEX idx_events_date_time (date_time)
	);
	`
	_, err := DB.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}
	log.Println("Events table initialized successfully (or already exists).")
	return nil
}

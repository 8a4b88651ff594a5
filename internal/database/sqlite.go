package database

import (
	"database/sql"
	"log"
	"time"

	"ZoonScraper/internal/models"

	_ "modernc.org/sqlite"
)

// PlaceRepository is a thin layer around the database connection. The CSV
// snapshots remain the primary output; the database is the queryable archive
// that survives across runs.
type PlaceRepository struct {
	DB *sql.DB
}

// InitDB opens (or creates) the archive database and its schema.
func InitDB(filepath string) *PlaceRepository {
	db, err := sql.Open("sqlite", filepath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	createPlacesTableSQL := `
	CREATE TABLE IF NOT EXISTS places (
		"id" INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
		"name" TEXT UNIQUE,
		"rating" REAL,
		"categories" TEXT,
		"scraped_at" DATETIME
	);`

	_, err = db.Exec(createPlacesTableSQL)
	if err != nil {
		log.Fatalf("Error creating places table: %v", err)
	}

	log.Println("Database and tables initialized successfully.")
	return &PlaceRepository{DB: db}
}

// Close closes the database connection.
func (repo *PlaceRepository) Close() {
	repo.DB.Close()
}

// SavePlace inserts or refreshes a single place, keyed by name.
func (repo *PlaceRepository) SavePlace(place models.Place) error {
	query := `
	INSERT INTO places (name, rating, categories, scraped_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		rating=excluded.rating,
		categories=excluded.categories,
		scraped_at=excluded.scraped_at;
	`

	var rating sql.NullFloat64
	if place.Rating != nil {
		rating = sql.NullFloat64{Float64: *place.Rating, Valid: true}
	}

	categories, err := place.Categories.Value()
	if err != nil {
		return err
	}

	_, err = repo.DB.Exec(query, place.Name, rating, categories, time.Now())
	if err != nil {
		log.Printf("Failed to save place %q: %v", place.Name, err)
		return err
	}
	return nil
}

// CountPlaces returns the number of archived places.
func (repo *PlaceRepository) CountPlaces() (int, error) {
	var count int
	err := repo.DB.QueryRow(`SELECT COUNT(*) FROM places`).Scan(&count)
	return count, err
}

// GetPlaces returns every archived place in insertion order.
func (repo *PlaceRepository) GetPlaces() ([]models.Place, error) {
	rows, err := repo.DB.Query(`SELECT id, name, rating, categories FROM places ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		var place models.Place
		var rating sql.NullFloat64
		if err := rows.Scan(&place.ID, &place.Name, &rating, &place.Categories); err != nil {
			return nil, err
		}
		if rating.Valid {
			value := rating.Float64
			place.Rating = &value
		}
		places = append(places, place)
	}
	return places, rows.Err()
}

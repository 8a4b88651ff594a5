package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Place holds everything extracted from a single catalog card.
type Place struct {
	ID         int64           `db:"id"`
	Name       string          `db:"name"`
	Rating     *float64        `db:"rating"`
	Categories JSONStringSlice `db:"categories"`
	ScrapedAt  time.Time       `db:"scraped_at"`
}

// JSONStringSlice is a custom type to handle JSON serialization/deserialization for []string
type JSONStringSlice []string

// Value implements the driver.Valuer interface to convert []string to JSON for database storage
func (j JSONStringSlice) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface to convert JSON from database to []string
func (j *JSONStringSlice) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for JSONStringSlice")
	}
	return json.Unmarshal(bytes, j)
}

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gustfront/meteogram/internal/models"
)

// Store persists user display preferences. Computed series are never stored;
// they are rebuilt from scratch on every input change.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetPreferences returns the stored preference row, or defaults when nothing
// has been saved yet.
func (s *Store) GetPreferences() (models.Preferences, error) {
	row := s.db.QueryRow(`
		SELECT temperature_unit, wind_speed_unit, precipitation_unit, pressure_unit, view_mode, model_ids
		FROM preferences
		WHERE id = 1
	`)

	var p models.Preferences
	var modelIDs string
	err := row.Scan(&p.Units.Temperature, &p.Units.WindSpeed, &p.Units.Precipitation,
		&p.Units.Pressure, &p.ViewMode, &modelIDs)
	if err == sql.ErrNoRows {
		return models.DefaultPreferences(), nil
	}
	if err != nil {
		return models.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}

	if modelIDs != "" {
		p.Models = strings.Split(modelIDs, ",")
	}
	return p, nil
}

// SavePreferences upserts the single preference row.
func (s *Store) SavePreferences(p models.Preferences) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (id, temperature_unit, wind_speed_unit, precipitation_unit, pressure_unit, view_mode, model_ids, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			temperature_unit = excluded.temperature_unit,
			wind_speed_unit = excluded.wind_speed_unit,
			precipitation_unit = excluded.precipitation_unit,
			pressure_unit = excluded.pressure_unit,
			view_mode = excluded.view_mode,
			model_ids = excluded.model_ids,
			updated_at = excluded.updated_at
	`, p.Units.Temperature, p.Units.WindSpeed, p.Units.Precipitation, p.Units.Pressure,
		p.ViewMode, strings.Join(p.Models, ","), time.Now().UTC())
	return err
}

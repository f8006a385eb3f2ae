package repository

import (
	"database/sql"
	"fmt"

	"github.com/seisnet/waveform-backend-go/internal/models"
)

// EventRepository reads shot/event metadata from the archive's event_t
// table.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ShotLines returns the named shot lines present in the event table.
func (r *EventRepository) ShotLines() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT shot_line FROM event_t ORDER BY shot_line")
	if err != nil {
		return nil, fmt.Errorf("failed to query shot lines: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan shot line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Events returns the events of one shot line in origin-time order, or all
// events when shotLine is empty.
func (r *EventRepository) Events(shotLine string) ([]models.EventRecord, error) {
	query := "SELECT event_id, shot_line, origin, latitude, longitude, depth FROM event_t"
	var args []interface{}
	if shotLine != "" {
		query += " WHERE shot_line = ?"
		args = append(args, shotLine)
	}
	query += " ORDER BY origin"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.EventRecord
	for rows.Next() {
		var ev models.EventRecord
		if err := rows.Scan(&ev.ID, &ev.ShotLine, &ev.Origin, &ev.Latitude, &ev.Longitude, &ev.Depth); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

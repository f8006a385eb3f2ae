package repository

import (
	"database/sql"
	"fmt"

	"github.com/seisnet/waveform-backend-go/internal/models"
)

// ArrayRepository reads array and station-deployment metadata from the
// archive's array_t table.
type ArrayRepository struct {
	db *sql.DB
}

// NewArrayRepository creates a new array repository
func NewArrayRepository(db *sql.DB) *ArrayRepository {
	return &ArrayRepository{db: db}
}

// ArrayNames returns the distinct array names in sorted order.
func (r *ArrayRepository) ArrayNames() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT array FROM array_t ORDER BY array")
	if err != nil {
		return nil, fmt.Errorf("failed to query array names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan array name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Deployments returns the station-deployment records of one array in the
// archive's native station order. Rows are validated once here; downstream
// code trusts the typed records.
func (r *ArrayRepository) Deployments(array string) ([]models.StationDeployment, error) {
	query := `SELECT station_id, seed_station, array, channel, seed_channel, das, location,
		latitude, longitude, sample_rate, sample_rate_multiplier, deploy, pickup
		FROM array_t WHERE array = ? ORDER BY rowid`

	rows, err := r.db.Query(query, array)
	if err != nil {
		return nil, fmt.Errorf("failed to query deployments for array %s: %w", array, err)
	}
	defer rows.Close()

	var deps []models.StationDeployment
	for rows.Next() {
		var d models.StationDeployment
		err := rows.Scan(
			&d.StationID, &d.SeedStation, &d.Array, &d.Channel, &d.SeedChannel,
			&d.DASID, &d.Location, &d.Latitude, &d.Longitude,
			&d.SampleRate, &d.SampleRateMultiplier, &d.Deploy, &d.Pickup,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deployment: %w", err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid deployment row in array %s: %w", array, err)
		}
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

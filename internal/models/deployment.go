package models

import "fmt"

// StationDeployment represents one physical installation of a sensor channel
// at a station for an array, bounded by its deploy and pickup epochs.
type StationDeployment struct {
	StationID            string  `json:"stationId" db:"station_id"`
	SeedStation          string  `json:"seedStation" db:"seed_station"`
	Array                string  `json:"array" db:"array"`
	Channel              int     `json:"channel" db:"channel"`
	SeedChannel          string  `json:"seedChannel" db:"seed_channel"`     // band + instrument + orientation
	DASID                string  `json:"das" db:"das"`
	Location             string  `json:"location" db:"location"`
	Latitude             float64 `json:"latitude" db:"latitude"`
	Longitude            float64 `json:"longitude" db:"longitude"`
	SampleRate           int     `json:"sampleRate" db:"sample_rate"`
	SampleRateMultiplier int     `json:"sampleRateMultiplier" db:"sample_rate_multiplier"`
	Deploy               float64 `json:"deploy" db:"deploy"` // epoch seconds, fractional
	Pickup               float64 `json:"pickup" db:"pickup"` // epoch seconds, fractional
}

// EffectiveSampleRate returns the true rate in samples per second.
// The archive stores rates as a rational (rate / multiplier) so that
// sub-1 Hz channels can be represented exactly.
func (d StationDeployment) EffectiveSampleRate() float64 {
	if d.SampleRateMultiplier == 0 {
		return float64(d.SampleRate)
	}
	return float64(d.SampleRate) / float64(d.SampleRateMultiplier)
}

// Validate checks fields read from the archive once, at the reader boundary.
func (d StationDeployment) Validate() error {
	if d.StationID == "" {
		return fmt.Errorf("deployment missing station id (array %s)", d.Array)
	}
	if d.DASID == "" {
		return fmt.Errorf("deployment missing das id (station %s)", d.StationID)
	}
	if d.SampleRate <= 0 {
		return fmt.Errorf("deployment has non-positive sample rate %d (station %s)", d.SampleRate, d.StationID)
	}
	if d.SampleRateMultiplier < 0 {
		return fmt.Errorf("deployment has negative sample rate multiplier %d (station %s)", d.SampleRateMultiplier, d.StationID)
	}
	if d.Pickup < d.Deploy {
		return fmt.Errorf("deployment pickup %f before deploy %f (station %s)", d.Pickup, d.Deploy, d.StationID)
	}
	return nil
}

// EventRecord represents a shot or event read from the archive event tables.
type EventRecord struct {
	ID        string  `json:"id" db:"event_id"`
	ShotLine  string  `json:"shotLine,omitempty" db:"shot_line"`
	Origin    float64 `json:"origin" db:"origin"` // epoch seconds, fractional
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Depth     float64 `json:"depth,omitempty" db:"depth"` // meters
}

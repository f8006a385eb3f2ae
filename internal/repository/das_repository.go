package repository

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/seisnet/waveform-backend-go/internal/extract"
)

// DASRepository reads raw sample segments, clock-model rows, and
// source-receiver offsets for individual data acquisition systems.
//
// Sample data lives in das_t, one row per contiguous recording segment,
// with samples stored as little-endian int32 blobs. Clock models live in
// time_t as linear drift rows (offset seconds plus slope). Offsets live in
// offset_t keyed by array, shot line, event, and station.
type DASRepository struct {
	db *sql.DB
}

// NewDASRepository creates a new das repository
func NewDASRepository(db *sql.DB) *DASRepository {
	return &DASRepository{db: db}
}

// Cut returns the raw segments of one das channel overlapping
// [start, end), trimmed to the window. When the earliest stored sample
// begins inside the window the segment start reflects the first available
// sample, never an earlier fabricated time.
func (r *DASRepository) Cut(dasID string, channel int, start, end float64) ([]extract.RawSegment, error) {
	query := `SELECT start, end_time, sample_rate, sample_rate_multiplier, nsamples, data
		FROM das_t WHERE das = ? AND channel = ? AND start < ? AND end_time > ?
		ORDER BY start`

	rows, err := r.db.Query(query, dasID, channel, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to query das %s channel %d: %w", dasID, channel, err)
	}
	defer rows.Close()

	var segs []extract.RawSegment
	for rows.Next() {
		var (
			segStart, segEnd float64
			rate, mult       int
			nsamples         int
			blob             []byte
		)
		if err := rows.Scan(&segStart, &segEnd, &rate, &mult, &nsamples, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan das segment: %w", err)
		}
		if mult == 0 {
			mult = 1
		}
		effRate := float64(rate) / float64(mult)

		seg := trimSegment(decodeSamples(blob), segStart, effRate, nsamples, start, end)
		segs = append(segs, seg)
	}
	return segs, rows.Err()
}

// trimSegment slices one stored segment to the requested window. The
// declared sample count is carried through so a truncated blob surfaces as
// a count mismatch downstream instead of silently shortened data.
func trimSegment(data []int32, segStart, rate float64, declared int, start, end float64) extract.RawSegment {
	first := 0
	if start > segStart {
		first = int(math.Ceil((start-segStart)*rate - 1e-9))
	}
	last := declared
	if stop := int(math.Floor((end-segStart)*rate + 1e-9)); stop < last {
		last = stop
	}
	if first < 0 {
		first = 0
	}
	if last > len(data) {
		// Truncated blob: keep the declared count so the assembler can
		// log and drop the segment.
		return extract.RawSegment{
			Data:       sliceSamples(data, first, len(data)),
			NSamples:   last - first,
			SampleRate: rate,
			Start:      segStart + float64(first)/rate,
		}
	}
	if last <= first {
		return extract.RawSegment{SampleRate: rate, Start: segStart}
	}
	return extract.RawSegment{
		Data:       data[first:last],
		NSamples:   last - first,
		SampleRate: rate,
		Start:      segStart + float64(first)/rate,
	}
}

func sliceSamples(data []int32, first, last int) []int32 {
	if first >= last {
		return nil
	}
	return data[first:last]
}

func decodeSamples(blob []byte) []int32 {
	n := len(blob) / 4
	data := make([]int32, n)
	for i := 0; i < n; i++ {
		data[i] = int32(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return data
}

// ClockCorrection evaluates the das's linear clock model at the midpoint
// of [start, end] and returns the drift in milliseconds. A das without
// clock rows has zero drift.
func (r *DASRepository) ClockCorrection(dasID string, start, end float64) (float64, error) {
	query := `SELECT start, offset_secs, slope FROM time_t
		WHERE das = ? AND start <= ? AND end_time >= ? ORDER BY start LIMIT 1`

	mid := (start + end) / 2
	var rowStart, offsetSecs, slope float64
	err := r.db.QueryRow(query, dasID, mid, mid).Scan(&rowStart, &offsetSecs, &slope)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query clock model for das %s: %w", dasID, err)
	}

	return (offsetSecs + slope*(mid-rowStart)) * 1000, nil
}

// Offset returns the source-receiver offset in meters for one station and
// event, with ok=false when the archive has no offset row.
func (r *DASRepository) Offset(array, shotLine, eventID, stationID string) (float64, bool, error) {
	query := `SELECT offset_m FROM offset_t
		WHERE array = ? AND shot_line = ? AND event_id = ? AND station_id = ?`

	var meters float64
	err := r.db.QueryRow(query, array, shotLine, eventID, stationID).Scan(&meters)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query offset for station %s event %s: %w", stationID, eventID, err)
	}
	return meters, true, nil
}

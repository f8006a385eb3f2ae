package extract

import "github.com/seisnet/waveform-backend-go/internal/models"

// RawSegment is one contiguous run of samples returned by the archive for a
// cut. Start may be later than the requested start when the archive's
// earliest available sample begins inside the window.
type RawSegment struct {
	Data       []int32
	NSamples   int
	SampleRate float64
	Start      float64 // epoch seconds, fractional
}

// ArchiveReader is the narrow view of the archive storage layer consumed by
// the extraction core. One logical handle per run; implementations are not
// required to be safe for concurrent use because the underlying reader
// caches table and segment data per das.
type ArchiveReader interface {
	// ArrayNames returns the archive's array names in sorted order.
	ArrayNames() ([]string, error)

	// Deployments returns the station-deployment records of one array in
	// archive-native station order.
	Deployments(array string) ([]models.StationDeployment, error)

	// ShotLines returns the named shot lines present in the event tables.
	ShotLines() ([]string, error)

	// Events returns the events of one shot line, or all events when
	// shotLine is empty.
	Events(shotLine string) ([]models.EventRecord, error)

	// Cut returns the raw sample segments overlapping [start, end) for one
	// das channel. A zero-segment result means no data, not an error.
	Cut(dasID string, channel int, start, end float64) ([]RawSegment, error)

	// ClockCorrection evaluates the per-das clock model over [start, end]
	// and returns the drift in milliseconds. A das without clock rows
	// yields zero.
	ClockCorrection(dasID string, start, end float64) (float64, error)

	// Offset returns the source-receiver offset in meters from the
	// archive's offset table, with ok=false when no row exists.
	Offset(array, shotLine, eventID, stationID string) (float64, bool, error)
}

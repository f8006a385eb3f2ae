package extract

import (
	"sort"

	"github.com/seisnet/waveform-backend-go/internal/models"
)

// fakeArchive is the in-memory archive reader used across the extract
// tests. Function fields override individual operations.
type fakeArchive struct {
	deployments map[string][]models.StationDeployment // keyed by array
	events      map[string][]models.EventRecord       // keyed by shot line
	offsets     map[string]float64                    // keyed by station id
	clockMS     float64

	cutFn func(dasID string, channel int, start, end float64) ([]RawSegment, error)
}

func (f *fakeArchive) ArrayNames() ([]string, error) {
	var names []string
	for name := range f.deployments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeArchive) Deployments(array string) ([]models.StationDeployment, error) {
	return f.deployments[array], nil
}

func (f *fakeArchive) ShotLines() ([]string, error) {
	var lines []string
	for line := range f.events {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return lines, nil
}

func (f *fakeArchive) Events(shotLine string) ([]models.EventRecord, error) {
	if shotLine == "" {
		var all []models.EventRecord
		for _, evs := range f.events {
			all = append(all, evs...)
		}
		return all, nil
	}
	return f.events[shotLine], nil
}

func (f *fakeArchive) Cut(dasID string, channel int, start, end float64) ([]RawSegment, error) {
	if f.cutFn != nil {
		return f.cutFn(dasID, channel, start, end)
	}
	return nil, nil
}

func (f *fakeArchive) ClockCorrection(dasID string, start, end float64) (float64, error) {
	return f.clockMS, nil
}

func (f *fakeArchive) Offset(array, shotLine, eventID, stationID string) (float64, bool, error) {
	m, ok := f.offsets[stationID]
	return m, ok, nil
}

// rampSegment builds count samples 0,1,2,... starting at start.
func rampSegment(start float64, rate float64, count int) RawSegment {
	data := make([]int32, count)
	for i := range data {
		data[i] = int32(i)
	}
	return RawSegment{Data: data, NSamples: count, SampleRate: rate, Start: start}
}

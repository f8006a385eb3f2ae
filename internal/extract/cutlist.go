package extract

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/seisnet/waveform-backend-go/internal/match"
	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/timeutil"
)

var networkCode = regexp.MustCompile(`^[A-Za-z0-9]{2}$`)

// CutList lazily produces the cut requests selected by a filter, one at a
// time, iterating arrays in sorted order, stations in archive-native order,
// then deployments. It follows the sql.Rows protocol: Next advances, Cut
// returns the current request, Err reports the first failure. A CutList is
// finite and not restartable.
type CutList struct {
	archive ArchiveReader
	filter  models.CutFilter

	start      *float64 // parsed explicit window start
	stop       *float64
	eventAssoc bool
	events     []models.EventRecord // selected shot line events

	arrays  []string
	ai      int
	deps    []models.StationDeployment
	di      int
	pending []models.CutRequest
	cur     models.CutRequest
	err     error
	done    bool
}

// NewCutList validates the filter's configuration and prepares iteration.
// Misconfiguration (bad network code, missing shot line, event ids without
// a shot line, malformed times) fails here, before any cut is produced.
func NewCutList(archive ArchiveReader, filter models.CutFilter) (*CutList, error) {
	if !networkCode.MatchString(filter.Network) {
		return nil, &ConfigError{Msg: fmt.Sprintf("network code %q must be exactly 2 alphanumeric characters", filter.Network)}
	}
	if len(filter.EventIDs) > 0 && filter.ShotLine == "" {
		return nil, &ConfigError{Msg: "event ids given without a shot line"}
	}

	l := &CutList{archive: archive, filter: filter}

	if filter.Start != "" {
		epoch, err := timeutil.ParseEpoch(filter.Start)
		if err != nil {
			return nil, err
		}
		l.start = &epoch
	}
	if filter.Stop != "" {
		epoch, err := timeutil.ParseEpoch(filter.Stop)
		if err != nil {
			return nil, err
		}
		l.stop = &epoch
	}

	if filter.ShotLine != "" {
		lines, err := archive.ShotLines()
		if err != nil {
			return nil, fmt.Errorf("failed to list shot lines: %w", err)
		}
		if !slices.Contains(lines, filter.ShotLine) {
			return nil, &ConfigError{Msg: fmt.Sprintf("shot line %q not in archive", filter.ShotLine)}
		}
		events, err := archive.Events(filter.ShotLine)
		if err != nil {
			return nil, fmt.Errorf("failed to read shot line %s: %w", filter.ShotLine, err)
		}
		l.eventAssoc = true
		l.events = events
	}

	arrays, err := archive.ArrayNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list arrays: %w", err)
	}
	l.arrays = arrays

	return l, nil
}

// Next advances to the next cut request. It returns false when the listing
// is exhausted or a read error occurred; check Err afterwards.
func (l *CutList) Next() bool {
	if l.err != nil || l.done {
		return false
	}
	for {
		if len(l.pending) > 0 {
			l.cur = l.pending[0]
			l.pending = l.pending[1:]
			return true
		}
		for l.di >= len(l.deps) {
			if l.ai >= len(l.arrays) {
				l.done = true
				return false
			}
			name := l.arrays[l.ai]
			l.ai++
			if len(l.filter.Arrays) > 0 && !match.Any(l.filter.Arrays, name) {
				continue
			}
			deps, err := l.archive.Deployments(name)
			if err != nil {
				l.err = err
				return false
			}
			l.deps = deps
			l.di = 0
		}
		d := l.deps[l.di]
		l.di++
		if !l.selects(d) {
			continue
		}
		l.pending = l.buildCuts(d)
	}
}

// Cut returns the request produced by the last successful Next.
func (l *CutList) Cut() models.CutRequest {
	return l.cur
}

// Err returns the first error encountered during iteration, if any.
func (l *CutList) Err() error {
	return l.err
}

// selects applies every per-deployment selection filter. A mismatch is a
// silent skip, never an error.
func (l *CutList) selects(d models.StationDeployment) bool {
	f := l.filter
	if len(f.Stations) > 0 && !match.Any(f.Stations, d.SeedStation) {
		return false
	}
	if len(f.StationIDs) > 0 && !slices.Contains(f.StationIDs, d.StationID) {
		return false
	}
	if len(f.Channels) > 0 && !match.Any(f.Channels, d.SeedChannel) {
		return false
	}
	if len(f.Components) > 0 && !match.Any(f.Components, strconv.Itoa(d.Channel)) {
		return false
	}
	if len(f.DASIDs) > 0 && !slices.Contains(f.DASIDs, d.DASID) {
		return false
	}
	if len(f.SampleRates) > 0 && !slices.Contains(f.SampleRates, d.EffectiveSampleRate()) {
		return false
	}
	return true
}

// buildCuts computes the effective windows for one deployment and splits
// them into day-aligned cut requests.
func (l *CutList) buildCuts(d models.StationDeployment) []models.CutRequest {
	var cuts []models.CutRequest
	for _, s := range l.candidateStarts(d) {
		s += l.filter.Offset
		e, ok := l.windowEnd(d, s)
		if !ok {
			continue
		}
		if l.filter.WithinDeployPickup && !(s >= d.Deploy && e <= d.Pickup) {
			continue
		}
		if e-s <= 0 {
			continue
		}
		for _, seg := range daySegments(s, e) {
			cuts = append(cuts, models.CutRequest{
				Network:              l.filter.Network,
				StationID:            d.StationID,
				SeedStation:          d.SeedStation,
				DASID:                d.DASID,
				Channel:              d.Channel,
				SeedChannel:          d.SeedChannel,
				Start:                seg.start,
				End:                  seg.end,
				SampleRate:           d.SampleRate,
				SampleRateMultiplier: d.SampleRateMultiplier,
				ApplyTimeCorrection:  l.filter.ApplyTimeCorrection,
				Location:             d.Location,
				Latitude:             d.Latitude,
				Longitude:            d.Longitude,
			})
		}
	}
	return cuts
}

// candidateStarts resolves the window start(s) for one deployment:
// event origin times under event association, the clamped explicit start,
// or the deploy epoch. A nil result skips the deployment.
func (l *CutList) candidateStarts(d models.StationDeployment) []float64 {
	if l.eventAssoc {
		var starts []float64
		for _, ev := range l.selectedEvents() {
			starts = append(starts, ev.Origin)
		}
		return starts
	}
	if l.start != nil {
		s := *l.start
		if s > d.Pickup {
			return nil // requested window begins after pickup
		}
		if s < d.Deploy {
			s = d.Deploy
		}
		return []float64{s}
	}
	return []float64{d.Deploy}
}

// selectedEvents returns the shot line's events limited to the requested
// ids. Ids absent from the line are silently skipped.
func (l *CutList) selectedEvents() []models.EventRecord {
	if len(l.filter.EventIDs) == 0 {
		return l.events
	}
	var out []models.EventRecord
	for _, ev := range l.events {
		if slices.Contains(l.filter.EventIDs, ev.ID) {
			out = append(out, ev)
		}
	}
	return out
}

// windowEnd resolves the window end for one candidate start: fixed length,
// then explicit stop clamped to pickup, then the pickup epoch.
func (l *CutList) windowEnd(d models.StationDeployment, start float64) (float64, bool) {
	if l.filter.Length > 0 {
		return start + l.filter.Length, true
	}
	if l.stop != nil {
		if *l.stop < d.Deploy {
			return 0, false // requested window ends before deploy
		}
		e := *l.stop
		if e > d.Pickup {
			e = d.Pickup
		}
		return e, true
	}
	return d.Pickup, true
}

type segment struct {
	start, end float64
}

// daySegments splits a window longer than one day on day-of-year
// boundaries. Segments lie end to end with no gap and no overlap; an empty
// trailing segment is dropped. Windows of one day or less pass through
// whole even when they straddle a boundary.
func daySegments(start, end float64) []segment {
	if end-start <= timeutil.SecondsPerDay {
		return []segment{{start, end}}
	}
	var segs []segment
	t := start
	for t < end {
		_, until := timeutil.NextDayBoundary(t)
		segEnd := t + until
		if segEnd > end {
			segEnd = end
		}
		if segEnd > t {
			segs = append(segs, segment{t, segEnd})
		}
		t = segEnd
	}
	return segs
}

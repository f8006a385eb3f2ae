package service

import (
	"fmt"
	"time"

	"github.com/seisnet/waveform-backend-go/internal/extract"
	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/observability"
	"github.com/seisnet/waveform-backend-go/internal/repository"
	"github.com/seisnet/waveform-backend-go/internal/spatial"
)

// WaveformService drives the extraction pipeline: cut-list builder,
// restriction resolution, and trace assembly over one archive handle.
type WaveformService struct {
	archive      *repository.Archive
	restrictions []models.RestrictedInterval
	network      string
	metrics      *observability.Metrics
}

// NewWaveformService creates a new waveform service
func NewWaveformService(archive *repository.Archive, restrictions []models.RestrictedInterval, network string, metrics *observability.Metrics) *WaveformService {
	return &WaveformService{
		archive:      archive,
		restrictions: restrictions,
		network:      network,
		metrics:      metrics,
	}
}

// ExtractTraces runs one extraction request to completion. An empty trace
// list with a nil error is a valid result. The default failure policy is
// abort: the first per-request error ends the run.
func (s *WaveformService) ExtractTraces(filter models.CutFilter, includeRestricted bool) (*models.TracesResponse, error) {
	began := time.Now()

	if filter.Network == "" {
		filter.Network = s.network
	}

	list, err := extract.NewCutList(s.archive, filter)
	if err != nil {
		return nil, err
	}

	opts := extract.AssembleOptions{
		Restrictions:      s.restrictions,
		IncludeRestricted: includeRestricted,
		Decimation:        filter.Decimation,
	}
	if filter.ReductionVelocity > 0 {
		v := filter.ReductionVelocity
		opts.ReductionVelocity = &v
		if filter.StationSpacing > 0 {
			sp := filter.StationSpacing
			opts.StationSpacing = &sp
		}
		offsets, err := s.offsetDistances(filter)
		if err != nil {
			return nil, err
		}
		opts.Offsets = offsets
	}
	assembler := extract.NewAssembler(s.archive, opts)

	traces := []models.OutputTrace{}
	for list.Next() {
		s.metrics.CutRequests.Inc()
		out, err := assembler.Assemble(list.Cut())
		if err != nil {
			return nil, err
		}
		for _, tr := range out {
			s.metrics.SamplesRead.Add(float64(tr.NSamples))
		}
		s.metrics.TracesAssembled.Add(float64(len(out)))
		traces = append(traces, out...)
	}
	if err := list.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cut list: %w", err)
	}

	if len(traces) == 0 {
		s.metrics.EmptyResults.Inc()
	}
	s.metrics.ExtractLatency.Observe(time.Since(began).Seconds())

	return &models.TracesResponse{Traces: traces, Count: len(traces)}, nil
}

// offsetDistances builds the per-station source-receiver offsets for a
// reduction-velocity run. An offset-table row wins; a great-circle
// distance from the shot origin is the geometric fallback. Without a shot
// line there is no source position, and the assembler falls back to
// station-spacing arithmetic or reports the missing offset.
func (s *WaveformService) offsetDistances(filter models.CutFilter) (map[string]float64, error) {
	if filter.ShotLine == "" {
		return nil, nil
	}

	events, err := s.archive.Events(filter.ShotLine)
	if err != nil {
		return nil, fmt.Errorf("failed to read shot line %s: %w", filter.ShotLine, err)
	}
	ev, ok := pickEvent(events, filter.EventIDs)
	if !ok {
		return nil, nil
	}

	arrays, err := s.archive.ArrayNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list arrays: %w", err)
	}

	offsets := make(map[string]float64)
	for _, array := range arrays {
		deps, err := s.archive.Deployments(array)
		if err != nil {
			return nil, fmt.Errorf("failed to read array %s: %w", array, err)
		}
		for _, d := range deps {
			if _, seen := offsets[d.StationID]; seen {
				continue
			}
			meters, found, err := s.archive.Offset(array, filter.ShotLine, ev.ID, d.StationID)
			if err != nil {
				return nil, err
			}
			if found {
				offsets[d.StationID] = meters
				continue
			}
			offsets[d.StationID] = spatial.GreatCircleDistance(ev.Latitude, ev.Longitude, d.Latitude, d.Longitude)
		}
	}
	return offsets, nil
}

func pickEvent(events []models.EventRecord, ids []string) (models.EventRecord, bool) {
	if len(ids) == 0 {
		if len(events) == 0 {
			return models.EventRecord{}, false
		}
		return events[0], true
	}
	for _, ev := range events {
		for _, id := range ids {
			if ev.ID == id {
				return ev, true
			}
		}
	}
	return models.EventRecord{}, false
}

package service

import (
	"fmt"
	"slices"

	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/repository"
	"github.com/seisnet/waveform-backend-go/internal/timeutil"
)

// EventService exposes shot/event metadata.
type EventService struct {
	archive *repository.Archive
}

// NewEventService creates a new event service
func NewEventService(archive *repository.Archive) *EventService {
	return &EventService{archive: archive}
}

// ListShotLines returns the archive's shot line names.
func (s *EventService) ListShotLines() ([]string, error) {
	lines, err := s.archive.ShotLines()
	if err != nil {
		return nil, fmt.Errorf("failed to list shot lines: %w", err)
	}
	return lines, nil
}

// ListEvents returns events matching the filter. Id and time filters
// narrow the result; a malformed time string fails the call.
func (s *EventService) ListEvents(filter models.EventFilter) ([]models.EventRecord, error) {
	var start, stop *float64
	if filter.Start != "" {
		epoch, err := timeutil.ParseEpoch(filter.Start)
		if err != nil {
			return nil, err
		}
		start = &epoch
	}
	if filter.Stop != "" {
		epoch, err := timeutil.ParseEpoch(filter.Stop)
		if err != nil {
			return nil, err
		}
		stop = &epoch
	}

	events, err := s.archive.Events(filter.ShotLine)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	var out []models.EventRecord
	for _, ev := range events {
		if len(filter.EventIDs) > 0 && !slices.Contains(filter.EventIDs, ev.ID) {
			continue
		}
		if start != nil && ev.Origin < *start {
			continue
		}
		if stop != nil && ev.Origin > *stop {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

package service

import (
	"fmt"

	"github.com/seisnet/waveform-backend-go/internal/match"
	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/repository"
)

// StationService exposes station metadata for StationXML/KML writers.
type StationService struct {
	archive *repository.Archive
}

// NewStationService creates a new station service
func NewStationService(archive *repository.Archive) *StationService {
	return &StationService{archive: archive}
}

// ListArrays returns the archive's array names.
func (s *StationService) ListArrays() ([]string, error) {
	names, err := s.archive.ArrayNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list arrays: %w", err)
	}
	return names, nil
}

// ListStations returns stations grouped by array, with their channels, for
// every array passing the filter. Stations keep archive-native order.
func (s *StationService) ListStations(filter models.StationFilter) ([]models.ArrayInfo, error) {
	names, err := s.archive.ArrayNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list arrays: %w", err)
	}

	var arrays []models.ArrayInfo
	for _, name := range names {
		if len(filter.Arrays) > 0 && !match.Any(filter.Arrays, name) {
			continue
		}
		deps, err := s.archive.Deployments(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read array %s: %w", name, err)
		}

		info := models.ArrayInfo{Name: name}
		byID := make(map[string]int)
		for _, d := range deps {
			if len(filter.Stations) > 0 && !match.Any(filter.Stations, d.SeedStation) {
				continue
			}
			if len(filter.Channels) > 0 && !match.Any(filter.Channels, d.SeedChannel) {
				continue
			}

			idx, ok := byID[d.StationID]
			if !ok {
				idx = len(info.Stations)
				byID[d.StationID] = idx
				info.Stations = append(info.Stations, models.StationInfo{
					StationID:   d.StationID,
					SeedStation: d.SeedStation,
					Latitude:    d.Latitude,
					Longitude:   d.Longitude,
				})
			}
			info.Stations[idx].Channels = append(info.Stations[idx].Channels, models.ChannelInfo{
				SeedChannel: d.SeedChannel,
				Channel:     d.Channel,
				Location:    d.Location,
				DASID:       d.DASID,
				SampleRate:  d.EffectiveSampleRate(),
				Deploy:      d.Deploy,
				Pickup:      d.Pickup,
			})
		}
		if len(info.Stations) > 0 {
			arrays = append(arrays, info)
		}
	}
	return arrays, nil
}

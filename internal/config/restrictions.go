package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/timeutil"
)

type restrictionEntry struct {
	Network  string `yaml:"network"`
	Station  string `yaml:"station"`
	Location string `yaml:"location"`
	Channel  string `yaml:"channel"`
	Start    string `yaml:"start"` // YYYY:DOY:HH:MM:SS.ffffff or ISO-8601
	End      string `yaml:"end"`
}

type restrictionsFile struct {
	Restrictions []restrictionEntry `yaml:"restrictions"`
}

// LoadRestrictions reads the externally supplied restricted-interval list.
// An empty path means no restrictions.
func LoadRestrictions(path string) ([]models.RestrictedInterval, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read restrictions %s: %w", path, err)
	}

	var file restrictionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse restrictions %s: %w", path, err)
	}

	var out []models.RestrictedInterval
	for i, e := range file.Restrictions {
		start, err := timeutil.ParseEpoch(e.Start)
		if err != nil {
			return nil, fmt.Errorf("restriction %d: %w", i, err)
		}
		end, err := timeutil.ParseEpoch(e.End)
		if err != nil {
			return nil, fmt.Errorf("restriction %d: %w", i, err)
		}
		if end <= start {
			return nil, fmt.Errorf("restriction %d: end %s not after start %s", i, e.End, e.Start)
		}
		out = append(out, models.RestrictedInterval{
			Network:  e.Network,
			Station:  e.Station,
			Location: e.Location,
			Channel:  e.Channel,
			Start:    start,
			End:      end,
		})
	}
	return out, nil
}

package extract

import (
	"errors"
	"math"
	"testing"

	"github.com/seisnet/waveform-backend-go/internal/models"
)

func testDeployment() models.StationDeployment {
	return models.StationDeployment{
		StationID:            "1",
		SeedStation:          "STA1",
		Array:                "001",
		Channel:              1,
		SeedChannel:          "DPZ",
		DASID:                "DAS001",
		Location:             "01",
		Latitude:             34.5,
		Longitude:            -106.2,
		SampleRate:           100,
		SampleRateMultiplier: 1,
		Deploy:               0,
		Pickup:               200000,
	}
}

func singleStationArchive() *fakeArchive {
	return &fakeArchive{
		deployments: map[string][]models.StationDeployment{
			"001": {testDeployment()},
		},
	}
}

func collect(t *testing.T, l *CutList) []models.CutRequest {
	t.Helper()
	var cuts []models.CutRequest
	for l.Next() {
		cuts = append(cuts, l.Cut())
	}
	if err := l.Err(); err != nil {
		t.Fatalf("cut list iteration failed: %v", err)
	}
	return cuts
}

func TestCutListTwoDayWindowSplitsIntoThree(t *testing.T) {
	l, err := NewCutList(singleStationArchive(), models.CutFilter{
		Network: "XX",
		Start:   "1970:001:00:16:40", // epoch 1000
		Length:  172800,
	})
	if err != nil {
		t.Fatal(err)
	}

	cuts := collect(t, l)
	if len(cuts) != 3 {
		t.Fatalf("expected 3 cut requests, got %d: %+v", len(cuts), cuts)
	}

	// Segments lie end to end with no gap and no overlap.
	if cuts[0].Start != 1000 || cuts[0].End != 86400 {
		t.Fatalf("segment 0 = [%f, %f]", cuts[0].Start, cuts[0].End)
	}
	if cuts[1].Start != cuts[0].End || cuts[1].End != 172800 {
		t.Fatalf("segment 1 = [%f, %f]", cuts[1].Start, cuts[1].End)
	}
	if cuts[2].Start != cuts[1].End || cuts[2].End != 173800 {
		t.Fatalf("segment 2 = [%f, %f]", cuts[2].Start, cuts[2].End)
	}
	for _, cut := range cuts {
		if cut.Span() > 86400 {
			t.Fatalf("segment longer than one day: %+v", cut)
		}
		if cut.DASID != "DAS001" || cut.SeedChannel != "DPZ" || cut.SampleRate != 100 {
			t.Fatalf("deployment metadata not carried: %+v", cut)
		}
	}
}

func TestCutListDaySegmentationCoverage(t *testing.T) {
	start, stop := 50000.0, 50000.0+5*86400+12345
	segs := daySegments(start, stop)
	if len(segs) < 2 {
		t.Fatalf("expected multiple segments, got %d", len(segs))
	}
	if segs[0].start != start {
		t.Fatalf("first segment starts at %f, want %f", segs[0].start, start)
	}
	if segs[len(segs)-1].end != stop {
		t.Fatalf("last segment ends at %f, want %f", segs[len(segs)-1].end, stop)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].start != segs[i-1].end {
			t.Fatalf("gap or overlap between segments %d and %d", i-1, i)
		}
	}
	for _, s := range segs {
		if s.end-s.start > 86400 {
			t.Fatalf("segment exceeds one day: [%f, %f]", s.start, s.end)
		}
	}
}

func TestCutListShortWindowNotSplit(t *testing.T) {
	// A window under one day passes through whole even across midnight.
	segs := daySegments(86000, 87000)
	if len(segs) != 1 || segs[0].start != 86000 || segs[0].end != 87000 {
		t.Fatalf("short window should not split: %+v", segs)
	}
}

func TestCutListClampsStartToDeploy(t *testing.T) {
	archive := &fakeArchive{
		deployments: map[string][]models.StationDeployment{
			"001": {func() models.StationDeployment {
				d := testDeployment()
				d.Deploy = 1000
				d.Pickup = 5000
				return d
			}()},
		},
	}

	l, err := NewCutList(archive, models.CutFilter{
		Network: "XX",
		Start:   "1970:001:00:08:20", // epoch 500, before deploy
	})
	if err != nil {
		t.Fatal(err)
	}
	cuts := collect(t, l)
	if len(cuts) != 1 {
		t.Fatalf("expected 1 cut, got %d", len(cuts))
	}
	if cuts[0].Start != 1000 || cuts[0].End != 5000 {
		t.Fatalf("cut = [%f, %f], want [1000, 5000]", cuts[0].Start, cuts[0].End)
	}
}

func TestCutListSkipsStartAfterPickup(t *testing.T) {
	archive := &fakeArchive{
		deployments: map[string][]models.StationDeployment{
			"001": {func() models.StationDeployment {
				d := testDeployment()
				d.Deploy = 1000
				d.Pickup = 5000
				return d
			}()},
		},
	}

	l, err := NewCutList(archive, models.CutFilter{
		Network: "XX",
		Start:   "1970:001:01:40:00", // epoch 6000, after pickup
	})
	if err != nil {
		t.Fatal(err)
	}
	if cuts := collect(t, l); len(cuts) != 0 {
		t.Fatalf("expected no cuts, got %+v", cuts)
	}
}

func TestCutListDefaultsToDeployPickupWindow(t *testing.T) {
	l, err := NewCutList(singleStationArchive(), models.CutFilter{Network: "XX"})
	if err != nil {
		t.Fatal(err)
	}
	cuts := collect(t, l)
	// 200000 seconds of deployment split on day boundaries.
	if len(cuts) != 3 {
		t.Fatalf("expected 3 cuts, got %d", len(cuts))
	}
	if cuts[0].Start != 0 || cuts[2].End != 200000 {
		t.Fatalf("window = [%f, %f], want [0, 200000]", cuts[0].Start, cuts[2].End)
	}
}

func TestCutListSelectionFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter models.CutFilter
		want   int
	}{
		{"station glob match", models.CutFilter{Stations: []string{"STA*"}}, 3},
		{"station glob mismatch", models.CutFilter{Stations: []string{"XYZ*"}}, 0},
		{"station id match", models.CutFilter{StationIDs: []string{"1"}}, 3},
		{"station id mismatch", models.CutFilter{StationIDs: []string{"2"}}, 0},
		{"channel match", models.CutFilter{Channels: []string{"DP?"}}, 3},
		{"channel mismatch", models.CutFilter{Channels: []string{"BH?"}}, 0},
		{"component match", models.CutFilter{Components: []string{"1"}}, 3},
		{"component mismatch", models.CutFilter{Components: []string{"2"}}, 0},
		{"das match", models.CutFilter{DASIDs: []string{"DAS001"}}, 3},
		{"das mismatch", models.CutFilter{DASIDs: []string{"DAS999"}}, 0},
		{"sample rate match", models.CutFilter{SampleRates: []float64{100}}, 3},
		{"sample rate mismatch", models.CutFilter{SampleRates: []float64{40}}, 0},
		{"array mismatch", models.CutFilter{Arrays: []string{"002"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Network = "XX"
			l, err := NewCutList(singleStationArchive(), tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if cuts := collect(t, l); len(cuts) != tt.want {
				t.Fatalf("got %d cuts, want %d", len(cuts), tt.want)
			}
		})
	}
}

func TestCutListEventAssociation(t *testing.T) {
	archive := singleStationArchive()
	archive.events = map[string][]models.EventRecord{
		"101": {
			{ID: "5001", ShotLine: "101", Origin: 40000.5, Latitude: 34, Longitude: -106},
			{ID: "5002", ShotLine: "101", Origin: 90000, Latitude: 34, Longitude: -106},
		},
	}

	l, err := NewCutList(archive, models.CutFilter{
		Network:  "XX",
		ShotLine: "101",
		EventIDs: []string{"5001", "9999"}, // missing id silently skipped
		Length:   60,
	})
	if err != nil {
		t.Fatal(err)
	}
	cuts := collect(t, l)
	if len(cuts) != 1 {
		t.Fatalf("expected 1 cut, got %d: %+v", len(cuts), cuts)
	}
	if math.Abs(cuts[0].Start-40000.5) > 1e-9 || math.Abs(cuts[0].End-40060.5) > 1e-9 {
		t.Fatalf("cut = [%f, %f], want [40000.5, 40060.5]", cuts[0].Start, cuts[0].End)
	}
}

func TestCutListOffsetApplied(t *testing.T) {
	l, err := NewCutList(singleStationArchive(), models.CutFilter{
		Network: "XX",
		Start:   "1970:001:00:16:40", // epoch 1000
		Length:  100,
		Offset:  30,
	})
	if err != nil {
		t.Fatal(err)
	}
	cuts := collect(t, l)
	if len(cuts) != 1 || cuts[0].Start != 1030 || cuts[0].End != 1130 {
		t.Fatalf("offset not applied: %+v", cuts)
	}
}

func TestCutListStrictWindow(t *testing.T) {
	// Length pushes the end past pickup; the strict flag drops the
	// candidate instead of emitting it.
	l, err := NewCutList(singleStationArchive(), models.CutFilter{
		Network:            "XX",
		Start:              "1970:003:00:00:00", // epoch 172800
		Length:             86400,               // ends at 259200, after pickup 200000
		WithinDeployPickup: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if cuts := collect(t, l); len(cuts) != 0 {
		t.Fatalf("strict window should drop the candidate, got %+v", cuts)
	}
}

func TestCutListConfigErrors(t *testing.T) {
	archive := singleStationArchive()
	archive.events = map[string][]models.EventRecord{"101": {}}

	tests := []struct {
		name   string
		filter models.CutFilter
	}{
		{"bad network code", models.CutFilter{Network: "TOOLONG"}},
		{"empty network code", models.CutFilter{}},
		{"event ids without shot line", models.CutFilter{Network: "XX", EventIDs: []string{"5001"}}},
		{"unknown shot line", models.CutFilter{Network: "XX", ShotLine: "999"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCutList(archive, tt.filter)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("got %v, want *ConfigError", err)
			}
		})
	}
}

func TestCutListMalformedStartTime(t *testing.T) {
	_, err := NewCutList(singleStationArchive(), models.CutFilter{Network: "XX", Start: "yesterday"})
	if err == nil {
		t.Fatal("malformed start time should fail")
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		t.Fatal("time parse failure must not be reported as a config error")
	}
}

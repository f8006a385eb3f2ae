package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRestrictions(t *testing.T) {
	path := writeFile(t, "restrictions.yaml", `
restrictions:
  - network: XX
    station: STA1
    location: "01"
    channel: DPZ
    start: "1970:001:00:16:40"
    end: "1970:001:00:33:20"
`)

	got, err := LoadRestrictions(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 restriction, got %d", len(got))
	}
	x := got[0]
	if x.Network != "XX" || x.Station != "STA1" || x.Location != "01" || x.Channel != "DPZ" {
		t.Fatalf("unexpected identity: %+v", x)
	}
	if x.Start != 1000 || x.End != 2000 {
		t.Fatalf("interval = [%f, %f], want [1000, 2000]", x.Start, x.End)
	}
}

func TestLoadRestrictionsEmptyPath(t *testing.T) {
	got, err := LoadRestrictions("")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("empty path must mean no restrictions, got %+v", got)
	}
}

func TestLoadRestrictionsRejectsBadInterval(t *testing.T) {
	path := writeFile(t, "restrictions.yaml", `
restrictions:
  - network: XX
    station: STA1
    location: "01"
    channel: DPZ
    start: "1970:001:00:33:20"
    end: "1970:001:00:16:40"
`)
	if _, err := LoadRestrictions(path); err == nil {
		t.Fatal("end before start must be rejected")
	}
}

func TestLoadRestrictionsRejectsBadTime(t *testing.T) {
	path := writeFile(t, "restrictions.yaml", `
restrictions:
  - network: XX
    station: STA1
    location: "01"
    channel: DPZ
    start: "soon"
    end: "1970:001:00:16:40"
`)
	if _, err := LoadRestrictions(path); err == nil {
		t.Fatal("malformed time must be rejected")
	}
}

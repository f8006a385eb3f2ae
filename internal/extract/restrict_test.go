package extract

import (
	"testing"

	"github.com/seisnet/waveform-backend-go/internal/models"
)

func cutReq(start, end float64) models.CutRequest {
	return models.CutRequest{
		Network:     "XX",
		SeedStation: "STA1",
		Location:    "01",
		SeedChannel: "DPZ",
		Start:       start,
		End:         end,
	}
}

func restriction(start, end float64) models.RestrictedInterval {
	return models.RestrictedInterval{
		Network:  "XX",
		Station:  "STA1",
		Location: "01",
		Channel:  "DPZ",
		Start:    start,
		End:      end,
	}
}

func TestResolveInteriorSplit(t *testing.T) {
	// The union of the sub-requests plus the restricted span reconstructs
	// the original span: [1000,2000] minus [1500,1600] is [1000,1499] and
	// [1601,2000].
	out := Resolve([]models.CutRequest{cutReq(1000, 2000)}, []models.RestrictedInterval{restriction(1500, 1600)})
	if len(out) != 2 {
		t.Fatalf("expected 2 sub-requests, got %d: %+v", len(out), out)
	}
	if out[0].Start != 1000 || out[0].End != 1499 {
		t.Fatalf("left sub-request = [%f, %f], want [1000, 1499]", out[0].Start, out[0].End)
	}
	if out[1].Start != 1601 || out[1].End != 2000 {
		t.Fatalf("right sub-request = [%f, %f], want [1601, 2000]", out[1].Start, out[1].End)
	}
}

func TestResolveFullContainmentDrops(t *testing.T) {
	out := Resolve([]models.CutRequest{cutReq(1000, 1100)}, []models.RestrictedInterval{restriction(900, 1200)})
	if len(out) != 0 {
		t.Fatalf("fully restricted request should be dropped, got %+v", out)
	}
}

func TestResolveExactContainmentDrops(t *testing.T) {
	out := Resolve([]models.CutRequest{cutReq(1000, 1100)}, []models.RestrictedInterval{restriction(1000, 1100)})
	if len(out) != 0 {
		t.Fatalf("exactly covered request should be dropped, got %+v", out)
	}
}

func TestResolveTailTruncation(t *testing.T) {
	out := Resolve([]models.CutRequest{cutReq(1000, 2000)}, []models.RestrictedInterval{restriction(1800, 2500)})
	if len(out) != 1 {
		t.Fatalf("expected 1 sub-request, got %d", len(out))
	}
	if out[0].Start != 1000 || out[0].End != 1799 {
		t.Fatalf("truncated request = [%f, %f], want [1000, 1799]", out[0].Start, out[0].End)
	}
}

func TestResolveHeadTruncation(t *testing.T) {
	out := Resolve([]models.CutRequest{cutReq(1000, 2000)}, []models.RestrictedInterval{restriction(500, 1200)})
	if len(out) != 1 {
		t.Fatalf("expected 1 sub-request, got %d", len(out))
	}
	if out[0].Start != 1201 || out[0].End != 2000 {
		t.Fatalf("truncated request = [%f, %f], want [1201, 2000]", out[0].Start, out[0].End)
	}
}

func TestResolveMultipleRestrictions(t *testing.T) {
	restrictions := []models.RestrictedInterval{
		restriction(1200, 1300),
		restriction(1700, 1800),
	}
	out := Resolve([]models.CutRequest{cutReq(1000, 2000)}, restrictions)
	if len(out) != 3 {
		t.Fatalf("expected 3 sub-requests, got %d: %+v", len(out), out)
	}
	want := [][2]float64{{1000, 1199}, {1301, 1699}, {1801, 2000}}
	for i, w := range want {
		if out[i].Start != w[0] || out[i].End != w[1] {
			t.Fatalf("sub-request %d = [%f, %f], want [%f, %f]", i, out[i].Start, out[i].End, w[0], w[1])
		}
	}
}

func TestResolveNoRestrictionsIsIdentity(t *testing.T) {
	reqs := []models.CutRequest{cutReq(1000, 2000), cutReq(3000, 4000)}
	out := Resolve(reqs, nil)
	if len(out) != 2 {
		t.Fatalf("expected identity, got %d requests", len(out))
	}
	// Same backing array: the common no-restriction case must not copy.
	if &out[0] != &reqs[0] {
		t.Fatal("identity resolve should return the input slice unchanged")
	}
}

func TestResolveIgnoresOtherIdentities(t *testing.T) {
	x := restriction(1500, 1600)
	x.Station = "OTHER"
	out := Resolve([]models.CutRequest{cutReq(1000, 2000)}, []models.RestrictedInterval{x})
	if len(out) != 1 || out[0].Start != 1000 || out[0].End != 2000 {
		t.Fatalf("restriction for another station must not apply: %+v", out)
	}
}

func TestResolveDropsSliversAtEdges(t *testing.T) {
	// Restriction reaching within one trim unit of the request edge leaves
	// a zero-length remainder, which must be dropped, not emitted.
	out := Resolve([]models.CutRequest{cutReq(1000, 2000)}, []models.RestrictedInterval{restriction(1001, 2000)})
	if len(out) != 0 {
		t.Fatalf("zero-length remainder should be dropped, got %+v", out)
	}
}

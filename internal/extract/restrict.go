package extract

import "github.com/seisnet/waveform-backend-go/internal/models"

// trimUnit is the gap left around a restricted span when truncating or
// splitting a request. Restriction boundaries in the archive are whole
// seconds.
const trimUnit = 1.0

// Resolve subtracts every matching restricted interval from every request,
// returning only the non-restricted sub-requests. With an empty restriction
// list it is the identity and performs no copying. Requests are values; the
// inputs are never mutated.
func Resolve(requests []models.CutRequest, restrictions []models.RestrictedInterval) []models.CutRequest {
	if len(restrictions) == 0 {
		return requests
	}
	var out []models.CutRequest
	for _, r := range requests {
		out = append(out, subtract(r, restrictions)...)
	}
	return out
}

// subtract recursively removes restricted spans from one request. Each
// truncation or split re-runs against the full restriction list: a
// shortened request may still overlap a restriction it previously cleared
// on a different span.
func subtract(r models.CutRequest, restrictions []models.RestrictedInterval) []models.CutRequest {
	if r.End-r.Start <= 0 {
		return nil
	}
	for _, x := range restrictions {
		if !x.Covers(r) {
			continue
		}
		if x.End < r.Start || r.End < x.Start {
			continue // no overlap with this restriction
		}
		switch {
		case x.Start <= r.Start && r.End <= x.End:
			// Restriction covers the whole request.
			return nil
		case x.Start <= r.Start:
			// Head of the request is restricted.
			head := r
			head.Start = x.End + trimUnit
			return subtract(head, restrictions)
		case r.End <= x.End:
			// Tail of the request is restricted.
			tail := r
			tail.End = x.Start - trimUnit
			return subtract(tail, restrictions)
		default:
			// Restriction strictly inside the request: split around it.
			left, right := r, r
			left.End = x.Start - trimUnit
			right.Start = x.End + trimUnit
			return append(subtract(left, restrictions), subtract(right, restrictions)...)
		}
	}
	return []models.CutRequest{r}
}

package extract

import "math"

// CorrectionParams carries the inputs for one time-correction computation.
// OffsetMeters is the precomputed source-receiver offset when the archive
// has one; StationSpacing plus SequenceIndex is the synthetic fallback.
type CorrectionParams struct {
	DASID             string
	StationID         string
	Channel           int
	OffsetMeters      *float64
	StationSpacing    *float64 // meters between adjacent stations
	SequenceIndex     int      // position of the station in iteration order
	ReductionVelocity *float64 // km/s
	ApplyClockDrift   bool
	Start             float64
	End               float64
}

// CorrectionResult reports the composed time correction in milliseconds.
// ClockDriftMS is always populated for caller inspection even when the
// drift term is excluded from the total.
type CorrectionResult struct {
	TotalMS             float64
	ClockDriftMS        float64
	ReductionVelocityMS float64
}

// Corrector computes the total time correction applied to trace header
// times: the reduction-velocity term from the source-receiver offset plus
// the clock-drift term from the archive's per-das clock model.
type Corrector struct {
	archive ArchiveReader
}

// NewCorrector creates a corrector backed by the given archive reader.
func NewCorrector(archive ArchiveReader) *Corrector {
	return &Corrector{archive: archive}
}

// Compute returns the composed correction for one cut. A requested
// reduction velocity without any usable offset yields a *NoOffsetError.
func (c *Corrector) Compute(p CorrectionParams) (CorrectionResult, error) {
	var res CorrectionResult

	if p.ReductionVelocity != nil && *p.ReductionVelocity > 0 {
		offset, ok := effectiveOffset(p)
		if !ok {
			return res, &NoOffsetError{StationID: p.StationID, DASID: p.DASID}
		}
		velocityMPS := *p.ReductionVelocity * 1000 // km/s -> m/s
		res.ReductionVelocityMS = -1000 * math.Abs(offset/velocityMPS)
	}

	drift, err := c.archive.ClockCorrection(p.DASID, p.Start, p.End)
	if err != nil {
		return res, &ArchiveReadError{DASID: p.DASID, Op: "clock model", Err: err}
	}
	res.ClockDriftMS = drift

	res.TotalMS = res.ReductionVelocityMS
	if p.ApplyClockDrift {
		res.TotalMS += res.ClockDriftMS
	}
	return res, nil
}

// effectiveOffset prefers a true offset-table distance; station spacing
// times the station's sequence index is only a fallback when no offset row
// exists.
func effectiveOffset(p CorrectionParams) (float64, bool) {
	if p.OffsetMeters != nil {
		return *p.OffsetMeters, true
	}
	if p.StationSpacing != nil && *p.StationSpacing > 0 {
		return *p.StationSpacing * float64(p.SequenceIndex), true
	}
	return 0, false
}

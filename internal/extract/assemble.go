package extract

import (
	"log"

	"github.com/seisnet/waveform-backend-go/internal/models"
)

// AssembleOptions configures a run of the trace assembler. Offsets carries
// precomputed source-receiver distances keyed by station id; it may be nil
// when no reduction velocity was requested.
type AssembleOptions struct {
	Restrictions      []models.RestrictedInterval
	IncludeRestricted bool // authenticated callers receive restricted spans
	ReductionVelocity *float64
	StationSpacing    *float64
	Offsets           map[string]float64
	Decimation        int
}

// Assembler turns cut requests into output traces by fetching raw samples
// from the archive reader and applying time corrections to header times.
// Sample values are never changed by a correction.
type Assembler struct {
	archive   ArchiveReader
	corrector *Corrector
	opts      AssembleOptions
	seq       map[string]int // station id -> first-seen sequence index
}

// NewAssembler creates an assembler over one archive handle.
func NewAssembler(archive ArchiveReader, opts AssembleOptions) *Assembler {
	return &Assembler{
		archive:   archive,
		corrector: NewCorrector(archive),
		opts:      opts,
		seq:       make(map[string]int),
	}
}

// Assemble resolves restrictions for one request and produces zero or more
// traces, one per non-empty sub-request. An empty result is valid: it means
// no data, not an error.
func (a *Assembler) Assemble(req models.CutRequest) ([]models.OutputTrace, error) {
	subs := []models.CutRequest{req}
	if !a.opts.IncludeRestricted {
		subs = Resolve(subs, a.opts.Restrictions)
	}

	var traces []models.OutputTrace
	for _, sub := range subs {
		out, err := a.assembleOne(sub)
		if err != nil {
			return nil, err
		}
		traces = append(traces, out...)
	}
	return traces, nil
}

func (a *Assembler) assembleOne(sub models.CutRequest) ([]models.OutputTrace, error) {
	segs, err := a.archive.Cut(sub.DASID, sub.Channel, sub.Start, sub.End)
	if err != nil {
		return nil, &ArchiveReadError{DASID: sub.DASID, Op: "cut", Err: err}
	}

	var corrMS float64
	if sub.ApplyTimeCorrection || a.reductionRequested() {
		res, err := a.corrector.Compute(a.correctionParams(sub))
		if err != nil {
			return nil, err
		}
		corrMS = res.TotalMS
	}

	var traces []models.OutputTrace
	for _, seg := range segs {
		if seg.NSamples == 0 || len(seg.Data) == 0 {
			continue // empty cut, silently skipped
		}
		if len(seg.Data) != seg.NSamples {
			log.Printf("dropping malformed segment for das %s channel %d: %d samples declared, %d present",
				sub.DASID, sub.Channel, seg.NSamples, len(seg.Data))
			continue
		}

		samples := seg.Data
		rate := seg.SampleRate
		if a.opts.Decimation > 1 {
			samples = decimate(samples, a.opts.Decimation)
			rate /= float64(a.opts.Decimation)
		}

		traces = append(traces, models.OutputTrace{
			Network:          sub.Network,
			Station:          sub.SeedStation,
			Location:         sub.Location,
			Channel:          sub.SeedChannel,
			Start:            seg.Start + corrMS/1000.0,
			SampleRate:       rate,
			Samples:          samples,
			NSamples:         len(samples),
			Latitude:         sub.Latitude,
			Longitude:        sub.Longitude,
			TimeCorrectionMS: corrMS,
		})
	}
	return traces, nil
}

func (a *Assembler) reductionRequested() bool {
	return a.opts.ReductionVelocity != nil && *a.opts.ReductionVelocity > 0
}

// correctionParams assembles the per-station correction inputs. Sequence
// indices follow first-seen iteration order, which is the cut-list builder's
// station order.
func (a *Assembler) correctionParams(sub models.CutRequest) CorrectionParams {
	idx, ok := a.seq[sub.StationID]
	if !ok {
		idx = len(a.seq)
		a.seq[sub.StationID] = idx
	}

	p := CorrectionParams{
		DASID:           sub.DASID,
		StationID:       sub.StationID,
		Channel:         sub.Channel,
		StationSpacing:  a.opts.StationSpacing,
		SequenceIndex:   idx,
		ApplyClockDrift: sub.ApplyTimeCorrection,
		Start:           sub.Start,
		End:             sub.End,
	}
	if a.reductionRequested() {
		p.ReductionVelocity = a.opts.ReductionVelocity
	}
	if off, ok := a.opts.Offsets[sub.StationID]; ok {
		p.OffsetMeters = &off
	}
	return p
}

// decimate keeps every factor-th sample, in place over the original
// backing array.
func decimate(samples []int32, factor int) []int32 {
	n := 0
	for i := 0; i < len(samples); i += factor {
		samples[n] = samples[i]
		n++
	}
	return samples[:n]
}

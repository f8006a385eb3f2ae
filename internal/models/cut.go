package models

// CutRequest is the unit of work produced by the cut-list builder: one
// channel of one deployment over one time span of at most one day. It is a
// value type; equality is structural.
type CutRequest struct {
	Network              string  `json:"network"`
	StationID            string  `json:"stationId"`
	SeedStation          string  `json:"seedStation"`
	DASID                string  `json:"das"`
	Channel              int     `json:"channel"`
	SeedChannel          string  `json:"seedChannel"`
	Start                float64 `json:"start"` // epoch seconds, fractional
	End                  float64 `json:"end"`   // epoch seconds, fractional
	SampleRate           int     `json:"sampleRate"`
	SampleRateMultiplier int     `json:"sampleRateMultiplier"`
	ApplyTimeCorrection  bool    `json:"applyTimeCorrection"`
	Location             string  `json:"location"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
}

// Span returns the requested length in seconds.
func (r CutRequest) Span() float64 {
	return r.End - r.Start
}

// RestrictedInterval marks a sub-range of one SNCL tuple that must be
// excluded from anonymous output. The list is supplied externally and
// read-only.
type RestrictedInterval struct {
	Network  string  `json:"network" yaml:"network"`
	Station  string  `json:"station" yaml:"station"` // seed station name
	Location string  `json:"location" yaml:"location"`
	Channel  string  `json:"channel" yaml:"channel"` // seed channel code
	Start    float64 `json:"start" yaml:"-"`
	End      float64 `json:"end" yaml:"-"`
}

// Covers reports whether the restriction applies to the request's SNCL
// identity. Matching is exact; wildcards are resolved long before this point.
func (x RestrictedInterval) Covers(r CutRequest) bool {
	return x.Network == r.Network &&
		x.Station == r.SeedStation &&
		x.Location == r.Location &&
		x.Channel == r.SeedChannel
}

// OutputTrace is one assembled, time-correct waveform segment ready for a
// miniSEED/SAC writer or JSON response. Samples are never modified after
// assembly except by the optional in-place decimation step.
type OutputTrace struct {
	Network          string  `json:"network"`
	Station          string  `json:"station"`
	Location         string  `json:"location"`
	Channel          string  `json:"channel"`
	Start            float64 `json:"start"` // corrected epoch seconds, fractional
	SampleRate       float64 `json:"sampleRate"`
	Samples          []int32 `json:"samples"`
	NSamples         int     `json:"nsamples"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	TimeCorrectionMS float64 `json:"timeCorrectionMs,omitempty"`
}

// TracesResponse is the payload returned by the waveform extraction endpoint.
type TracesResponse struct {
	Traces []OutputTrace `json:"traces"`
	Count  int           `json:"count"`
}

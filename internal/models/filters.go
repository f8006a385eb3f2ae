package models

// CutFilter represents the selection parameters for a waveform extraction
// request. Pattern fields take shell-style wildcards; id fields match
// exactly. An empty pattern list means "no filter".
type CutFilter struct {
	Arrays      []string  `form:"array" json:"arrays"`           // glob patterns
	Stations    []string  `form:"station" json:"stations"`       // glob patterns, seed station names
	StationIDs  []string  `form:"stationId" json:"stationIds"`   // exact archive station ids
	Channels    []string  `form:"channel" json:"channels"`       // glob patterns, seed channel codes
	Components  []string  `form:"component" json:"components"`   // glob patterns, raw channel numbers
	SampleRates []float64 `form:"sampleRate" json:"sampleRates"` // exact effective rates
	DASIDs      []string  `form:"das" json:"dasIds"`             // exact das serials

	Start  string  `form:"start" json:"start"`   // YYYY:DOY:HH:MM:SS.ffffff or ISO-8601
	Stop   string  `form:"stop" json:"stop"`     // same formats as Start
	Length float64 `form:"length" json:"length"` // seconds; overrides Stop when set
	Offset float64 `form:"offset" json:"offset"` // seconds added to every window start

	ShotLine string   `form:"shotLine" json:"shotLine"`
	EventIDs []string `form:"event" json:"eventIds"`

	WithinDeployPickup bool   `form:"strictWindow" json:"withinDeployPickup"`
	Network            string `form:"network" json:"network"` // exactly 2 alphanumerics

	ApplyTimeCorrection bool    `form:"timeCorrect" json:"applyTimeCorrection"`
	ReductionVelocity   float64 `form:"reductionVelocity" json:"reductionVelocity"` // km/s, 0 = off
	StationSpacing      float64 `form:"stationSpacing" json:"stationSpacing"`       // meters, offset fallback
	Decimation          int     `form:"decimation" json:"decimation"`               // keep every Nth sample, 0/1 = off
}

// StationFilter represents filter parameters for station metadata queries.
type StationFilter struct {
	Arrays   []string `form:"array"`   // glob patterns
	Stations []string `form:"station"` // glob patterns
	Channels []string `form:"channel"` // glob patterns
}

// EventFilter represents filter parameters for event metadata queries.
type EventFilter struct {
	ShotLine string   `form:"shotLine"`
	EventIDs []string `form:"event"`
	Start    string   `form:"start"` // same formats as CutFilter.Start
	Stop     string   `form:"stop"`
}

package models

// ChannelInfo is one channel of a station as exposed to metadata writers.
type ChannelInfo struct {
	SeedChannel string  `json:"seedChannel"`
	Channel     int     `json:"channel"`
	Location    string  `json:"location"`
	DASID       string  `json:"das"`
	SampleRate  float64 `json:"sampleRate"`
	Deploy      float64 `json:"deploy"`
	Pickup      float64 `json:"pickup"`
}

// StationInfo groups the channels of one station.
type StationInfo struct {
	StationID   string        `json:"stationId"`
	SeedStation string        `json:"seedStation"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Channels    []ChannelInfo `json:"channels"`
}

// ArrayInfo groups the stations of one array, in archive-native order.
type ArrayInfo struct {
	Name     string        `json:"name"`
	Stations []StationInfo `json:"stations"`
}

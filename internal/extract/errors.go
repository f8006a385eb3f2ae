package extract

import "fmt"

// ConfigError marks a malformed extraction request: the whole listing must
// be aborted before any iteration begins. Handlers map it to a client
// error.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "invalid extraction request: " + e.Msg
}

// NoOffsetError is raised when a reduction-velocity correction was
// requested but neither a true source-receiver offset nor a station
// spacing is available for the station.
type NoOffsetError struct {
	StationID string
	DASID     string
}

func (e *NoOffsetError) Error() string {
	return fmt.Sprintf("no offset distance for station %s (das %s): reduction velocity requires an offset table or station spacing", e.StationID, e.DASID)
}

// ArchiveReadError wraps an I/O or archive-internal failure reading raw
// samples or tables. It is fatal for the one request that triggered it;
// the aggregating caller decides whether to continue.
type ArchiveReadError struct {
	DASID string
	Op    string
	Err   error
}

func (e *ArchiveReadError) Error() string {
	return fmt.Sprintf("archive read failed (%s, das %s): %v", e.Op, e.DASID, e.Err)
}

func (e *ArchiveReadError) Unwrap() error {
	return e.Err
}

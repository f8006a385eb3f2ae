package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// SecondsPerDay is the length of one archive day segment.
const SecondsPerDay = 86400.0

// ParseError reports a malformed time string passed to ParseEpoch.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse time %q: %s", e.Input, e.Reason)
}

// Calendar is the day-of-year calendar form of an epoch, microsecond precise.
type Calendar struct {
	Year     int
	DOY      int // 1-366
	Hour     int
	Minute   int
	Second   int
	Fraction float64 // [0, 1), microsecond resolution
}

// splitEpoch separates an epoch into whole seconds and microseconds,
// normalizing the rounding case where the fraction lands on exactly 1e6.
func splitEpoch(epoch float64) (sec int64, usec int64) {
	sec = int64(math.Floor(epoch))
	usec = int64(math.Round((epoch - float64(sec)) * 1e6))
	if usec >= 1e6 {
		sec++
		usec -= 1e6
	}
	return sec, usec
}

// EpochToCalendar converts a fractional epoch to its UTC calendar form.
// Microsecond precision is preserved through the round trip with
// CalendarToEpoch.
func EpochToCalendar(epoch float64) Calendar {
	sec, usec := splitEpoch(epoch)
	t := time.Unix(sec, usec*1000).UTC()
	return Calendar{
		Year:     t.Year(),
		DOY:      t.YearDay(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Second:   t.Second(),
		Fraction: float64(usec) / 1e6,
	}
}

// CalendarToEpoch converts a calendar form back to a fractional epoch.
func CalendarToEpoch(c Calendar) float64 {
	t := time.Date(c.Year, time.January, 1, c.Hour, c.Minute, c.Second, 0, time.UTC)
	t = t.AddDate(0, 0, c.DOY-1)
	return float64(t.Unix()) + c.Fraction
}

var (
	doyFormat = regexp.MustCompile(`^(\d{4}):(\d{1,3}):(\d{1,2}):(\d{1,2}):(\d{1,2})(\.\d{1,6})?$`)
	isoFormat = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})[T ](\d{1,2}):(\d{1,2}):(\d{1,2})(\.\d{1,6})?Z?$`)
)

// ParseEpoch converts "YYYY:DOY:HH:MM:SS[.ffffff]" or
// "YYYY-MM-DDTHH:MM:SS[.ffffff]" to a fractional epoch. Returns a
// *ParseError on any malformed or out-of-range input.
func ParseEpoch(s string) (float64, error) {
	if m := doyFormat.FindStringSubmatch(s); m != nil {
		year := atoi(m[1])
		doy := atoi(m[2])
		hour, minute, second := atoi(m[3]), atoi(m[4]), atoi(m[5])
		if doy < 1 || doy > daysInYear(year) {
			return 0, &ParseError{Input: s, Reason: fmt.Sprintf("day of year %d out of range for %d", doy, year)}
		}
		if err := checkClock(s, hour, minute, second); err != nil {
			return 0, err
		}
		frac := parseFraction(m[6])
		t := time.Date(year, time.January, 1, hour, minute, second, 0, time.UTC).AddDate(0, 0, doy-1)
		return float64(t.Unix()) + frac, nil
	}
	if m := isoFormat.FindStringSubmatch(s); m != nil {
		year, month, day := atoi(m[1]), atoi(m[2]), atoi(m[3])
		hour, minute, second := atoi(m[4]), atoi(m[5]), atoi(m[6])
		if month < 1 || month > 12 {
			return 0, &ParseError{Input: s, Reason: fmt.Sprintf("month %d out of range", month)}
		}
		if day < 1 || day > daysInMonth(year, time.Month(month)) {
			return 0, &ParseError{Input: s, Reason: fmt.Sprintf("day %d out of range", day)}
		}
		if err := checkClock(s, hour, minute, second); err != nil {
			return 0, err
		}
		frac := parseFraction(m[7])
		t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
		return float64(t.Unix()) + frac, nil
	}
	return 0, &ParseError{Input: s, Reason: "unrecognized format"}
}

// NextDayBoundary returns the epoch of 00:00:00 UTC on the day after the
// calendar day containing epoch, and the seconds between epoch and that
// boundary. Year rollover and leap days fall out of time.Date
// normalization.
func NextDayBoundary(epoch float64) (boundary float64, until float64) {
	sec, usec := splitEpoch(epoch)
	t := time.Unix(sec, usec*1000).UTC()
	next := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, time.UTC)
	boundary = float64(next.Unix())
	return boundary, boundary - epoch
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseFraction(s string) float64 {
	if s == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	// Round to whole microseconds; finer precision does not survive the
	// archive's time columns anyway.
	return math.Round(f*1e6) / 1e6
}

func checkClock(input string, hour, minute, second int) error {
	if hour > 23 {
		return &ParseError{Input: input, Reason: fmt.Sprintf("hour %d out of range", hour)}
	}
	if minute > 59 {
		return &ParseError{Input: input, Reason: fmt.Sprintf("minute %d out of range", minute)}
	}
	if second > 60 { // 60 allowed for leap-second stamps
		return &ParseError{Input: input, Reason: fmt.Sprintf("second %d out of range", second)}
	}
	return nil
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

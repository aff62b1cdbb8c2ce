// Package httpdate parses and formats the HTTP-date value used in header
// fields such as Date, Expires, Last-Modified and the cookie expires
// attribute.
//
// Parsing accepts the three HTTP-date grammars of RFC 9110 (IMF-fixdate,
// the obsolete RFC 850 format and ANSI C asctime) plus a bare count of
// seconds since the Unix epoch. Formatting renders into any of the four
// supported output grammars.
package httpdate

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Format selects the output grammar used by FullDate.Format.
type Format int

const (
	// RFC1123 renders the instant with its own zone name.
	RFC1123 Format = iota
	// RFC1123GMT converts the instant to UTC and always emits the literal
	// zone token "GMT", independent of the host timezone configuration.
	RFC1123GMT
	// RFC850 renders the obsolete dashed two-digit-year format.
	RFC850
	// AscTime renders the ANSI C asctime format (no zone field).
	AscTime
)

// Layouts for the wire grammars. The dashed RFC 1123 variants cover a
// common non-conforming producer; Google serves cookie expires attributes
// like "expires=Mon, 26-May-2025 18:38:48 GMT".
const (
	rfc1123Layout        = "Mon, 02 Jan 2006 15:04:05 MST"
	rfc1123DashedLayout  = "Mon, 02-Jan-2006 15:04:05 MST"
	rfc1123Dashed2Layout = "Mon, 02-Jan-06 15:04:05 MST"
	rfc850Layout         = "Monday, 02-Jan-06 15:04:05 MST"
	rfc850OutLayout      = "Mon, 02-Jan-06 15:04:05 MST"
	asctimeLayout        = "Mon Jan _2 15:04:05 2006"
	asctimeOutLayout     = "Mon Jan 02 15:04:05 2006"
)

// ErrInvalidDateFormat reports that an input matched none of the supported
// grammars. Returned wrapped in an InvalidDateError.
var ErrInvalidDateFormat = errors.New("invalid date format")

// InvalidDateError carries the offending input text for diagnostics.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return "invalid date format: " + strconv.Quote(e.Input)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDateFormat
}

// FullDate is a single HTTP-date instant with whole-second precision.
// It is immutable after construction and safe to share.
type FullDate struct {
	date time.Time
}

// FromTime wraps an instant, truncated to whole seconds.
func FromTime(t time.Time) FullDate {
	return FullDate{date: t.Truncate(time.Second)}
}

// FromSeconds wraps the instant the given number of seconds after the Unix
// epoch.
func FromSeconds(seconds int64) FullDate {
	return FullDate{date: time.Unix(seconds, 0).UTC()}
}

// Now wraps the current time.
func Now() FullDate {
	return FromTime(time.Now())
}

// Time returns the wrapped instant.
func (d FullDate) Time() time.Time {
	return d.date
}

// Seconds returns the wrapped instant as seconds since the Unix epoch.
func (d FullDate) Seconds() int64 {
	return d.date.Unix()
}

// Recognizer order matters: the textual grammars are not mutually exclusive
// on short ambiguous inputs, and a pure digit string is only treated as an
// epoch count once all of them have failed.
var recognizers = []func(string) (time.Time, bool){
	parseRFC1123,
	parseRFC850,
	parseAsctime,
	parseEpoch,
}

// Parse interprets s as an HTTP-date, trying RFC 1123 (including the dashed
// variant), RFC 850, asctime and epoch seconds in that order. The first
// grammar to match wins; the resulting instant is normalized to UTC.
// When every grammar fails, a debug line is logged and an InvalidDateError
// carrying the input is returned.
func Parse(s string) (FullDate, error) {
	for _, recognize := range recognizers {
		if tp, ok := recognize(s); ok {
			return FullDate{date: tp.UTC()}, nil
		}
	}
	log.Debug().Str("date", s).Msg("Failed parsing date")
	return FullDate{}, &InvalidDateError{Input: s}
}

// Format renders the instant in the selected grammar. Passing an unknown
// Format is a programming error and panics rather than picking a default.
func (d FullDate) Format(format Format) string {
	switch format {
	case RFC1123:
		return d.date.Format(rfc1123Layout)
	case RFC1123GMT:
		// http.TimeFormat spells out the GMT token, so the output does not
		// depend on the zone name attached to the instant.
		return d.date.UTC().Format(http.TimeFormat)
	case RFC850:
		return d.date.Format(rfc850OutLayout)
	case AscTime:
		return d.date.Format(asctimeOutLayout)
	}
	panic("unknown date format")
}

func parseRFC1123(s string) (time.Time, bool) {
	if t, err := time.Parse(rfc1123Layout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(rfc1123DashedLayout, s); err == nil {
		return t, true
	}
	t, err := time.Parse(rfc1123Dashed2Layout, s)
	return t, err == nil
}

func parseRFC850(s string) (time.Time, bool) {
	t, err := time.Parse(rfc850Layout, s)
	return t, err == nil
}

func parseAsctime(s string) (time.Time, bool) {
	t, err := time.Parse(asctimeLayout, s)
	return t, err == nil
}

// parseEpoch accepts a non-empty string of decimal digits as seconds since
// the Unix epoch. A count that does not fit in 64 bits is a recognition
// failure, which fails the cascade as a whole instead of wrapping around.
func parseEpoch(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, false
		}
	}
	seconds, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(int64(seconds), 0), true
}

// Package freshness computes the expiration time of HTTP responses from
// their Cache-Control, Expires, Date and Age headers, following the
// freshness model of RFC 9111 section 4.2.
package freshness

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmg0345/pistache/cachecontrol"
	"github.com/dmg0345/pistache/httpdate"
)

// Expiration returns the time at which the response stops being fresh.
// The zero time is returned when the response carries no explicit
// expiration information.
func Expiration(res *http.Response) time.Time {
	if ttl, ok := lifetime(res); ok {
		return time.Now().Add(ttl - age(res))
	}
	return time.Time{}
}

// lifetime evaluates the freshness lifetime rules in order: the s-maxage
// directive, then max-age, then Expires minus Date. An Expires value that
// does not parse as an HTTP-date means already expired.
func lifetime(res *http.Response) (time.Duration, bool) {
	directives := cachecontrol.Parse(res.Header.Get("Cache-Control"))
	if delta, ok := deltaOf(directives, cachecontrol.SMaxAge); ok {
		return delta, true
	}
	if delta, ok := deltaOf(directives, cachecontrol.MaxAge); ok {
		return delta, true
	}
	if expiresValue := res.Header.Get("Expires"); expiresValue != "" {
		expires, err := httpdate.Parse(expiresValue)
		if err != nil {
			return 0, true
		}
		// assume the response was generated now if Date is missing
		received := time.Now()
		if date, err := httpdate.Parse(res.Header.Get("Date")); err == nil {
			received = date.Time()
		}
		return expires.Time().Sub(received), true
	}
	return 0, false
}

func deltaOf(directives []cachecontrol.CacheDirective, kind cachecontrol.Directive) (time.Duration, bool) {
	for _, cd := range directives {
		if cd.Directive() != kind {
			continue
		}
		delta, err := cd.Delta()
		return delta, err == nil
	}
	return 0, false
}

// age returns the current age estimate from the Age header, zero when the
// header is missing or invalid.
func age(res *http.Response) time.Duration {
	if secondsStr := res.Header.Get("Age"); secondsStr != "" {
		if seconds, err := strconv.ParseUint(secondsStr, 10, 64); err == nil {
			return time.Second * time.Duration(seconds)
		}
	}
	return 0
}

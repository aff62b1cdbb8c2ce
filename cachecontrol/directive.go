// Package cachecontrol models the directives of the Cache-Control header
// field: a closed set of directive kinds, four of which carry a
// delta-seconds payload.
package cachecontrol

import (
	"errors"
	"time"
)

// Directive identifies a Cache-Control directive kind.
type Directive int

const (
	NoCache Directive = iota
	NoStore
	NoTransform
	OnlyIfCached
	Public
	Private
	MustRevalidate
	ProxyRevalidate
	MaxAge
	SMaxAge
	MaxStale
	MinFresh
)

// ErrInvalidOperation reports a request for the delta of a directive kind
// that does not carry one. This is a contract violation by the caller, not
// an input error.
var ErrInvalidOperation = errors.New("invalid operation on cache directive")

// CacheDirective is one directive of a Cache-Control header value. The four
// duration-bearing kinds (max-age, s-maxage, max-stale, min-fresh) carry a
// delta-seconds payload; the remaining kinds are bare flags.
// Values are immutable after construction.
type CacheDirective struct {
	directive Directive
	delta     time.Duration
}

// New returns a directive with a zero delta.
func New(directive Directive) CacheDirective {
	return NewWithDelta(directive, 0)
}

// NewWithDelta returns a directive carrying the given delta. The delta is
// silently ignored for kinds that do not carry one.
func NewWithDelta(directive Directive, delta time.Duration) CacheDirective {
	cd := CacheDirective{directive: directive}
	if hasDelta(directive) {
		cd.delta = delta
	}
	return cd
}

// Directive returns the directive kind.
func (cd CacheDirective) Directive() Directive {
	return cd.directive
}

// Delta returns the delta-seconds payload for the four duration-bearing
// kinds, and ErrInvalidOperation for every other kind.
func (cd CacheDirective) Delta() (time.Duration, error) {
	if !hasDelta(cd.directive) {
		return 0, ErrInvalidOperation
	}
	return cd.delta, nil
}

func hasDelta(directive Directive) bool {
	switch directive {
	case MaxAge, SMaxAge, MaxStale, MinFresh:
		return true
	}
	return false
}

// String returns the wire token of the directive kind. Every kind has an
// entry; an out-of-range value panics.
func (d Directive) String() string {
	switch d {
	case NoCache:
		return "no-cache"
	case NoStore:
		return "no-store"
	case NoTransform:
		return "no-transform"
	case OnlyIfCached:
		return "only-if-cached"
	case Public:
		return "public"
	case Private:
		return "private"
	case MustRevalidate:
		return "must-revalidate"
	case ProxyRevalidate:
		return "proxy-revalidate"
	case MaxAge:
		return "max-age"
	case SMaxAge:
		return "s-maxage"
	case MaxStale:
		return "max-stale"
	case MinFresh:
		return "min-fresh"
	}
	panic("unknown cache directive")
}

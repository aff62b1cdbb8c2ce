package cachecontrol

import (
	"errors"
	"testing"
	"time"
)

func TestDelta(t *testing.T) {
	cd := NewWithDelta(MaxAge, 3600*time.Second)
	delta, err := cd.Delta()
	if err != nil {
		t.Fatalf("Error getting delta %+v", err)
	}
	if delta != 3600*time.Second {
		t.Fatalf("Delta is %v", delta)
	}
}

func TestDeltaDefaultsToZero(t *testing.T) {
	for _, directive := range []Directive{MaxAge, SMaxAge, MaxStale, MinFresh} {
		delta, err := New(directive).Delta()
		if err != nil {
			t.Fatalf("Error getting delta %+v", err)
		}
		if delta != 0 {
			t.Fatalf("Delta is %v", delta)
		}
	}
}

func TestDeltaInvalidOperation(t *testing.T) {
	if _, err := New(NoCache).Delta(); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("Error is %+v", err)
	}
}

func TestDeltaIgnoredForFlagDirectives(t *testing.T) {
	cd := NewWithDelta(Public, 5*time.Second)
	if _, err := cd.Delta(); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("Error is %+v", err)
	}
}

func TestDirectiveTokens(t *testing.T) {
	directives := map[Directive]string{
		NoCache:         "no-cache",
		NoStore:         "no-store",
		NoTransform:     "no-transform",
		OnlyIfCached:    "only-if-cached",
		Public:          "public",
		Private:         "private",
		MustRevalidate:  "must-revalidate",
		ProxyRevalidate: "proxy-revalidate",
		MaxAge:          "max-age",
		SMaxAge:         "s-maxage",
		MaxStale:        "max-stale",
		MinFresh:        "min-fresh",
	}
	for directive, token := range directives {
		if directive.String() != token {
			t.Fatalf("Token for %s is %s", token, directive.String())
		}
	}
}

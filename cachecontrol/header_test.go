package cachecontrol

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	directives := Parse("public, max-age=0, s-maxage=600")
	if len(directives) != 3 {
		t.Fatalf("Parsed %d directives", len(directives))
	}
	if directives[0].Directive() != Public {
		t.Fatalf("Directive is %s", directives[0].Directive())
	}
	if delta, err := directives[1].Delta(); err != nil || delta != 0 {
		t.Fatalf("max-age delta: %v, %+v", delta, err)
	}
	if delta, err := directives[2].Delta(); err != nil || delta != 600*time.Second {
		t.Fatalf("s-maxage delta: %v, %+v", delta, err)
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	directives := Parse("No-Cache")
	if len(directives) != 1 || directives[0].Directive() != NoCache {
		t.Fatalf("Parsed %+v", directives)
	}
}

func TestParseQuotedArgument(t *testing.T) {
	directives := Parse(`max-age="60"`)
	if len(directives) != 1 {
		t.Fatalf("Parsed %d directives", len(directives))
	}
	if delta, err := directives[0].Delta(); err != nil || delta != 60*time.Second {
		t.Fatalf("Delta: %v, %+v", delta, err)
	}
}

func TestParseSkipsUnknownDirectives(t *testing.T) {
	directives := Parse("immutable, no-store")
	if len(directives) != 1 || directives[0].Directive() != NoStore {
		t.Fatalf("Parsed %+v", directives)
	}
}

func TestHeader(t *testing.T) {
	header := Header([]CacheDirective{
		New(Private),
		NewWithDelta(MaxAge, 3600*time.Second),
	})
	if header != "private, max-age=3600" {
		t.Fatalf("Header is %s", header)
	}
}

func TestHeaderLargeDelta(t *testing.T) {
	// close to the largest second count a Duration can hold (~292 years)
	const seconds = int64(9000000000)
	header := Header([]CacheDirective{
		NewWithDelta(MaxAge, time.Duration(seconds)*time.Second),
	})
	if header != "max-age=9000000000" {
		t.Fatalf("Header is %s", header)
	}
	reparsed := Parse(header)
	if len(reparsed) != 1 {
		t.Fatalf("Parsed %d directives", len(reparsed))
	}
	if delta, err := reparsed[0].Delta(); err != nil || delta != time.Duration(seconds)*time.Second {
		t.Fatalf("Delta: %v, %+v", delta, err)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	directives := []CacheDirective{
		New(NoCache),
		NewWithDelta(SMaxAge, 600*time.Second),
		NewWithDelta(MinFresh, 5*time.Second),
	}
	reparsed := Parse(Header(directives))
	if len(reparsed) != len(directives) {
		t.Fatalf("Parsed %d directives", len(reparsed))
	}
	for i := range directives {
		if reparsed[i] != directives[i] {
			t.Fatalf("Directive %d is %+v", i, reparsed[i])
		}
	}
}

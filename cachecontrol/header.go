package cachecontrol

import (
	"strconv"
	"strings"
	"time"
)

// Directive tokens are matched case-insensitively on input.
var directiveTokens = map[string]Directive{
	"no-cache":         NoCache,
	"no-store":         NoStore,
	"no-transform":     NoTransform,
	"only-if-cached":   OnlyIfCached,
	"public":           Public,
	"private":          Private,
	"must-revalidate":  MustRevalidate,
	"proxy-revalidate": ProxyRevalidate,
	"max-age":          MaxAge,
	"s-maxage":         SMaxAge,
	"max-stale":        MaxStale,
	"min-fresh":        MinFresh,
}

// Parse tokenizes a single Cache-Control header value into directives.
// Directives are comma-separated; arguments may use token or quoted-string
// form. Unknown extension directives are skipped.
func Parse(value string) []CacheDirective {
	var directives []CacheDirective
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts := strings.SplitN(field, "=", 2)
		directive, ok := directiveTokens[strings.ToLower(parts[0])]
		if !ok {
			continue
		}
		var arg string
		if len(parts) > 1 {
			arg = strings.Trim(parts[1], `"`)
		}
		directives = append(directives, NewWithDelta(directive, deltaSeconds(arg)))
	}
	return directives
}

// Header serializes directives into a Cache-Control header value.
func Header(directives []CacheDirective) string {
	fields := make([]string, 0, len(directives))
	for _, cd := range directives {
		if delta, err := cd.Delta(); err == nil {
			// render as an integer second count, which stays exact for
			// deltas beyond float precision
			seconds := strconv.FormatInt(int64(delta/time.Second), 10)
			fields = append(fields, cd.Directive().String()+"="+seconds)
		} else {
			fields = append(fields, cd.Directive().String())
		}
	}
	return strings.Join(fields, ", ")
}

// deltaSeconds parses a non-negative integer second count.
// Invalid values are treated as zero.
func deltaSeconds(secondsStr string) time.Duration {
	if seconds, err := strconv.ParseUint(secondsStr, 10, 64); err == nil {
		return time.Second * time.Duration(seconds)
	}
	return 0
}

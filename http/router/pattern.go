package router

import (
	"fmt"
	"strings"

	"github.com/urbanfix/urbanfix"
)

// reservedLiterals are segment values a capture never binds to.
//
// "count" disambiguates aggregate routes like /api/reports/count from
// item routes like /api/reports/:id: a request for the aggregate must
// fall through to the literal route no matter the order the two were
// declared in, instead of silently becoming id = "count".
// The other aggregate literals get the same protection.
var reservedLiterals = map[string]bool{
	"count":    true,
	"counties": true,
	"export":   true,
}

// A segment is one /-delimited component of a Pattern:
// either a literal that must match exactly,
// or a named capture binding any non-reserved, non-empty value.
type segment struct {
	literal string
	capture bool
	name    string
}

// A Pattern is an ordered sequence of segments parsed from a declaration
// such as "/api/users/:id/role".
//
// Patterns are built once at startup and read-only afterward,
// so concurrent matching requires no locking.
type Pattern struct {
	raw  string
	segs []segment
}

// NewPattern parses a path declaration into a Pattern.
//
// Captures are declared as ":name"; names must be non-empty and unique
// within the Pattern. There are no wildcard or optional segments:
// a Pattern only ever matches paths with its exact segment count.
func NewPattern(raw string) (Pattern, error) {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return Pattern{}, fmt.Errorf("%w: pattern %q must begin with /", urbanfix.ErrNotValid, raw)
	}

	p := Pattern{raw: raw}
	names := make(map[string]bool)
	for _, part := range splitPath(raw) {
		if !strings.HasPrefix(part, ":") {
			p.segs = append(p.segs, segment{literal: part})
			continue
		}

		name := strings.TrimPrefix(part, ":")
		if name == "" {
			return Pattern{}, fmt.Errorf("%w: pattern %q has an unnamed capture", urbanfix.ErrNotValid, raw)
		}

		if names[name] {
			return Pattern{}, fmt.Errorf("%w: pattern %q repeats capture %q", urbanfix.ErrNotValid, raw, name)
		}

		names[name] = true
		p.segs = append(p.segs, segment{capture: true, name: name})
	}

	return p, nil
}

// String returns the declaration the Pattern was parsed from.
func (p Pattern) String() string { return p.raw }

// Match walks the decoded URL path against the Pattern.
//
// Matching is deterministic and total: it either produces the full
// parameter map or reports no match, never a partial binding.
func (p Pattern) Match(path string) (Params, bool) {
	parts := splitPath(path)
	if len(parts) != len(p.segs) {
		return nil, false
	}

	var params Params
	for i, seg := range p.segs {
		if !seg.capture {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}

		if parts[i] == "" || reservedLiterals[parts[i]] {
			return nil, false
		}

		if params == nil {
			params = make(Params, len(p.segs))
		}
		params[seg.name] = parts[i]
	}

	return params, true
}

// splitPath splits on "/", discarding empty segments,
// so "/api/reports/" and "/api/reports" describe the same shape.
func splitPath(s string) []string {
	parts := make([]string, 0, 8)
	for _, part := range strings.Split(s, "/") {
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}

	return parts
}

package github

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jmgilman/issuectl/errors"
)

// TimestampLayout is the canonical UTC form sent to the API.
const TimestampLayout = "2006-01-02T15:04:05Z"

const sinceHint = "use a relative duration such as 7d, 12h or 30m, " +
	"or a UTC date such as 2024-01-31, 2024-01-31T09:30 or 2024-01-31T09:30:00Z"

var relativeSince = regexp.MustCompile(`^(\d+)([dhm])$`)

var sinceUnits = map[string]time.Duration{
	"d": 24 * time.Hour,
	"h": time.Hour,
	"m": time.Minute,
}

// absoluteSinceLayouts are tried in order. Inputs without a zone are read as
// UTC; RFC 3339 covers explicit offsets and previously formatted output.
var absoluteSinceLayouts = []string{
	"2006-01-02",
	"2006-01-02Z",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339,
}

// ParseSince resolves a time expression into a UTC instant.
//
// Accepted forms are a relative duration counted back from now (a positive
// integer followed by d, h or m) and an absolute date or date-time. An empty
// expression means no lower bound and yields nil.
//
//	ParseSince("7d", now)                  // now - 168h
//	ParseSince("2024-01-31 09:30", now)    // 2024-01-31T09:30:00Z
//	ParseSince("2024-01-31T11:30+02:00", now) // 2024-01-31T09:30:00Z
func ParseSince(raw string, now time.Time) (*time.Time, error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return nil, nil
	}

	if m := relativeSince.FindStringSubmatch(expr); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		unit := sinceUnits[m[2]]
		if err != nil || n <= 0 || n > math.MaxInt64/int64(unit) {
			return nil, invalidSince(raw, "duration magnitude must be a positive integer in range")
		}
		t := now.UTC().Add(-time.Duration(n) * unit)
		return &t, nil
	}

	if len(expr) > 10 && expr[10] == ' ' {
		expr = expr[:10] + "T" + expr[11:]
	}
	for _, layout := range absoluteSinceLayouts {
		if t, err := time.Parse(layout, expr); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, invalidSince(raw, "unrecognized time expression")
}

// FormatTimestamp serializes t in the canonical UTC form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func invalidSince(raw, message string) error {
	return errors.WithContextMap(
		errors.Newf(errors.CodeInvalidTimeExpression, "%s: %q", message, raw),
		map[string]interface{}{
			"input": raw,
			"hint":  sinceHint,
		},
	)
}

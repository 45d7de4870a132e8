package httpheader

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// secondsLayoutLen is the length of "2006-01-02T15:04:05", after which
// any fractional seconds begin.
const secondsLayoutLen = len("2006-01-02T15:04:05")

// timeFormat holds the settings for an ISO 8601 time Header
type timeFormat struct {
	layout     string
	profile    bool
	fractional bool
	location   *time.Location
}

func (tf timeFormat) parse(raw string) (time.Time, bool) {
	t, err := time.Parse(tf.layout, raw)
	if err != nil {
		return time.Time{}, false
	}

	if tf.profile && hasFractionalSeconds(raw) != tf.fractional {
		return time.Time{}, false
	}

	return t.In(tf.location), true
}

// hasFractionalSeconds checks an RFC 3339 value for a fraction after the seconds.
// time.Parse accepts either a period or a comma as the decimal mark.
func hasFractionalSeconds(raw string) bool {
	if len(raw) <= secondsLayoutLen {
		return false
	}

	c := raw[secondsLayoutLen]
	return c == '.' || c == ','
}

// TimeOption tailors how a time Header parses its values.
type TimeOption func(*timeFormat)

// WithFractionalSeconds requires values to carry fractional seconds,
// e.g. 2015-01-01T01:20:30.25Z.  Without this option, values with fractional
// seconds are rejected.
func WithFractionalSeconds() TimeOption {
	return func(tf *timeFormat) {
		tf.fractional = true
	}
}

// WithLayout replaces the internet date-time profile with an arbitrary
// time.Parse layout.  WithFractionalSeconds has no effect on a custom layout.
func WithLayout(layout string) TimeOption {
	return func(tf *timeFormat) {
		tf.layout = layout
		tf.profile = false
	}
}

// WithLocation sets the location of parsed times.  The default is time.UTC.
// A nil location is ignored.
func WithLocation(l *time.Location) TimeOption {
	return func(tf *timeFormat) {
		if l != nil {
			tf.location = l
		}
	}
}

// Time creates a Header for an ISO 8601 internet date-time, as profiled by
// RFC 3339.  By default, values must not have fractional seconds, e.g.
// 2015-01-01T00:00:00Z.  Options can change this behavior.
func Time(field string, opts ...TimeOption) Header[time.Time] {
	tf := timeFormat{
		layout:   time.RFC3339,
		profile:  true,
		location: time.UTC,
	}

	for _, o := range opts {
		o(&tf)
	}

	return New(field, tf.parse)
}

// UnixTime creates a Header for an integer count of seconds since the
// Unix epoch, e.g. X-RateLimit-Reset.  Times are in UTC.
func UnixTime(field string) Header[time.Time] {
	return New(field, func(raw string) (time.Time, bool) {
		v, ok := parseInt(raw, 64)
		if !ok {
			return time.Time{}, false
		}

		return time.Unix(v, 0).UTC(), true
	})
}

// HTTPTime creates a Header for an HTTP-date, as used by Date, Last-Modified,
// and Expires.  All three formats accepted by http.ParseTime are supported.
func HTTPTime(field string) Header[time.Time] {
	return New(field, func(raw string) (time.Time, bool) {
		t, err := http.ParseTime(raw)
		return t, err == nil
	})
}

// LenientTime creates a Header that accepts dates in just about any format,
// using github.com/araddon/dateparse.  Values without a zone are taken to be UTC,
// and ambiguous numeric dates such as 03/04/2015 are read month first.
func LenientTime(field string) Header[time.Time] {
	return New(field, func(raw string) (time.Time, bool) {
		t, err := dateparse.ParseIn(raw, time.UTC)
		return t, err == nil
	})
}

// maxSeconds is the largest count of seconds representable as a time.Duration
const maxSeconds = math.MaxInt64 / int64(time.Second)

// Seconds creates a Header for a non-negative delay in whole seconds, as
// in Retry-After or RateLimit-Reset.
func Seconds(field string) Header[time.Duration] {
	return New(field, func(raw string) (time.Duration, bool) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 || v > maxSeconds {
			return 0, false
		}

		return time.Duration(v) * time.Second, true
	})
}

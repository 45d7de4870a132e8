package httpheader

import (
	"net/http"
	"strings"
)

// Source is the strategy for looking up raw header values.  Implementations
// decide how field names are matched and how repeated fields are merged.
type Source interface {
	// Lookup returns the raw value for a field and whether that field was present.
	Lookup(field string) (string, bool)
}

// SourceFunc is a function type that implements Source.
type SourceFunc func(string) (string, bool)

// Lookup implements Source
func (sf SourceFunc) Lookup(field string) (string, bool) {
	return sf(field)
}

// valueSeparator is used to merge repeated fields into one value
const valueSeparator = ", "

// emptySource never finds anything
var emptySource Source = SourceFunc(func(string) (string, bool) { return "", false })

// lookup tolerates a nil Source, which has no fields
func lookup(src Source, field string) (string, bool) {
	if src == nil {
		return "", false
	}

	return src.Lookup(field)
}

// FromHeader creates a Source backed by an http.Header.  Field names are
// canonicalized by http.Header.Values.  A field is present if it has at least
// one value, even an empty one.  Multiple values are joined with ", ".
func FromHeader(h http.Header) Source {
	if len(h) == 0 {
		return emptySource
	}

	return SourceFunc(func(field string) (string, bool) {
		values := h.Values(field)
		switch len(values) {
		case 0:
			return "", false

		case 1:
			return values[0], true

		default:
			return strings.Join(values, valueSeparator), true
		}
	})
}

// FromResponse creates a Source from a response's headers.  A nil
// response has no fields.
func FromResponse(r *http.Response) Source {
	if r == nil {
		return emptySource
	}

	return FromHeader(r.Header)
}

// FromRequest creates a Source from a request's headers.  A nil
// request has no fields.
func FromRequest(r *http.Request) Source {
	if r == nil {
		return emptySource
	}

	return FromHeader(r.Header)
}

// FromMap creates a Source backed by a simple map.  Unlike FromHeader,
// field names must match exactly.
func FromMap(m map[string]string) Source {
	return SourceFunc(func(field string) (v string, found bool) {
		v, found = m[field]
		return
	})
}

package httpheader

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// listSeparator is the delimiter for list-valued headers
const listSeparator = ","

// String creates a Header whose value is the raw header text, unchanged.
func String(field string) Header[string] {
	return New(field, func(raw string) (string, bool) {
		return raw, true
	})
}

// Strings creates a Header for a comma-delimited list.  Each element has
// surrounding whitespace trimmed.  Order is preserved, and empty elements
// between delimiters are kept.
func Strings(field string) Header[[]string] {
	return New(field, func(raw string) ([]string, bool) {
		values := strings.Split(raw, listSeparator)
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}

		return values, true
	})
}

func parseInt(raw string, bitSize int) (int64, bool) {
	v, err := strconv.ParseInt(raw, 10, bitSize)
	return v, err == nil
}

// Int creates a Header for a base 10 integer that fits in an int.
func Int(field string) Header[int] {
	return New(field, func(raw string) (int, bool) {
		v, ok := parseInt(raw, 0)
		return int(v), ok
	})
}

// Int32 creates a Header for a base 10, 32-bit integer.  Out of range
// values fail to convert.
func Int32(field string) Header[int32] {
	return New(field, func(raw string) (int32, bool) {
		v, ok := parseInt(raw, 32)
		return int32(v), ok
	})
}

// Int64 creates a Header for a base 10, 64-bit integer.
func Int64(field string) Header[int64] {
	return New(field, func(raw string) (int64, bool) {
		return parseInt(raw, 64)
	})
}

// Float64 creates a Header for a decimal or scientific notation float.
func Float64(field string) Header[float64] {
	return New(field, func(raw string) (float64, bool) {
		v, err := strconv.ParseFloat(raw, 64)
		return v, err == nil
	})
}

// Bool creates a Header for a boolean flag.  Exactly two tokens are
// accepted, "true" and "false", compared without regard to ASCII case.
// Other forms such as "1", "yes", or "t" fail to convert.
func Bool(field string) Header[bool] {
	return New(field, func(raw string) (bool, bool) {
		switch {
		case strings.EqualFold(raw, "true"):
			return true, true

		case strings.EqualFold(raw, "false"):
			return false, true

		default:
			return false, false
		}
	})
}

// errInvalidURL is returned for URL text that url.Parse would otherwise
// quietly accept by escaping it
var errInvalidURL = errors.New("invalid URL")

// invalidURLRune reports characters that cannot appear unescaped in a URL
func invalidURLRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// parseURL applies the URL rules shared by the URL Header and URLHookFunc.
// Empty text and text containing whitespace or control characters are rejected.
func parseURL(raw string) (*url.URL, error) {
	if len(raw) == 0 || strings.IndexFunc(raw, invalidURLRune) >= 0 {
		return nil, errInvalidURL
	}

	return url.Parse(raw)
}

// URL creates a Header for a URL, parsed with url.Parse.  An empty
// value, or one containing whitespace or control characters, fails to convert.
func URL(field string) Header[*url.URL] {
	return New(field, func(raw string) (*url.URL, bool) {
		u, err := parseURL(raw)
		return u, err == nil
	})
}

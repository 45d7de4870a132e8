package httpheader

import (
	"net/http"
	"reflect"
)

// Header is an immutable descriptor for a single, typed HTTP header field.
// The zero value has an empty field name and fails every conversion.
//
// A Header is safe for concurrent use.  It holds no reference to any
// particular response.
type Header[T any] struct {
	field   string
	convert func(string) (T, bool)
}

// New creates a Header for the given field name.  The field is stored as is,
// with no validation.  The convert function must be pure.  It returns false
// when the raw text cannot be converted to a T.
//
// A nil convert produces a Header whose conversions always fail.
func New[T any](field string, convert func(string) (T, bool)) Header[T] {
	return Header[T]{
		field:   field,
		convert: convert,
	}
}

// Field returns the header name this descriptor looks up.
func (h Header[T]) Field() string {
	return h.field
}

// Convert applies this descriptor's conversion to a raw header value.  A
// failed conversion yields a *TypeMismatchError.
func (h Header[T]) Convert(raw string) (v T, err error) {
	var ok bool
	if h.convert != nil {
		v, ok = h.convert(raw)
	}

	if !ok {
		var zero T
		v = zero
		err = &TypeMismatchError{
			Field: h.field,
			Value: raw,
			Type:  reflect.TypeOf((*T)(nil)).Elem(),
		}
	}

	return
}

// Parse looks up this header's field in src and converts it.  If the field is
// absent, a *NotFoundError is returned.  If the field is present but cannot be
// converted, a *TypeMismatchError is returned.
func (h Header[T]) Parse(src Source) (T, error) {
	raw, found := lookup(src, h.field)
	if !found {
		var zero T
		return zero, &NotFoundError{Field: h.field}
	}

	return h.Convert(raw)
}

// ParseIfPresent is like Parse, except that an absent field is not an error.
// In that case, the zero value of T, false, and a nil error are returned.
//
// A field that is present but cannot be converted is still an error.
func (h Header[T]) ParseIfPresent(src Source) (v T, found bool, err error) {
	var raw string
	raw, found = lookup(src, h.field)
	if found {
		v, err = h.Convert(raw)
	}

	return
}

// ParseResponse is syntactic sugar for h.Parse(FromResponse(r))
func (h Header[T]) ParseResponse(r *http.Response) (T, error) {
	return h.Parse(FromResponse(r))
}

// ParseResponseIfPresent is syntactic sugar for h.ParseIfPresent(FromResponse(r))
func (h Header[T]) ParseResponseIfPresent(r *http.Response) (T, bool, error) {
	return h.ParseIfPresent(FromResponse(r))
}

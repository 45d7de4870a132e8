package httpheader

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is the sentinel matched by errors.Is for any *NotFoundError.
	ErrNotFound = errors.New("header not found")

	// ErrTypeMismatch is the sentinel matched by errors.Is for any *TypeMismatchError.
	ErrTypeMismatch = errors.New("header type mismatch")
)

// NotFoundError indicates that a required header field was absent.
type NotFoundError struct {
	Field string
}

// Error describes the missing field.
func (nfe *NotFoundError) Error() string {
	var o strings.Builder
	o.WriteString("header ")
	o.WriteString(strconv.Quote(nfe.Field))
	o.WriteString(" not found")

	return o.String()
}

// Is allows errors.Is(err, ErrNotFound) to succeed.
func (nfe *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TypeMismatchError indicates that a header field was present but its
// raw value could not be converted to the target type.
type TypeMismatchError struct {
	// Field is the header field name
	Field string

	// Value is the raw text that was observed
	Value string

	// Type is the target type of the conversion
	Type reflect.Type
}

// Error describes the field, the raw value, and the target type.
func (tme *TypeMismatchError) Error() string {
	var o strings.Builder
	o.WriteString("header ")
	o.WriteString(strconv.Quote(tme.Field))
	o.WriteString(": cannot convert ")
	o.WriteString(strconv.Quote(tme.Value))
	o.WriteString(" to ")
	if tme.Type != nil {
		o.WriteString(tme.Type.String())
	} else {
		o.WriteString("<nil>")
	}

	return o.String()
}

// Is allows errors.Is(err, ErrTypeMismatch) to succeed.
func (tme *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

package httpheader

import (
	"encoding"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// TagName is the struct tag consulted by Decode to map header fields
// onto struct fields.
const TagName = "header"

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	urlType             = reflect.TypeOf(url.URL{})
	urlPtrType          = reflect.TypeOf((*url.URL)(nil))
)

// DecodeOption tailors the mapstructure configuration used by Decode.
// Note that viper.DecoderConfigOption has the same underlying type, so
// options can be shared between the two.
type DecodeOption func(*mapstructure.DecoderConfig)

// ErrorUnset sets the DecoderConfig.ErrorUnset flag, which makes Decode
// fail when a struct field has no corresponding header.
func ErrorUnset(f bool) DecodeOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnset = f
	}
}

// WeaklyTypedInput sets the DecoderConfig.WeaklyTypedInput flag.  Decode turns
// this on by default, since every header value starts out as a string.
func WeaklyTypedInput(f bool) DecodeOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = f
	}
}

// DecodeHooks returns the mapstructure hook chain used by Decode.  It converts
// header strings into trimmed lists, URLs, durations, RFC 3339 times, and
// anything that implements encoding.TextUnmarshaler.
func DecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		ListHookFunc,
		URLHookFunc,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		TextUnmarshalerHookFunc,
	)
}

// Decode maps the fields of an http.Header onto the struct pointed to by dst.
// Struct fields are matched to header fields via the "header" tag, falling
// back to the field name, without regard to case.  Repeated header fields are
// joined with ", " before decoding.
func Decode(h http.Header, dst interface{}, opts ...DecodeOption) error {
	dc := mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       DecodeHooks(),
		Result:           dst,
	}

	for _, o := range opts {
		o(&dc)
	}

	d, err := mapstructure.NewDecoder(&dc)
	if err != nil {
		return err
	}

	input := make(map[string]interface{}, len(h))
	for key, values := range h {
		if len(values) > 0 {
			input[http.CanonicalHeaderKey(key)] = strings.Join(values, valueSeparator)
		}
	}

	return d.Decode(input)
}

// DecodeResponse is syntactic sugar for Decode(r.Header, dst, opts...).
// A nil response decodes nothing into dst.
func DecodeResponse(r *http.Response, dst interface{}, opts ...DecodeOption) error {
	var h http.Header
	if r != nil {
		h = r.Header
	}

	return Decode(h, dst, opts...)
}

// ListHookFunc is a mapstructure.DecodeHookFunc that splits a string on commas
// when the target is a slice, trimming whitespace from each element.  This is
// the same rule used by Strings.
func ListHookFunc(from, to reflect.Type, src interface{}) (interface{}, error) {
	text, ok := src.(string)
	if !ok || from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() == reflect.Uint8 {
		return src, nil
	}

	values := strings.Split(text, listSeparator)
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	return values, nil
}

// URLHookFunc is a mapstructure.DecodeHookFunc that parses strings into
// url.URL or *url.URL targets, using the same rules as URL.
func URLHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	text, ok := src.(string)
	if !ok || (to != urlType && to != urlPtrType) {
		return src, nil
	}

	u, err := parseURL(text)
	if err != nil {
		return nil, err
	}

	if to == urlType {
		return *u, nil
	}

	return u, nil
}

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that honors the destination
// type's encoding.TextUnmarshaler implementation, using it to convert the src.  The src
// parameter must be a string, or else this function does not attempt any conversion.
//
// The to type may be either a non-pointer type whose pointer implements
// encoding.TextUnmarshaler, or a single-level pointer type that implements it.
func TextUnmarshalerHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	if text, ok := src.(string); ok {
		switch {
		case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
			ptr := reflect.New(to)
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return ptr.Elem().Interface(), err

		case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
			ptr := reflect.New(to.Elem())
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return tu, err
		}
	}

	return src, nil
}

// DefaultDecodeOptions is a viper option that sets the decode hooks used when
// unmarshaling schemas and client configuration: durations, comma-delimited
// slices, and encoding.TextUnmarshaler.
func DefaultDecodeOptions(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		TextUnmarshalerHookFunc,
	)
}

// Merge takes any number of slices of decoder options and merges them
// into a single viper option, applying them in order.
func Merge(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}

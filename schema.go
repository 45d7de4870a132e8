package httpheader

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Type names recognized in a FieldConfig.
const (
	TypeString   = "string"
	TypeStrings  = "strings"
	TypeInt      = "int"
	TypeInt32    = "int32"
	TypeInt64    = "int64"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeURL      = "url"
	TypeTime     = "time"
	TypeUnix     = "unix"
	TypeHTTPTime = "httptime"
	TypeLenient  = "lenient"
	TypeSeconds  = "seconds"
)

// InvalidFieldConfigError indicates a FieldConfig that cannot be compiled.
type InvalidFieldConfigError struct {
	// Index is the position of the FieldConfig within its Schema
	Index int

	// Field is the configured header field name, which may be blank
	Field string

	// Message describes the problem
	Message string
}

// Error describes the offending FieldConfig.
func (ifce *InvalidFieldConfigError) Error() string {
	var o strings.Builder
	o.WriteString("schema[")
	o.WriteString(strconv.Itoa(ifce.Index))
	o.WriteString("] ")
	o.WriteString(strconv.Quote(ifce.Field))
	o.WriteString(": ")
	o.WriteString(ifce.Message)

	return o.String()
}

// FieldConfig is the unmarshaled description of one header field.
type FieldConfig struct {
	// Name is the key under which the parsed value is reported.  Defaults to Field.
	Name string

	// Field is the required HTTP header field name.
	Field string

	// Type is one of the Type constants.  Defaults to TypeString.
	Type string

	// Required indicates that an absent field is an error.
	Required bool

	// Layout is an optional time.Parse layout.  Only used with TypeTime.
	Layout string

	// FractionalSeconds requires fractional seconds.  Only used with TypeTime.
	FractionalSeconds bool
}

// Schema is an unmarshaled sequence of header descriptions.
type Schema []FieldConfig

// extractor parses one header into a dynamically typed value
type extractor struct {
	name     string
	field    string
	required bool
	parse    func(Source) (interface{}, bool, error)
}

// erase drops the static type of a Header so that it can live in a Set
func erase[T any](h Header[T]) func(Source) (interface{}, bool, error) {
	return func(src Source) (interface{}, bool, error) {
		v, found, err := h.ParseIfPresent(src)
		return v, found, err
	}
}

func (fc FieldConfig) parser() (func(Source) (interface{}, bool, error), bool) {
	switch strings.ToLower(fc.Type) {
	case "", TypeString:
		return erase(String(fc.Field)), true

	case TypeStrings:
		return erase(Strings(fc.Field)), true

	case TypeInt:
		return erase(Int(fc.Field)), true

	case TypeInt32:
		return erase(Int32(fc.Field)), true

	case TypeInt64:
		return erase(Int64(fc.Field)), true

	case TypeFloat:
		return erase(Float64(fc.Field)), true

	case TypeBool:
		return erase(Bool(fc.Field)), true

	case TypeURL:
		return erase(URL(fc.Field)), true

	case TypeTime:
		var opts []TimeOption
		if fc.FractionalSeconds {
			opts = append(opts, WithFractionalSeconds())
		}

		if len(fc.Layout) > 0 {
			opts = append(opts, WithLayout(fc.Layout))
		}

		return erase(Time(fc.Field, opts...)), true

	case TypeUnix:
		return erase(UnixTime(fc.Field)), true

	case TypeHTTPTime:
		return erase(HTTPTime(fc.Field)), true

	case TypeLenient:
		return erase(LenientTime(fc.Field)), true

	case TypeSeconds:
		return erase(Seconds(fc.Field)), true

	default:
		return nil, false
	}
}

// Compile turns this Schema into an immutable Set.  Every FieldConfig is
// checked, and any errors are aggregated.
func (s Schema) Compile() (set Set, err error) {
	names := make(map[string]bool, len(s))
	for i, fc := range s {
		name := fc.Name
		if len(name) == 0 {
			name = fc.Field
		}

		parse, ok := fc.parser()
		switch {
		case len(fc.Field) == 0:
			err = multierr.Append(err, &InvalidFieldConfigError{Index: i, Message: "a header field is required"})

		case !ok:
			err = multierr.Append(err, &InvalidFieldConfigError{Index: i, Field: fc.Field, Message: "unsupported type " + strconv.Quote(fc.Type)})

		case names[name]:
			err = multierr.Append(err, &InvalidFieldConfigError{Index: i, Field: fc.Field, Message: "duplicate name " + strconv.Quote(name)})

		default:
			names[name] = true
			set.e = append(set.e, extractor{
				name:     name,
				field:    fc.Field,
				required: fc.Required,
				parse:    parse,
			})
		}
	}

	if err != nil {
		set = Set{}
	}

	return
}

// Values holds the parsed results of a Set, keyed by name.
type Values map[string]interface{}

// Names returns the keys of this Values, sorted.
func (v Values) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Time returns the named value as a time.Time, if it is one.
func (v Values) Time(name string) (t time.Time, ok bool) {
	t, ok = v[name].(time.Time)
	return
}

// Set is an immutable, compiled Schema.  The zero value is an empty Set
// that extracts nothing.
type Set struct {
	e []extractor
}

// Len returns the number of header fields in this Set.
func (s Set) Len() int {
	return len(s.e)
}

// Extract parses every field of this Set from src.  Absent optional fields
// are omitted from the returned Values.  Errors from all fields are aggregated,
// and the values that could be parsed are returned alongside any error.
func (s Set) Extract(src Source) (values Values, err error) {
	values = make(Values, len(s.e))
	for _, e := range s.e {
		v, found, parseErr := e.parse(src)
		switch {
		case parseErr != nil:
			err = multierr.Append(err, parseErr)

		case found:
			values[e.name] = v

		case e.required:
			err = multierr.Append(err, &NotFoundError{Field: e.field})
		}
	}

	return
}

// UnmarshalSchema reads a Schema from the given viper key.  DefaultDecodeOptions
// are applied first, followed by any supplied options.
func UnmarshalSchema(v *viper.Viper, key string, opts ...viper.DecoderConfigOption) (s Schema, err error) {
	if v == nil {
		err = ErrNilViper
		return
	}

	err = v.UnmarshalKey(
		key,
		&s,
		Merge([]viper.DecoderConfigOption{DefaultDecodeOptions}, opts),
	)

	return
}

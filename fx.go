package httpheader

import (
	"errors"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

var (
	// ErrNilViper is returned when a nil Viper instance is used to unmarshal a Schema.
	ErrNilViper = errors.New("the viper instance cannot be nil")
)

// SetIn is the set of dependencies required to provide a Set from configuration.
type SetIn struct {
	fx.In

	// Viper is the required viper instance holding the schema
	Viper *viper.Viper

	// DecodeOptions is an optional slice of options applied after DefaultDecodeOptions
	DecodeOptions []viper.DecoderConfigOption `optional:"true"`

	// Printer is an optional fx.Printer for informational output.  If not
	// supplied, DefaultPrinter() is used.
	Printer fx.Printer `optional:"true"`
}

// NewSet unmarshals the Schema at key and compiles it.
func NewSet(key string, in SetIn) (Set, error) {
	p := NewModulePrinter(Module, in.Printer)
	schema, err := UnmarshalSchema(in.Viper, key, in.DecodeOptions...)
	if err != nil {
		return Set{}, err
	}

	p.Printf("SCHEMA [%s] => %d field(s)", key, len(schema))
	return schema.Compile()
}

// ProvideSet emits an unnamed Set component into the enclosing fx.App, compiled
// from the Schema at the given viper key.  A *viper.Viper component is required.
//
// Any unmarshal or compile error short-circuits fx.App startup.
func ProvideSet(key string) fx.Option {
	return fx.Provide(
		func(in SetIn) (Set, error) {
			return NewSet(key, in)
		},
	)
}

package httpheader

import "go.uber.org/multierr"

// Binding is a strategy for parsing header fields into some destination.
type Binding interface {
	// Bind reads one or more fields from src.
	Bind(src Source) error
}

// BindingFunc is a function type that implements Binding.
type BindingFunc func(Source) error

// Bind implements Binding
func (bf BindingFunc) Bind(src Source) error {
	return bf(src)
}

// Bind creates a Binding that parses a required header into dst.  If the
// header is absent or malformed, dst is not modified.
func Bind[T any](h Header[T], dst *T) Binding {
	return BindingFunc(func(src Source) error {
		v, err := h.Parse(src)
		if err == nil {
			*dst = v
		}

		return err
	})
}

// BindIfPresent creates a Binding that parses an optional header into dst.
// If the header is absent, dst is left untouched and no error is returned.
func BindIfPresent[T any](h Header[T], dst *T) Binding {
	return BindingFunc(func(src Source) error {
		v, found, err := h.ParseIfPresent(src)
		if found && err == nil {
			*dst = v
		}

		return err
	})
}

// Bindings is an aggregate Binding.
type Bindings []Binding

// Bind invokes each binding in order.  Bindings are always invoked, even when
// one or more errors occur.  The returned error may be an aggregate error
// and can always be inspected via go.uber.org/multierr.
func (bs Bindings) Bind(src Source) (err error) {
	for _, b := range bs {
		err = multierr.Append(err, b.Bind(src))
	}

	return
}

// Add appends more bindings to this aggregate.
func (bs *Bindings) Add(more ...Binding) {
	*bs = append(*bs, more...)
}

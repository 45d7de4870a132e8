package httpheader

import (
	"log"
	"os"

	"go.uber.org/fx"
)

// Module is what code in this package passes to Prepend as its module parameter
const Module = "HTTPHeader"

// Prepend creates the standard format for information output that uber/fx uses.
// It returns a string of the form "[module] template".
func Prepend(module, template string) string {
	return "[" + module + "] " + template
}

// PrinterFunc is a function type that implements fx.Printer.  This is useful
// for passing functions as printers, such as a zap SugaredLogger's methods.
type PrinterFunc func(string, ...interface{})

// Printf implements fx.Printer.
func (pf PrinterFunc) Printf(template string, args ...interface{}) {
	pf(template, args...)
}

// defaultPrinter follows the same pattern as in the go.uber.org/fx/internal/fxlog package
var defaultPrinter fx.Printer = log.New(os.Stderr, "", log.LstdFlags)

// DefaultPrinter returns the fx.Printer used when no printer component is supplied.
func DefaultPrinter() fx.Printer {
	return defaultPrinter
}

// modulePrinter prepends a module name to everything it prints
type modulePrinter struct {
	module string
	p      fx.Printer
}

func (mp modulePrinter) Printf(template string, args ...interface{}) {
	mp.p.Printf(Prepend(mp.module, template), args...)
}

// NewModulePrinter decorates an fx.Printer so that each message is prefixed
// with the module.  If p is nil, DefaultPrinter is decorated.
func NewModulePrinter(module string, p fx.Printer) fx.Printer {
	if p == nil {
		p = DefaultPrinter()
	}

	return modulePrinter{
		module: module,
		p:      p,
	}
}

// Logger sets the fx.Logger and also supplies the printer as a global,
// unnamed fx.Printer component so that ProvideSet reports through it.
func Logger(p fx.Printer) fx.Option {
	return fx.Options(
		fx.Logger(p),

		// NOTE: fx.Supply would produce a component of the concrete type
		fx.Provide(
			func() fx.Printer {
				return p
			},
		),
	)
}

// LoggerFunc is like Logger, but accepts a closure.  With go.uber.org/zap:
//
//	l := zap.NewDevelopment()
//	fx.New(
//	  httpheader.LoggerFunc(l.Sugar().Infof),
//	)
func LoggerFunc(pf PrinterFunc) fx.Option {
	return Logger(pf)
}

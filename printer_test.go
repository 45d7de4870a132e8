package httpheader

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestPrepend(t *testing.T) {
	assert.Equal(t, "[Test] message: %s", Prepend("Test", "message: %s"))
}

func TestNewModulePrinter(t *testing.T) {
	var (
		assert = assert.New(t)
		output strings.Builder
		p      = PrinterFunc(func(template string, args ...interface{}) {
			fmt.Fprintf(&output, template, args...)
		})
	)

	NewModulePrinter(Module, p).Printf("value=%d", 1)
	assert.Equal("[HTTPHeader] value=1", output.String())

	assert.NotNil(NewModulePrinter(Module, nil))
	assert.NotNil(DefaultPrinter())
}

func TestLoggerFunc(t *testing.T) {
	var (
		assert = assert.New(t)
		output strings.Builder
		actual fx.Printer
	)

	app := fxtest.New(
		t,
		fx.Supply(newTestViper(t, testSchemaYAML)),
		LoggerFunc(func(template string, args ...interface{}) {
			fmt.Fprintf(&output, template+"\n", args...)
		}),
		ProvideSet("headers"),
		fx.Populate(&actual),
		fx.Invoke(func(Set) {}),
	)

	app.RequireStart()
	app.RequireStop()
	assert.NotNil(actual)
	assert.Contains(output.String(), "[HTTPHeader] SCHEMA [headers] => 6 field(s)")
}

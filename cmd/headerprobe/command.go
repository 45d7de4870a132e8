package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xmidt-org/httpheader"
)

const (
	defaultSchemaKey = "headers"
	defaultClientKey = "client"
)

type options struct {
	configFile string
	schemaKey  string
	clientKey  string
	timeout    time.Duration
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "headerprobe [flags] URL",
		Short:        "Fetch a URL and print its typed response headers",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), o, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.configFile, "config", "c", "", "schema configuration file (yaml, json, or toml)")
	flags.StringVarP(&o.schemaKey, "key", "k", defaultSchemaKey, "configuration key holding the header schema")
	flags.StringVar(&o.clientKey, "client-key", defaultClientKey, "configuration key holding the http client settings")
	flags.DurationVarP(&o.timeout, "timeout", "t", 30*time.Second, "overall request timeout")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log dependency injection and round trip details")
	cobra.CheckErr(cmd.MarkFlagRequired("config"))

	return cmd
}

// formatValue renders a parsed header value for output
func formatValue(v interface{}) string {
	switch tv := v.(type) {
	case time.Time:
		return tv.Format(time.RFC3339Nano)

	case []string:
		return strings.Join(tv, ",")

	case *url.URL:
		return tv.String()

	default:
		return fmt.Sprint(v)
	}
}

// printValues writes name=value lines, sorted by name
func printValues(w io.Writer, values httpheader.Values) error {
	for _, name := range values.Names() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, formatValue(values[name])); err != nil {
			return err
		}
	}

	return nil
}

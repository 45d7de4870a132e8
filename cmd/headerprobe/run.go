package main

import (
	"context"
	"io"
	"net/http"

	"github.com/spf13/viper"
	"github.com/xmidt-org/httpheader"
	"github.com/xmidt-org/httpheader/headerhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ClientIn holds the dependencies for the probe's HTTP client
type ClientIn struct {
	fx.In

	Viper  *viper.Viper
	Set    httpheader.Set
	Logger *zap.Logger
}

// newLogger creates the zap logger used for diagnostics, which go to stderr
func newLogger(stderr io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(zapcore.AddSync(stderr)),
			level,
		),
	)
}

// provideClient unmarshals the client configuration and decorates its
// transport so that every response, including redirects, is logged.
func provideClient(key string) func(ClientIn) (*http.Client, error) {
	return func(in ClientIn) (*http.Client, error) {
		var cc headerhttp.ClientConfig
		if err := in.Viper.UnmarshalKey(key, &cc, httpheader.DefaultDecodeOptions); err != nil {
			return nil, err
		}

		return cc.NewClient(
			headerhttp.Observe(in.Set, func(response *http.Response, values httpheader.Values, err error) {
				fields := []zap.Field{
					zap.Int("status", response.StatusCode),
					zap.Int("headers", len(values)),
				}

				if response.Request != nil && response.Request.URL != nil {
					fields = append(fields, zap.Stringer("url", response.Request.URL))
				}

				if err != nil {
					fields = append(fields, zap.Error(err))
					in.Logger.Warn("response headers did not match schema", fields...)
				} else {
					in.Logger.Debug("response headers", fields...)
				}
			}),
		), nil
	}
}

// fetch issues a GET and extracts the set from the final response
func fetch(ctx context.Context, client *http.Client, set httpheader.Set, target string) (values httpheader.Values, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return
	}

	response, err := client.Do(request)
	if err != nil {
		return
	}

	defer func() {
		err = multierr.Append(err, response.Body.Close())
	}()

	_, err = io.Copy(io.Discard, response.Body)
	if err != nil {
		return
	}

	values, err = set.Extract(httpheader.FromResponse(response))
	return
}

func run(ctx context.Context, stdout, stderr io.Writer, o options, target string) error {
	logger := newLogger(stderr, o.verbose)
	defer logger.Sync()

	v := viper.New()
	v.SetConfigFile(o.configFile)
	if err := v.ReadInConfig(); err != nil {
		logger.Error("unable to read configuration", zap.String("file", o.configFile), zap.Error(err))
		return useExitCode(err, exitConfig)
	}

	var (
		client *http.Client
		set    httpheader.Set
	)

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Supply(v, logger),
		httpheader.LoggerFunc(logger.Sugar().Debugf),
		httpheader.ProvideSet(o.schemaKey),
		fx.Provide(provideClient(o.clientKey)),
		fx.Populate(&client, &set),
	)

	if err := app.Err(); err != nil {
		logger.Error("unable to initialize", zap.Error(err))
		return useExitCode(err, exitConfig)
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	values, err := fetch(ctx, client, set, target)
	if printErr := printValues(stdout, values); printErr != nil {
		err = multierr.Append(err, printErr)
	}

	if err != nil {
		logger.Error("probe failed", zap.String("url", target), zap.Error(err))
	}

	return err
}

/*
Package options contains a set of common CLI options and helper functions to
use them.
*/
package options

import (
	"context"
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/soroscan/soroscan-go/pkg/client"
	"github.com/soroscan/soroscan-go/pkg/config"
)

// DefaultTimeout is the default timeout used for API requests.
const DefaultTimeout = 30 * time.Second

// EndpointFlag is a long flag name for the API endpoint. It can be used to
// check for flag presence in the context.
const EndpointFlag = "endpoint"

// API is a set of flags used for API connections (endpoint, credential and
// timeout).
var API = []cli.Flag{
	cli.StringFlag{
		Name:  EndpointFlag + ", e",
		Usage: "SoroScan API base URL",
	},
	cli.StringFlag{
		Name:  "api-key, k",
		Usage: "API key sent as a bearer credential (optional)",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
	cli.StringFlag{
		Name:  "config-file, c",
		Usage: "path to a YAML configuration file carrying endpoint, API key and timeout",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: "log outgoing HTTP requests and responses (LOTS of output)",
	},
}

var errNoEndpoint = errors.New("no API endpoint specified, use option '--" + EndpointFlag + "' or '-e' or a config file")

// Pagination is a set of flags shared by all list commands.
var Pagination = []cli.Flag{
	cli.IntFlag{
		Name:  "first, f",
		Usage: "Number of items from the start of the result set (up to 200)",
	},
	cli.IntFlag{
		Name:  "last, l",
		Usage: "Number of items from the end of the result set (up to 200)",
	},
	cli.StringFlag{
		Name:  "after",
		Usage: "Resume after the given end cursor",
	},
	cli.StringFlag{
		Name:  "before",
		Usage: "Resume before the given start cursor",
	},
}

// GetTimeoutContext returns a context.Context with the default or a user-set
// timeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetClient returns an API client instance for the given Context. Explicit
// flags override values from the configuration file (if one is given).
func GetClient(ctx *cli.Context) (*client.Client, cli.ExitCoder) {
	var cfg config.Config
	if path := ctx.String("config-file"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, cli.NewExitError(err, 1)
		}
	}
	if ctx.IsSet(EndpointFlag) || cfg.Endpoint == "" {
		cfg.Endpoint = ctx.String(EndpointFlag)
	}
	if ctx.IsSet("api-key") || cfg.APIKey == "" {
		cfg.APIKey = ctx.String("api-key")
	}
	if ctx.IsSet("timeout") || cfg.Timeout == 0 {
		cfg.Timeout = ctx.Duration("timeout")
	}
	if cfg.Endpoint == "" {
		return nil, cli.NewExitError(errNoEndpoint, 1)
	}

	opts := client.Options{
		APIKey:         cfg.APIKey,
		RequestTimeout: cfg.Timeout,
	}
	if ctx.Bool("debug") {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, cli.NewExitError(err, 1)
		}
		opts.Client = &http.Client{
			Transport: &debugTransport{log: log, next: http.DefaultTransport},
		}
	}

	c, err := client.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// debugTransport dumps requests and responses through a zap logger. It's
// installed on the HTTP client only, the library core itself never logs.
type debugTransport struct {
	log  *zap.Logger
	next http.RoundTripper
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.log.Debug("request", zap.ByteString("dump", dump))
	}
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.log.Debug("round trip failed", zap.Error(err))
		return nil, err
	}
	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		t.log.Debug("response", zap.ByteString("dump", dump))
	}
	return resp, nil
}

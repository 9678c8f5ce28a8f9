package appconfig

import (
	"time"

	"github.com/ie-dashboard/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the server would listen on for serving dashboard requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9030"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// DefaultSeed pins the seed of the default synthetic snapshot. When 0, the seed is derived from
	// the startup time, so every launch shows a fresh set of demonstration numbers.
	DefaultSeed uint64 `split_words:"true" default:"0"`

	// ViewCacheExpiry describes how long an assembled domain view stays memoized for a given seed.
	ViewCacheExpiry time.Duration `split_words:"true" default:"1h"`

	// WorkerEnabled is a flag to indicate whether to enable the snapshot refresh worker.
	WorkerEnabled bool `split_words:"true"`

	// WorkerInterval describes the interval in-between default snapshot rotations.
	WorkerInterval time.Duration `split_words:"true" default:"6h"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

package engine

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/logging"
)

// Options configures request processing.
//
// Use DefaultOptions() to get a base configuration, then chain With*
// methods to customize specific settings:
//
//	options := engine.DefaultOptions().
//		WithPretty(true).
//		WithLogLevel(logging.LevelDebug)
//
// All With* methods return the same Options instance for method chaining.
type Options struct {
	// StrictUnknownStops rejects a bus definition that references an
	// unknown stop instead of silently skipping the name.
	StrictUnknownStops bool

	// Pretty indents the JSON response array.
	Pretty bool

	// Indent is the number of spaces per level when Pretty is enabled.
	Indent int

	// ConfigFile records the path of a YAML configuration file. The
	// engine does not read it; a loaded configuration takes effect only
	// through FromConfig.
	ConfigFile string

	// LogLevel sets the minimum logging level.
	LogLevel logging.LogLevel

	// LogFormat specifies the log output format ("text" or "json").
	LogFormat string

	// Logger allows custom logger injection. If nil, a logger is created
	// from LogLevel and LogFormat.
	Logger *logging.Logger
}

// DefaultOptions returns an Options instance with sensible defaults:
// strict unknown-stop handling, compact output and info-level text logging.
func DefaultOptions() *Options {
	return &Options{
		StrictUnknownStops: true,
		Pretty:             false,
		Indent:             4,
		LogLevel:           logging.LevelInfo,
		LogFormat:          "text",
	}
}

// FromConfig applies an application configuration and returns the options
// for chaining.
func (o *Options) FromConfig(cfg *config.EngineConfig) *Options {
	o.StrictUnknownStops = cfg.Ingest.StrictUnknownStops
	o.Pretty = cfg.Output.Pretty
	o.Indent = cfg.Output.Indent
	o.LogFormat = cfg.Logging.Format
	switch cfg.Logging.Level {
	case "debug":
		o.LogLevel = logging.LevelDebug
	case "warn":
		o.LogLevel = logging.LevelWarn
	case "error":
		o.LogLevel = logging.LevelError
	default:
		o.LogLevel = logging.LevelInfo
	}
	return o
}

// WithStrictUnknownStops toggles rejection of buses referencing unknown
// stops and returns the options for chaining.
func (o *Options) WithStrictUnknownStops(strict bool) *Options {
	o.StrictUnknownStops = strict
	return o
}

// WithPretty toggles indented JSON output and returns the options for chaining.
func (o *Options) WithPretty(pretty bool) *Options {
	o.Pretty = pretty
	return o
}

// WithIndent sets the indentation width and returns the options for chaining.
func (o *Options) WithIndent(indent int) *Options {
	o.Indent = indent
	return o
}

// WithConfigFile sets the configuration file path and returns the options
// for chaining.
func (o *Options) WithConfigFile(configFile string) *Options {
	o.ConfigFile = configFile
	return o
}

// WithLogLevel sets the logging level and returns the options for chaining.
func (o *Options) WithLogLevel(level logging.LogLevel) *Options {
	o.LogLevel = level
	return o
}

// WithLogFormat sets the log output format and returns the options for chaining.
func (o *Options) WithLogFormat(format string) *Options {
	o.LogFormat = format
	return o
}

// WithLogger sets a custom logger instance and returns the options for
// chaining. When set, LogLevel and LogFormat are ignored.
func (o *Options) WithLogger(logger *logging.Logger) *Options {
	o.Logger = logger
	return o
}

// GetLogger returns the logger instance to use for processing.
func (o *Options) GetLogger() *logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return logging.NewLogger(logging.LoggerConfig{
		Level:         o.LogLevel,
		Format:        o.LogFormat,
		Component:     "transport-catalogue",
		IncludeSource: o.LogLevel == logging.LevelDebug,
	})
}

package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithOutput returns an option that sets the log output writer.
func WithOutput(w io.Writer) Option {
	return func(cfg config) config {
		cfg.output = w

		return cfg
	}
}

// WithLevel returns an option that sets the minimum log level.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat returns an option that sets the log output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout returns an option that sets the timestamp layout.
// It accepts any layout name defined by the [time] package (such as
// "RFC3339" or "StampMilli") or a literal layout string.
func WithTimeLayout(layout string) Option {
	return func(cfg config) config {
		if named, ok := namedLayouts[layout]; ok {
			layout = named
		}

		cfg.timeLayout = layout

		return cfg
	}
}

// WithCaller returns an option that controls whether log records include
// caller information.
func WithCaller(caller bool) Option {
	return func(cfg config) config {
		cfg.caller = caller

		return cfg
	}
}

// WithPretty returns an option that controls colorized text output.
// It has no effect on the JSON format.
func WithPretty(pretty bool) Option {
	return func(cfg config) config {
		cfg.pretty = pretty

		return cfg
	}
}

package cli

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/iniq/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing
// us to configure the logger early enough to affect error messages
// during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing
// us to configure the logger early enough to affect error messages
// during parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"json"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"false"                                      help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger flags before Kong parses anything. This keeps diagnostics
// emitted during parsing consistent with the requested configuration.
func (f *logConfig) scan(args []string) {
	flags := map[string]func(string){
		"--log-level": func(v string) {
			log.Config(log.WithLevel(log.ParseLevel(v)))
		},
		"--log-format": func(v string) {
			log.Config(log.WithFormat(log.ParseFormat(v)))
		},
		"--log-pretty": func(v string) {
			pretty, err := strconv.ParseBool(v)
			if err != nil {
				pretty = true
			}

			log.Config(log.WithPretty(pretty))
		},
		"--no-log-pretty": func(string) {
			log.Config(log.WithPretty(false))
		},
	}

	for i, arg := range args {
		for name, set := range flags {
			switch {
			case arg == name:
				if i+1 < len(args) {
					set(args[i+1])
				} else {
					set("")
				}

			case len(arg) > len(name) && arg[:len(name)+1] == name+"=":
				set(arg[len(name)+1:])
			}
		}
	}
}

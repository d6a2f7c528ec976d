// Package logging provides the structured component logger used by the
// application and the command line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"range-remapper/internal/diagnostic"
)

// Format selects the log encoding.
type Format string

// Format values.
const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ComponentLogger provides structured logging for one component.
// base carries every shared field except the component name.
type ComponentLogger struct {
	base   zerolog.Logger
	logger zerolog.Logger
}

// New creates a component logger writing to w. Level names are matched
// case-insensitively (INFO, debug, ...).
func New(w io.Writer, component, version string, format Format, level string) (*ComponentLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var out io.Writer
	switch format {
	case FormatJSON:
		out = w
	case FormatConsole, "":
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
		if f, ok := w.(*os.File); ok && isTerminal(f) {
			cw.Out = colorable.NewColorable(f)
			cw.NoColor = false
		}
		out = cw
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	base := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("version", version).
		Logger()

	return withComponent(base, component), nil
}

func withComponent(base zerolog.Logger, component string) *ComponentLogger {
	return &ComponentLogger{
		base:   base,
		logger: base.With().Str("component", component).Logger(),
	}
}

// Nop returns a logger that discards everything.
func Nop() *ComponentLogger {
	return &ComponentLogger{base: zerolog.Nop(), logger: zerolog.Nop()}
}

// ParseLevel maps a level name onto a zerolog level. An empty name is info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}

	return lvl, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Info returns an info level event
func (cl *ComponentLogger) Info() *zerolog.Event {
	return cl.logger.Info()
}

// Debug returns a debug level event
func (cl *ComponentLogger) Debug() *zerolog.Event {
	return cl.logger.Debug()
}

// Warn returns a warn level event
func (cl *ComponentLogger) Warn() *zerolog.Event {
	return cl.logger.Warn()
}

// Error returns an error level event
func (cl *ComponentLogger) Error() *zerolog.Event {
	return cl.logger.Error()
}

// Child returns a logger for a sub-component sharing the same output. The
// child's component replaces the parent's rather than adding a second field.
func (cl *ComponentLogger) Child(component string) *ComponentLogger {
	return withComponent(cl.base, component)
}

// LogDiagnostics writes every diagnostic at its severity's level.
func (cl *ComponentLogger) LogDiagnostics(diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, d := range diags.All() {
		var ev *zerolog.Event
		switch d.Severity {
		case diagnostic.SeverityError:
			ev = cl.Error()
		case diagnostic.SeverityWarning:
			ev = cl.Warn()
		default:
			ev = cl.Info()
		}

		ev.Str("code", d.Code).
			Str("stage", d.Stage).
			Str("location", d.Location).
			Msg(d.Message)
	}
}

// =============================================================================
// CSV to SEPA XML Converter - Logging
// =============================================================================
//
// Components log through the small Logger interface defined here so the
// core packages never touch process-wide logging state and tests can
// capture output. The default implementation writes to the console and to
// a size-rotated log file (sepa_converter.log next to the binary unless
// configured otherwise).
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface injected into components that need to
// report progress, warnings, or errors.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Options controls construction of the standard logger.
type Options struct {
	// LogFile is the path of the rotating log file. Empty disables file
	// logging.
	LogFile string

	// Verbose enables Debug output.
	Verbose bool

	// Quiet suppresses console output entirely; the log file (if any)
	// still receives everything.
	Quiet bool
}

// stdLogger writes leveled lines through a standard library *log.Logger.
type stdLogger struct {
	out     *log.Logger
	verbose bool
}

// New builds a Logger from the given options.
func New(opts Options) Logger {
	var writers []io.Writer

	if !opts.Quiet {
		writers = append(writers, os.Stderr)
	}

	if opts.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
		})
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	return &stdLogger{
		out:     log.New(io.MultiWriter(writers...), "", log.LstdFlags),
		verbose: opts.Verbose,
	}
}

// Nop returns a Logger that discards everything. Useful in tests.
func Nop() Logger {
	return &stdLogger{out: log.New(io.Discard, "", 0)}
}

func (l *stdLogger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.logf("DEBUG", format, args...)
	}
}

func (l *stdLogger) Info(format string, args ...interface{}) {
	l.logf("INFO", format, args...)
}

func (l *stdLogger) Warn(format string, args ...interface{}) {
	l.logf("WARNING", format, args...)
}

func (l *stdLogger) Error(format string, args ...interface{}) {
	l.logf("ERROR", format, args...)
}

func (l *stdLogger) logf(level, format string, args ...interface{}) {
	l.out.Printf("%s - %s", level, fmt.Sprintf(format, args...))
}

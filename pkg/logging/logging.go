// Package logging configures the process-wide zerolog logger. The console
// writer goes to stderr so command output on stdout stays clean; a copy of
// every record is appended to a log file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFile is the log file location relative to the XDG state home
const DefaultLogFile = "scribe/scribe.log"

// openFile is the log file of the last Setup; it is closed when Setup runs again
var (
	fileMu   sync.Mutex
	openFile *os.File
)

// Options controls logger setup
type Options struct {
	// Verbosity maps 0 to warn, 1 to info, 2 to debug and 3+ to trace
	Verbosity int
	// Console receives human-readable output; defaults to os.Stderr
	Console io.Writer
	// NoColor disables ANSI colors on the console
	NoColor bool
	// LogFile overrides the log file path; "-" disables file logging
	LogFile string
}

// Setup configures the global logger and returns the log file in use, or ""
// when logging to the console only
func Setup(opts Options) string {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	logFile := opts.LogFile
	var fileErr error
	var file *os.File
	if logFile != "-" {
		if logFile == "" {
			logFile, fileErr = xdg.StateFile(DefaultLogFile)
		}
		if fileErr == nil {
			if file, fileErr = openLogFile(logFile); fileErr == nil {
				writers = append(writers, file)
			}
		}
		if fileErr != nil {
			logFile = ""
		}
	} else {
		logFile = ""
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	replaceOpenFile(file)

	if fileErr != nil {
		log.Warn().Err(fileErr).Msg("Failed to create log file, logging to console only")
	}

	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
	return logFile
}

// LevelFor maps a -v count to a zerolog level
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// replaceOpenFile records file as the current log file and closes the one a
// previous Setup opened
func replaceOpenFile(file *os.File) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if openFile != nil && openFile != file {
		_ = openFile.Close()
	}
	openFile = file
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a CLI command with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
	runID   string
)

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time("ts", time.Now())
}

// Dir returns the directory holding the log file
func Dir() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "ews")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "ews")
}

// Path returns the log file location
func Path() string {
	return filepath.Join(Dir(), "ews.log")
}

// Init initializes the logging system with zerolog.
// Every line of this process carries the same random run ID so that lines
// from overlapping invocations can be told apart. If the log file cannot be
// opened the logger stays disabled and the error is returned.
func Init() error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f

	// Set global level to Info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure field names
	zerolog.MessageFieldName = "msg"

	runID = uuid.New().String()
	Logger = zerolog.New(logFile).With().Str("run", runID).Logger().Hook(timestampHook{})

	return nil
}

// SetDebug switches the global level between Debug and Info
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// RunID returns the ID tagging this process's log lines
func RunID() string {
	return runID
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = zerolog.Nop()
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}

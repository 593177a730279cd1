// Package logging points the go-logger package loggers at dirsweep's log file.
//
// go-logger writes to the console by default. The interface runs on the
// alternate screen, so every level logger is redirected to the file instead.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mordilloSan/go-logger/logger"
)

var (
	mu   sync.Mutex
	file *os.File
)

// ParseLevel converts a config or flag value into the minimum level logged.
func ParseLevel(s string) (logger.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return logger.DebugLevel, nil
	case "", "info":
		return logger.InfoLevel, nil
	case "warn", "warning":
		return logger.WarnLevel, nil
	case "error":
		return logger.ErrorLevel, nil
	default:
		return logger.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// levelsFrom returns min and every more severe level.
func levelsFrom(min logger.Level) []logger.Level {
	all := logger.AllLevels()
	for i, l := range all {
		if l == min {
			return all[i:]
		}
	}
	return all
}

// Init opens (appending) the log file at path and sends every level logger there.
// Parent directories are created as needed.
func Init(path string, min logger.Level) error {
	if path == "" {
		return fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	file = f
	install(f, min)
	return nil
}

// SetOutput sends every level logger to w. Tests use it to capture output.
func SetOutput(w io.Writer, min logger.Level) {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	install(w, min)
}

// Close discards further log output and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range levelLoggers() {
		l.SetOutput(io.Discard)
	}
	return closeFileLocked()
}

func install(w io.Writer, min logger.Level) {
	logger.Init(logger.Config{
		Levels:             levelsFrom(min),
		IncludeLevelPrefix: true,
	})
	for _, l := range levelLoggers() {
		l.SetOutput(w)
		l.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lmsgprefix)
	}
}

func levelLoggers() []*log.Logger {
	return []*log.Logger{
		logger.Debug, logger.Info, logger.Notice, logger.Warning, logger.Error,
		logger.Crit, logger.Alert, logger.Emerg, logger.Fatal,
	}
}

func closeFileLocked() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

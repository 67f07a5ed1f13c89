package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB
)

// SetupLogging returns a file logger under logs/ when debug is set
// Without debug, or when the file cannot be opened, logging is disabled so
// nothing reaches the terminal; the returned file is nil in that case
func SetupLogging(debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake_%s.log", time.Now().Format("20060102_150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	logger.Info().Int("pid", os.Getpid()).Msg("Logging started")
	return logger, f
}

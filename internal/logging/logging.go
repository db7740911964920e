package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger writing human-readable lines to the console
// and, when filePath is non-empty, appending JSON lines to a log file.
// The returned closer releases the file handle and may be nil.
func New(level, filePath string) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	if filePath == "" {
		logger := zerolog.New(console).Level(lvl).With().Timestamp().Logger()
		return logger, nil, nil
	}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
	}

	writer := zerolog.MultiLevelWriter(console, f)
	logger := zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
	return logger, f.Close, nil
}

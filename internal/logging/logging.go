package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger. A nil out writes to stderr so log lines stay off
// the console's stdout.
func SetupLogging(level string, out io.Writer) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	if out == nil {
		out = os.Stderr
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}

	return &logger, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

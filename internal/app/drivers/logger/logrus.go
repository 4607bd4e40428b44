package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is the human-facing logger of the command line tool.
func NewLogrusLogger(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

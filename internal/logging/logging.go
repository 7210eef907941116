// Package logging builds the logrus loggers used across the application.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/stahnma/gh-devfinder/internal/config"
)

// New creates a logger writing to w. DEBUG forces the debug level;
// otherwise the configured level applies, falling back to info.
func New(cfg config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if cfg.DebugMode {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !isTerminal(w),
			FullTimestamp: true,
		})
	}
	return logger
}

// Component returns an entry tagged with the component name.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

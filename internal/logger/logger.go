// Package logger builds the logrus logger shared by the bot
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds logger settings
type Config struct {
	// Level is a logrus level name, info when empty or invalid
	Level string

	// Format is "json" or "text"
	Format string

	// Output defaults to stdout
	Output io.Writer
}

// New creates a configured logger
func New(cfg *Config) *logrus.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	log := logrus.New()

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		if cfg.Level != "" {
			log.Warnf("Invalid log level '%s', defaulting to info", cfg.Level)
		}
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}

// Component returns an entry tagged with the component name
func Component(log logrus.FieldLogger, name string) logrus.FieldLogger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("component", name)
}

package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the service logger. Output is JSON on stdout so log
// aggregators can index the request fields added by the middleware.
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

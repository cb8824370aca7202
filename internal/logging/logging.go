// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
)

// Setup applies level and format and installs the Rollbar hook when a token
// is configured. The returned func flushes pending reports.
func Setup(cfg *config.Config) func() {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	if cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Logging.RollbarToken == "" {
		return func() {}
	}

	hook := NewRollbarHook(cfg.Logging.RollbarToken, cfg.Environment, cfg.Server.Host, cfg.Logging.Build)
	logrus.AddHook(hook)
	logrus.WithField("environment", cfg.Environment).Info("Rollbar error reporting enabled")
	return hook.Close
}

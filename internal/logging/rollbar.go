package logging

import (
	"errors"

	"github.com/rollbar/rollbar-go"
	"github.com/sirupsen/logrus"
)

// reporter is the subset of *rollbar.Client the hook needs.
type reporter interface {
	ErrorWithExtras(level string, err error, extras map[string]interface{})
	MessageWithExtras(level string, msg string, extras map[string]interface{})
	Close() error
}

// RollbarHook forwards error and worse log entries to Rollbar.
type RollbarHook struct {
	client reporter
}

func NewRollbarHook(token, environment, host, build string) *RollbarHook {
	client := rollbar.New(token, environment, build, host, "")
	return &RollbarHook{client: client}
}

func (h *RollbarHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

func (h *RollbarHook) Fire(entry *logrus.Entry) error {
	level := rollbar.ERR
	if entry.Level <= logrus.FatalLevel {
		level = rollbar.CRIT
	}

	extras := make(map[string]interface{}, len(entry.Data)+1)
	var cause error
	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				cause = err
				continue
			}
		}
		extras[k] = v
	}
	extras["message"] = entry.Message

	if cause != nil {
		h.client.ErrorWithExtras(level, errors.New(entry.Message+": "+cause.Error()), extras)
		return nil
	}
	h.client.MessageWithExtras(level, entry.Message, extras)
	return nil
}

// Close waits for queued reports to be sent.
func (h *RollbarHook) Close() {
	_ = h.client.Close()
}

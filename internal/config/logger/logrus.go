package logger

import (
	"io"
	"os"

	"uni-seeder/internal/config/env"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// NewLogger writes progress lines to out, or stderr when out is nil, so
// stdout stays free for whatever a run is piped into. log.format "json"
// emits one object per line for collectors; anything else is text.
func NewLogger(config *env.Config, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.Level(config.Log.Level))

	if config.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
		return log
	}

	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     !config.Log.NoColor,
		DisableColors:   config.Log.NoColor,
		TimestampFormat: timestampFormat,
		FullTimestamp:   true,
	})
	return log
}

package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// BootstrapLogger replaces the default logger with the service logger.
// An unknown level falls back to debug.
func BootstrapLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}

	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		},
		ReportCaller: true,
		Level:        lvl,
		ExitFunc:     os.Exit,
	}
}

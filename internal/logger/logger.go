// Package logger configures the shared logrus instance.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger instance.
var Log = logrus.New()

// Init configures the shared logger. Unknown levels fall back to info.
func Init(levelStr string) {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
	Log.SetOutput(os.Stdout)
}

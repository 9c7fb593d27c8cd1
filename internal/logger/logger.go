package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// filePath is remembered so the /logs endpoint can serve the sink.
var filePath string

// Init configures the process logger. Lines go to stdout and, when path is
// non-empty, are mirrored into a log file.
func Init(path string) {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
	log.SetOutput(os.Stdout)

	if path == "" {
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithField("path", path).WithError(err).Warn("log file unavailable, stdout only")
		return
	}

	filePath = path
	log.SetOutput(io.MultiWriter(os.Stdout, f))
}

// FilePath returns the active log file path, or "" when logging to stdout only.
func FilePath() string {
	return filePath
}

func Info(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Info(msg)
}

func Warn(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Warn(msg)
}

func Error(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Error(msg)
}

func Fatal(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Fatal(msg)
}

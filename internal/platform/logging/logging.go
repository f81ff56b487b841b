// Package logging configures the process-wide logger.
package logging

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures Logrus for the whole process from environment variables:
//
//   - LOG_LEVEL: logrus level name, default "info"
//   - LOG_FILE: when set, logs rotate through this file via Lumberjack
//   - LOG_MAX_SIZE_MB: rotation size in megabytes, default 10
//   - LOG_MAX_BACKUPS: rotated files to keep, default 5
//
// Console output stays on in all cases; the file writer is additive.
func Setup(appName string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		logrus.Warnf("Invalid log level %q, defaulting to info", levelStr)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	writers := []io.Writer{os.Stdout}
	if file := os.Getenv("LOG_FILE"); file != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    envInt("LOG_MAX_SIZE_MB", 10),
			MaxBackups: envInt("LOG_MAX_BACKUPS", 5),
			Compress:   true,
		})
	}
	logrus.SetOutput(io.MultiWriter(writers...))

	logrus.WithField("app", appName).Infof("Logging configured: level=%s", level)
}

// envInt reads an integer environment variable, returning def when unset or
// unparsable.
func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	Level       string
	FormatJSON  bool
	LogFileName string
}

// Setup configures the global logrus logger. With a file name set, logs
// go to a size-rotated file and stdout; otherwise stdout only.
func Setup(params SetupParams) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(Level(params.Level))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	rotated := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotated))
}

// Level parses a level name, defaulting to info.
func Level(name string) logrus.Level {
	switch strings.ToLower(name) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ABOUTME: Logrus logger setup with optional rotating file output.
// ABOUTME: Stdout stays clean for command output and the MCP stdio transport.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params configures Setup.
type Params struct {
	Level      string
	FileName   string
	AlsoStderr bool
	FormatJSON bool
}

// Setup builds a logger from params. With no FileName, logs go to stderr.
func Setup(params Params) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(GetLevel(params.Level))

	if params.FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.FileName == "" {
		log.SetOutput(os.Stderr)
		return log
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:   params.FileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}

	if params.AlsoStderr {
		log.SetOutput(io.MultiWriter(os.Stderr, rotating))
	} else {
		log.SetOutput(rotating)
	}
	return log
}

// GetLevel maps a level name to a logrus level, defaulting to warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

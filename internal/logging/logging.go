// Package logging provides leveled loggers which write to stderr.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger

	out   io.Writer = os.Stderr
	level           = LevelWarning
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debugLog = log.New(io.Discard, "D ", flags)
	infoLog = log.New(io.Discard, "I ", flags)
	warningLog = log.New(io.Discard, "W ", flags)
	errorLog = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// ParseLevel converts a level name ("debug", "info", "warning", "error")
// into a Level. Unknown names disable logging.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelNone
	}
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	level = l
	apply()
}

// SetOutput redirects all enabled loggers to w.
func SetOutput(w io.Writer) {
	out = w
	apply()
}

func apply() {
	for i, lg := range []*log.Logger{debugLog, infoLog, warningLog, errorLog} {
		if Level(i) >= level {
			lg.SetOutput(out)
		} else {
			lg.SetOutput(io.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debugLog.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	infoLog.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warningLog.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errorLog.Printf(msg, v...)
}

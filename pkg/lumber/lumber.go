// Package lumber provides the structured logger used across bucketeer.
package lumber

import (
	"errors"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]interface{}

// A global variable so that log functions can be directly accessed
var log Logger

// Log levels
const (
	// Debug has verbose message
	Debug = "debug"
	// Info is default log level
	Info = "info"
	// Warn is for logging messages about possible issues
	Warn = "warn"
	// Error is for logging errors
	Error = "error"
	// Fatal is for logging fatal messages. The system shutdowns after logging the message.
	Fatal = "fatal"
)

// Logger instances
const (
	InstanceZapLogger int = iota
	InstanceLogrusLogger
)

var errInvalidLoggerInstance = errors.New("invalid logger instance")

// Logger is our contract for the logger
type Logger interface {
	Debugf(format string, args ...interface{})

	Infof(format string, args ...interface{})

	Warnf(format string, args ...interface{})

	Errorf(format string, args ...interface{})

	Fatalf(format string, args ...interface{})

	Panicf(format string, args ...interface{})

	WithFields(keyValues Fields) Logger
}

// LoggingConfig stores the config for the logging.
// For some loggers there can only be one level across writers, for such the level of Console is picked by default
type LoggingConfig struct {
	EnableConsole     bool
	ConsoleJSONFormat bool
	ConsoleLevel      string
	EnableFile        bool
	FileJSONFormat    bool
	FileLevel         string
	FileLocation      string
}

// NewLogger returns an instance of logger
func NewLogger(config LoggingConfig, verbose bool, loggerInstance int) (Logger, error) {
	if verbose {
		config.ConsoleLevel = Debug
		config.FileLevel = Debug
	}
	switch loggerInstance {
	case InstanceZapLogger:
		logger, err := newZapLogger(config)
		if err != nil {
			return nil, err
		}
		log = logger
		return logger, nil
	case InstanceLogrusLogger:
		logger, err := newLogrusLogger(config)
		if err != nil {
			return nil, err
		}
		log = logger
		return logger, nil
	default:
		return nil, errInvalidLoggerInstance
	}
}

// Debugf logs through the logger created by the last NewLogger call.
func Debugf(format string, args ...interface{}) {
	if log != nil {
		log.Debugf(format, args...)
	}
}

// Infof logs through the logger created by the last NewLogger call.
func Infof(format string, args ...interface{}) {
	if log != nil {
		log.Infof(format, args...)
	}
}

// Warnf logs through the logger created by the last NewLogger call.
func Warnf(format string, args ...interface{}) {
	if log != nil {
		log.Warnf(format, args...)
	}
}

// Errorf logs through the logger created by the last NewLogger call.
func Errorf(format string, args ...interface{}) {
	if log != nil {
		log.Errorf(format, args...)
	}
}

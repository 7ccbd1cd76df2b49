// Package errlvl attaches a severity level to errors so that callers
// (loggers, Sentry reporting) can decide how loud to be about them.
package errlvl

import (
	"errors"
	"fmt"
)

type Lvl uint8

const (
	DEBUG Lvl = iota + 1
	INFO
	WARN
	ERROR
	FATAL
)

// ErrorLevel is a type that represents the severity of an error in the application.
type ErrorLevel error

var (
	ErrDebug ErrorLevel = errors.New("[DEBUG]") // ErrDebug marks errors that are only interesting during development.
	ErrInfo  ErrorLevel = errors.New("[INFO]")  // ErrInfo marks expected, recoverable errors (bad input, empty results).
	ErrWarn  ErrorLevel = errors.New("[WARN]")  // ErrWarn marks errors that degrade a result but do not abort it.
	ErrError ErrorLevel = errors.New("[ERROR]") // ErrError marks operation failures that should be investigated.
	ErrFatal ErrorLevel = errors.New("[FATAL]") // ErrFatal marks errors after which the process cannot continue.
)

// Wrap wraps the given error with the given level. If the error already
// carries a level, it is returned unchanged so the first classification wins.
func Wrap(err error, level Lvl) error {
	if hasLevel(err) {
		return err
	}

	switch level {
	case DEBUG:
		return fmt.Errorf("%w %w", ErrDebug, err)
	case INFO:
		return fmt.Errorf("%w %w", ErrInfo, err)
	case WARN:
		return fmt.Errorf("%w %w", ErrWarn, err)
	case ERROR:
		return fmt.Errorf("%w %w", ErrError, err)
	case FATAL:
		return fmt.Errorf("%w %w", ErrFatal, err)
	default:
		return fmt.Errorf("%w %w", ErrError, err)
	}
}

// hasLevel checks if the given error has a level set already.
func hasLevel(err error) bool {
	return errors.Is(err, ErrDebug) || errors.Is(err, ErrInfo) || errors.Is(err, ErrWarn) || errors.Is(err, ErrError) || errors.Is(err, ErrFatal)
}

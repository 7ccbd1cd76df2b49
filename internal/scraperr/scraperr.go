// Package scraperr reports classified scraper errors to Sentry.
package scraperr

import (
	"errors"

	"github.com/getsentry/sentry-go"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

type sentryHub interface {
	CaptureException(exception error) *sentry.EventID
	WithScope(callback func(scope *sentry.Scope))
}

// CaptureException captures err under the given exception name with the
// Sentry level derived from the error's severity wrapping. Without the
// rename every event shows up as errors.joinError, which groups badly.
func CaptureException(name string, hub sentryHub, err error) {
	level := levelFor(err)
	hub.WithScope(func(scope *sentry.Scope) {
		scope.AddEventProcessor(func(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			// e.Exception is bottom-up; the top of the stack is the last element.
			e.Exception[len(e.Exception)-1].Type = name
			e.Level = level
			return e
		})
		hub.CaptureException(err)
	})
}

// levelFor maps the error's severity wrapping to a Sentry level.
func levelFor(err error) sentry.Level {
	switch {
	case errors.Is(err, errlvl.ErrError):
		return sentry.LevelError
	case errors.Is(err, errlvl.ErrFatal):
		return sentry.LevelFatal
	case errors.Is(err, errlvl.ErrWarn):
		return sentry.LevelWarning
	case errors.Is(err, errlvl.ErrInfo):
		return sentry.LevelInfo
	case errors.Is(err, errlvl.ErrDebug):
		return sentry.LevelDebug
	case err == nil:
		return sentry.LevelDebug
	default:
		return sentry.LevelError
	}
}

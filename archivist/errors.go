package archivist

import (
	"errors"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

// archivistError is a service-level error type.
type archivistError error

var (
	errURLEmpty         archivistError = errors.New("url is empty")
	errURLTooLong       archivistError = errors.New("url is too long")
	errTitleTooLong     archivistError = errors.New("title is too long")
	errSourceTooLong    archivistError = errors.New("source is too long")
	errSectionTooLong   archivistError = errors.New("section is too long")
	errNewsValidation   archivistError = errors.New("news validation failed")
	errNewsCreation     archivistError = errors.New("news creation failed")
	errNewsFindByUrls   archivistError = errors.New("failed to find news by urls")
	errNewsFindRecent   archivistError = errors.New("failed to find recent news")
	errEncodeExtras     archivistError = errors.New("failed to encode news extras")
	errFailedMigration  archivistError = errors.New("failed to migrate schema")
	errFailedConnection archivistError = errors.New("failed to connect to database")
)

// newError creates a wrapped error instance with the given errors.
func newError(lvl errlvl.Lvl, genericErr archivistError, err error) error {
	var wrappedErr error
	if err != nil {
		wrappedErr = errlvl.Wrap(errors.Join(genericErr, err), lvl)
	} else {
		wrappedErr = errlvl.Wrap(genericErr, lvl)
	}

	return wrappedErr
}

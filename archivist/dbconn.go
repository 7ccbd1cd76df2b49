package archivist

import (
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

// connectToPG dials Postgres with an exponential backoff, since the database
// container may still be starting when the scraper comes up.
func connectToPG(dsn string) (*gorm.DB, error) {
	bf := backoff.NewExponentialBackOff()
	bf.InitialInterval = 5 * time.Second
	bf.MaxInterval = 20 * time.Second
	bf.MaxElapsedTime = 60 * time.Second

	db, err := backoff.RetryWithData[*gorm.DB](func() (*gorm.DB, error) {
		conn, err := gorm.Open(postgres.New(postgres.Config{
			DSN: dsn,
		}))
		if err != nil {
			slog.Warn("postgres not yet ready", "error", err)
			return nil, err
		}
		return conn, nil
	}, bf)
	if err != nil {
		return nil, newError(errlvl.FATAL, errFailedConnection, err)
	}

	return db, nil
}

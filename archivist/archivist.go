// Package archivist stores scraped news in Postgres and answers the
// deduplication queries the crawler runs before fetching an article.
package archivist

import (
	"gorm.io/gorm"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
)

// Entities contains all the entities the Archivist is responsible for.
type Entities struct {
	News *NewsDB
}

// Archivist is responsible for storing and retrieving data from the database.
type Archivist struct {
	db       *gorm.DB
	Entities *Entities
}

// NewArchivist creates a new Archivist with the provided DSN.
//
// DSN format: "user=gorm password=gorm dbname=gorm port=9920 sslmode=disable"
func NewArchivist(dsn string) (*Archivist, error) {
	conn, err := connectToPG(dsn)
	if err != nil {
		return nil, err
	}

	// Migrate the schema automatically for now.
	// TODO: Add migration tool later.
	err = conn.AutoMigrate(&News{})
	if err != nil {
		return nil, newError(errlvl.FATAL, errFailedMigration, err)
	}

	return &Archivist{
		db: conn,
		Entities: &Entities{
			News: NewNewsDB(conn),
		},
	}, nil
}

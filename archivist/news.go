package archivist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ns-bitcoding/News-Scraper/pkg/errlvl"
	"github.com/ns-bitcoding/News-Scraper/scraper"
)

// NewsDB is the accessor for the news table.
type NewsDB struct {
	Conn *gorm.DB
}

func NewNewsDB(db *gorm.DB) *NewsDB {
	return &NewsDB{Conn: db.Table("news")}
}

// News is one stored article. The URL is the dedup identity; the crawler
// never writes the same URL twice.
type News struct {
	ID         uuid.UUID      `gorm:"primaryKey;type:uuid;not null;" json:"id"`
	URL        string         `gorm:"size:512;uniqueIndex;not null;" json:"url"`
	Title      string         `gorm:"size:512" json:"title"`
	Source     string         `gorm:"size:64" json:"source"`
	Section    string         `gorm:"size:128" json:"section"` // listing the crawler found the article on
	PostedDate string         `gorm:"size:32" json:"posted_date"`
	PostedTime string         `gorm:"size:32" json:"posted_time"`
	Content    string         `json:"content"`
	Extras     datatypes.JSON `gorm:"" json:"extras"` // images and in-body links
	CreatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// newsExtras is the shape stored in the Extras JSON column.
type newsExtras struct {
	Images    []scraper.Image    `json:"image,omitempty"`
	TextLinks []scraper.TextLink `json:"text_link,omitempty"`
}

// FromRecord maps a scraped record to a storable row.
func FromRecord(r *scraper.NewsRecord, section string) (*News, error) {
	extras, err := json.Marshal(newsExtras{
		Images:    r.Images,
		TextLinks: r.TextLinks,
	})
	if err != nil {
		return nil, newError(errlvl.ERROR, errEncodeExtras, err)
	}

	return &News{
		URL:        r.URL,
		Title:      r.Title,
		Source:     r.Source,
		Section:    section,
		PostedDate: r.PostedDate,
		PostedTime: r.PostedTime,
		Content:    r.Content,
		Extras:     extras,
	}, nil
}

func (n *News) Validate() error {
	if n.URL == "" {
		return newError(errlvl.INFO, errURLEmpty, nil)
	}

	if len(n.URL) > 512 {
		return newError(errlvl.INFO, errURLTooLong, nil)
	}

	if len(n.Title) > 512 {
		return newError(errlvl.INFO, errTitleTooLong, nil)
	}

	if len(n.Source) > 64 {
		return newError(errlvl.INFO, errSourceTooLong, nil)
	}

	if len(n.Section) > 128 {
		return newError(errlvl.INFO, errSectionTooLong, nil)
	}

	return nil
}

func (n *News) BeforeCreate(*gorm.DB) error {
	n.ID = uuid.New()

	err := n.Validate()
	if err != nil {
		return newError(errlvl.INFO, errNewsValidation, err)
	}

	return nil
}

func (db *NewsDB) Create(ctx context.Context, n []*News) error {
	res := db.Conn.WithContext(ctx).Create(&n)
	if res.Error != nil {
		return newError(errlvl.ERROR, errNewsCreation, res.Error)
	}

	return nil
}

// FindAllByUrls finds stored news rows by URL.
func (db *NewsDB) FindAllByUrls(ctx context.Context, urls []string) ([]*News, error) {
	var n []*News
	res := db.Conn.WithContext(ctx).Where("url IN ?", urls).Find(&n)
	if res.Error != nil {
		return nil, newError(errlvl.ERROR, errNewsFindByUrls, res.Error)
	}

	return n, nil
}

// ExistingUrls returns the subset of urls that are already stored. The
// crawler seeds its in-memory seen-set with this on startup.
func (db *NewsDB) ExistingUrls(ctx context.Context, urls []string) ([]string, error) {
	var stored []string
	res := db.Conn.WithContext(ctx).Model(&News{}).Where("url IN ?", urls).Pluck("url", &stored)
	if res.Error != nil {
		return nil, newError(errlvl.ERROR, errNewsFindByUrls, res.Error)
	}

	return stored, nil
}

// FindAllSince finds all news created after the given time.
func (db *NewsDB) FindAllSince(ctx context.Context, since time.Time) ([]*News, error) {
	var n []*News
	res := db.Conn.WithContext(ctx).Where("created_at >= ?", since).Find(&n)
	if res.Error != nil {
		return nil, newError(errlvl.ERROR, errNewsFindRecent, res.Error)
	}

	return n, nil
}

package scraper

// NewsRecord is the normalized shape every news extractor produces,
// regardless of which site it came from. Every field is best-effort: a field
// the source page lacks stays an empty string. Identity for deduplication
// purposes is the URL.
type NewsRecord struct {
	URL        string     `json:"url"`
	Title      string     `json:"title"`
	Source     string     `json:"source,omitempty"`
	Time       string     `json:"time,omitempty"`
	PostedDate string     `json:"posted_date,omitempty"`
	PostedTime string     `json:"posted_time,omitempty"`
	Content    string     `json:"content,omitempty"`
	Images     []Image    `json:"image,omitempty"`
	TextLinks  []TextLink `json:"text_link,omitempty"`
}

// Image is an article image together with its caption/copyright line.
type Image struct {
	Text string `json:"image_text"`
	URL  string `json:"image"`
}

// TextLink is an in-body hyperlink extracted from an article.
type TextLink struct {
	Name string `json:"text_name"`
	Href string `json:"text_href"`
}

// Operation names one scrape recipe of a source domain.
type Operation string

const (
	OpLatestNews Operation = "latest-news"
	OpSearch     Operation = "search"
	OpDetail     Operation = "detail-page"
)

package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

// AbsoluteURL resolves href against base. Scrapers get a mix of absolute and
// site-relative links; relative ones are joined with the site base URL.
// If either side is unparsable the href is returned as-is.
func AbsoluteURL(base, href string) string {
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

// ParseDate parses a date string into a time.Time object in UTC.
// Feed and API timestamps come in several layouts, so a list is tried in order.
func ParseDate(dateString string) (time.Time, error) {
	if dateString == "" {
		return time.Time{}, nil
	}

	layouts := []string{
		time.RFC1123,
		time.RFC1123Z,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	var parsedTime time.Time
	var err error

	for _, layout := range layouts {
		parsedTime, err = time.Parse(layout, dateString)
		if err == nil {
			return parsedTime.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("error parsing date: %s", dateString)
}

// ReplaceUnicodeSymbols replaces Unicode escape sequences with their corresponding characters.
// Embedded page-state JSON often arrives with escaped entities (e.g. & for &).
func ReplaceUnicodeSymbols(s string) string {
	re := regexp.MustCompile(`\\u([0-9A-Fa-f]{4})`)
	decoded := re.ReplaceAllStringFunc(s, func(match string) string {
		unicodeCode := match[2:] // Ignore "\u" at the beginning
		num, err := strconv.ParseInt(unicodeCode, 16, 32)
		if err != nil {
			return match // If conversion fails, return the original sequence
		}
		return string(rune(num))
	})

	return decoded
}

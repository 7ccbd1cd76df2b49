package scraper

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Article pages embed their structured data as a JSON blob inside the HTML.
// Where the blob lives is site-specific (a conventional script id on one
// site, a JS assignment matched by regex on another); reading fields out of
// the parsed blob is shared and tolerant: a missing key is an empty value,
// not a failure.

var errNoEmbeddedState = errors.New("embedded state block not found in page")

// StateFromScriptID parses the JSON body of the script tag with the given
// id (the __NEXT_DATA__ convention).
func StateFromScriptID(doc *goquery.Document, id string) (map[string]any, error) {
	raw := doc.Find("script#" + id).First().Text()
	if strings.TrimSpace(raw) == "" {
		return nil, errNoEmbeddedState
	}

	var state map[string]any
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return state, nil
}

// StateFromAssignment scans script tags for a `window.<name> = {...}`
// assignment and parses its right-hand side. The capture is anchored on the
// final `};` of the assignment.
func StateFromAssignment(doc *goquery.Document, name string) (map[string]any, error) {
	re := regexp.MustCompile(`(?s)window\.` + regexp.QuoteMeta(name) + `\s*=\s*(\{.*\});`)

	var state map[string]any
	found := false
	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		groups := re.FindStringSubmatch(script.Text())
		if len(groups) < 2 {
			return true
		}
		if err := json.Unmarshal([]byte(groups[1]), &state); err != nil {
			return true
		}
		found = true
		return false
	})

	if !found {
		return nil, errNoEmbeddedState
	}
	return state, nil
}

// Dig walks the parsed state along keys (string for object fields, int for
// array indexes) and returns the node at the end of the path, or nil on any
// miss along the way.
func Dig(state map[string]any, keys ...any) any {
	var cur any = state
	for _, key := range keys {
		switch k := key.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[k]
		case int:
			s, ok := cur.([]any)
			if !ok || k < 0 || k >= len(s) {
				return nil
			}
			cur = s[k]
		default:
			return nil
		}
	}
	return cur
}

// DigString is Dig for string leaves; a miss or a non-string leaf yields "".
func DigString(state map[string]any, keys ...any) string {
	str, ok := Dig(state, keys...).(string)
	if !ok {
		return ""
	}
	return str
}

// SplitTimestamp strips a literal "Published "/"Updated " prefix and splits
// the remainder into date and time components on the first double-space or
// comma-space separator. An empty input produces empty components, never an
// error.
func SplitTimestamp(raw string) (date, clock string) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "Published ")
	s = strings.TrimPrefix(s, "Updated ")

	for _, sep := range []string{"  ", ", "} {
		if i := strings.Index(s, sep); i >= 0 {
			return s[:i], strings.TrimSpace(s[i+len(sep):])
		}
	}
	return s, ""
}

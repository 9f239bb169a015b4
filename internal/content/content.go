// Package content holds one repository per content type. Every call
// re-reads the backing collection from the store and mutations rewrite
// it whole, so there is no cache staleness within a process.
package content

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	projectsFile    = "projects.json"
	caseStudiesFile = "case-studies.json"
	leadershipFile  = "leadership.json"
	contactsFile    = "contacts.json"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrSlugTaken     = errors.New("slug already in use")
	ErrInvalidStatus = errors.New("invalid contact status")
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, no leading or
// trailing hyphen.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime is used for sort comparisons only; unparseable values sort
// as the zero time rather than failing the read path.
func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

package domain

import (
	"regexp"
	"strings"
)

// DestinationPathPrefix is the route prefix every destination href lives
// under. The front end links to destinations through these hrefs.
const DestinationPathPrefix = "/destinasi/"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases a title and collapses whitespace runs into hyphens.
// "Pulau Indah Baru" -> "pulau-indah-baru".
func Slugify(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
}

// DestinationHref builds the href used as the slug-lookup key.
// Note: an update to the title regenerates the href, but the id never
// changes, so old hrefs are not redirected.
func DestinationHref(title string) string {
	return DestinationPathPrefix + Slugify(title)
}

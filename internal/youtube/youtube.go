// Package youtube normalizes YouTube video URLs and collects the links
// discovered during a scraping run.
package youtube

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Source tags where a link was discovered
type Source string

const (
	// SourceEmbed marks links pulled from an embedded frame's src attribute.
	SourceEmbed Source = "iframe"
	// SourcePage marks links found by scanning raw page markup.
	SourcePage Source = "page_source"
)

// Link is one deduplicated YouTube video reference. Immutable once recorded.
type Link struct {
	URL         string
	VideoID     string
	Source      Source
	ExtractedAt time.Time
}

// linkShape identifies one of the URL forms YouTube has used for videos.
type linkShape int

const (
	shapeUnknown linkShape = iota
	shapeShort             // youtu.be/<id>
	shapeWatch             // youtube.com/watch?v=<id>
	shapeEmbed             // youtube.com/embed/<id>
	shapeLegacy            // youtube.com/v/<id>
)

const watchPrefix = "https://www.youtube.com/watch?v="

// validVideoID is the identifier grammar: exactly 11 URL-safe characters.
var validVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// Normalize collapses any recognized YouTube URL form to the canonical
// watch URL. It returns "" for anything that is not a valid video
// reference: unknown hosts, unparseable input, or an identifier that does
// not match the 11-character grammar. Normalizing a canonical URL returns
// it unchanged.
func Normalize(raw string) string {
	id, ok := parseVideoID(raw)
	if !ok {
		return ""
	}
	return WatchURL(id)
}

// WatchURL builds the canonical watch URL for a video identifier.
func WatchURL(id string) string {
	return watchPrefix + id
}

// parseVideoID extracts and validates the video identifier from a raw URL.
func parseVideoID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	id := classify(u).videoID(u)
	if !validVideoID.MatchString(id) {
		return "", false
	}
	return id, true
}

// classify maps a parsed URL to the shape that knows how to pull its
// identifier. Path markers are checked in the order YouTube introduced
// them so that a path like /embed/watch resolves the same way everywhere.
func classify(u *url.URL) linkShape {
	switch u.Host {
	case "www.youtube.com", "youtube.com", "m.youtube.com":
		switch {
		case strings.Contains(u.Path, "/watch"):
			return shapeWatch
		case strings.Contains(u.Path, "/embed/"):
			return shapeEmbed
		case strings.Contains(u.Path, "/v/"):
			return shapeLegacy
		}
	case "youtu.be":
		return shapeShort
	}
	return shapeUnknown
}

// videoID applies the shape's extraction rule. The result is a candidate
// only; length and charset are enforced by the caller.
func (s linkShape) videoID(u *url.URL) string {
	switch s {
	case shapeShort:
		return strings.TrimLeft(u.Path, "/")
	case shapeWatch:
		return u.Query().Get("v")
	case shapeEmbed:
		return segmentAfter(u.Path, "/embed/")
	case shapeLegacy:
		return segmentAfter(u.Path, "/v/")
	}
	return ""
}

// segmentAfter returns the path segment following the last occurrence of
// marker, truncated at the first '?'.
func segmentAfter(path, marker string) string {
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	seg := path[i+len(marker):]
	if j := strings.IndexByte(seg, '?'); j >= 0 {
		seg = seg[:j]
	}
	return seg
}

package youtube

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

// scanShapes are the raw URL forms matched during a bulk text scan.
// Capture of the identifier is deliberately permissive: the length and
// charset check lives in Normalize so it exists in exactly one place.
var scanShapes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)https?://youtu\.be/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?youtube\.com/v/([a-zA-Z0-9_-]+)`),
}

// Extractor collects the YouTube links discovered during one scraping run.
// It keeps a set of canonical URLs for deduplication and an ordered record
// of every first discovery. Not safe for concurrent use; each run owns its
// own Extractor and drives it from a single goroutine.
type Extractor struct {
	seen  map[string]struct{}
	links []Link
}

// NewExtractor returns an empty extraction session.
func NewExtractor() *Extractor {
	return &Extractor{seen: make(map[string]struct{})}
}

// Extract records raw as an embedded-frame discovery. It returns true only
// when raw normalizes to a valid video URL that has not been seen before.
// Anything else, including URLs that fail to parse, is silently ignored.
func (e *Extractor) Extract(raw string) bool {
	canonical, added := e.add(raw, SourceEmbed)
	if added {
		fmt.Printf("  Found YouTube link: %s\n", canonical)
	}
	return added
}

// ExtractAll scans arbitrary text, usually page markup, for every raw URL
// shape and records the new ones with a page-source origin. Matches are
// processed in order of occurrence in the text. The return value counts
// records actually added, not raw matches.
func (e *Extractor) ExtractAll(text string) int {
	type hit struct {
		start int
		raw   string
	}
	var hits []hit
	for _, re := range scanShapes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			hits = append(hits, hit{start: loc[0], raw: text[loc[0]:loc[1]]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	added := 0
	for _, h := range hits {
		canonical, ok := e.add(h.raw, SourcePage)
		if ok {
			fmt.Printf("  Found YouTube link in source: %s\n", canonical)
			added++
		}
	}
	return added
}

// add normalizes raw and commits a record when it is new. Each call either
// fully records one link or changes nothing.
func (e *Extractor) add(raw string, source Source) (string, bool) {
	id, ok := parseVideoID(raw)
	if !ok {
		return "", false
	}
	canonical := WatchURL(id)
	if _, dup := e.seen[canonical]; dup {
		return canonical, false
	}
	e.seen[canonical] = struct{}{}
	e.links = append(e.links, Link{
		URL:         canonical,
		VideoID:     id,
		Source:      source,
		ExtractedAt: time.Now(),
	})
	return canonical, true
}

// Links returns a copy of the discovery records in discovery order.
func (e *Extractor) Links() []Link {
	out := make([]Link, len(e.links))
	copy(out, e.links)
	return out
}

// URLs returns the canonical URLs in lexicographic order.
func (e *Extractor) URLs() []string {
	out := make([]string, 0, len(e.seen))
	for u := range e.seen {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Count reports how many distinct videos have been discovered.
func (e *Extractor) Count() int {
	return len(e.links)
}

// Clear empties the session. Every previously seen URL counts as a fresh
// discovery afterwards.
func (e *Extractor) Clear() {
	e.seen = make(map[string]struct{})
	e.links = e.links[:0]
}

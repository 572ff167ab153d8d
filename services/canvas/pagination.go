package canvas

import "regexp"

// Canvas advertises the next page as `<url>; rel="next"` inside the Link
// response header (RFC 8288 style).
var nextLinkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// nextPageURL extracts the rel="next" target from a Link header. A missing
// or malformed header means the collection is exhausted, not an error.
func nextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}
	m := nextLinkRegex.FindStringSubmatch(linkHeader)
	if m == nil {
		return ""
	}
	return m[1]
}

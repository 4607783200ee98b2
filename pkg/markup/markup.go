// Package markup abstracts structured-HTML parsing behind a capability
// interface with a precise goquery-backed implementation and a degraded
// regex fallback. The fallback is best-effort and excluded from bit-exact
// guarantees; both produce the same record shape.
package markup

// Parser extracts structured markup signals from raw document content.
type Parser interface {
	// Name identifies the implementation for logging.
	Name() string
	// Degraded reports whether this is the best-effort regex path.
	Degraded() bool
	// JSONLDTypes returns the @type values of every parseable JSON-LD block.
	// Malformed blocks are skipped, never fatal.
	JSONLDTypes(content string) []string
	// MetaTagCount counts Open Graph / Twitter meta tags.
	MetaTagCount(content string) int
	// HasMetaImage reports whether an og:image or twitter:image tag names a
	// share image.
	HasMetaImage(content string) bool
	// ImageAlt locates the alt text for an HTML image by its src value.
	ImageAlt(content, src string) (alt string, ok bool)
}

// Select returns the parser implementation for the process. The degraded
// regex path exists for parity with environments lacking an HTML parser and
// can be forced for troubleshooting.
func Select(degraded bool) Parser {
	if degraded {
		return &RegexParser{}
	}
	return &DocumentParser{}
}

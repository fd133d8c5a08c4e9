package utils

import (
	"mime"
	"regexp"
)

var (
	// textContentTypePatterns is a slice of regular expressions that match content types
	// considered to be text-based. This includes "text/*", "application/json",
	// and "application/problem+json".
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/problem\+json`),
	}
)

// IsTextContentType reports whether the given Content-Type header value
// describes a text-based payload that is safe to dump into logs.
func IsTextContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if pattern.MatchString(mediaType) {
			return true
		}
	}

	return false
}

// MaskToken obscures a credential for logging, keeping only a short prefix.
func MaskToken(token string) string {
	const visiblePrefix = 6

	if len(token) <= visiblePrefix {
		return "***"
	}

	return token[:visiblePrefix] + "..."
}

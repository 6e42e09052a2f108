package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips markup from user supplied text to prevent stored XSS.
// Display names are plain text, so the strict policy applies.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

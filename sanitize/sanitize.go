// Package sanitize strips HTML-like markup from user supplied text before it
// is validated or placed into an outbound email.
package sanitize

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^<>]*>`)

// Strip removes anything resembling an HTML or XML tag from s. Tag spans are
// removed repeatedly until the string stops shrinking, so nested constructs
// like "<scr<script>ipt>" cannot survive a single pass. Whatever angle
// brackets remain after that are unpaired and get dropped as well, so the
// result never contains '<' or '>'. Plain text, punctuation and accented
// characters are left untouched.
func Strip(s string) string {
	for {
		stripped := tagPattern.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")

	return s
}

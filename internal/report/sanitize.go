package report

import (
	"regexp"
	"strings"
)

// sanitizeRule is one pattern-to-replacement step of the display pass.
type sanitizeRule struct {
	pattern *regexp.Regexp
	replace string
}

// Rules run in this order. Each rule's replacement cannot reintroduce a
// match for itself or an earlier rule, so the whole pass is idempotent.
var sanitizeRules = []sanitizeRule{
	{regexp.MustCompile(`\*\*`), ""},            // bold markers
	{regexp.MustCompile(`__`), ""},              // underline markers
	{regexp.MustCompile("[‘’]"), "'"}, // curly single quotes
	{regexp.MustCompile("[“”]"), `"`}, // curly double quotes
	{regexp.MustCompile("[–—]"), "-"}, // en/em dashes
	{regexp.MustCompile(`\n{2,}`), "\n"},        // doubled newlines
}

// Sanitize normalizes model output for plain-text presentation. Applying it
// twice yields the same result as applying it once.
func Sanitize(s string) string {
	for _, rule := range sanitizeRules {
		s = rule.pattern.ReplaceAllString(s, rule.replace)
	}
	return strings.TrimSpace(s)
}

package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
)

const (
	maxTitleLen   = 200
	maxSnippetLen = 400
)

// BuildContext formats records into the numbered grounding block fed to the
// model. Deterministic and order-preserving; an empty input yields an empty
// string (the caller substitutes its own marker before prompting).
func BuildContext(records []models.SearchRecord) string {
	if len(records) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(records))
	for i, r := range records {
		blocks = append(blocks, fmt.Sprintf("[%d] %s\nSnippet: %s\nURL: %s\n",
			i+1, truncate(r.Title, maxTitleLen), truncate(r.Snippet, maxSnippetLen), r.Link))
	}
	return strings.Join(blocks, "\n")
}

// truncate bounds s to at most max bytes without splitting a multi-byte
// rune, so the grounding block stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

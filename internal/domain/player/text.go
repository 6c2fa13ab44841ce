// internal/domain/player/text.go
package player

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	boldMarkup = regexp.MustCompile(`\*\*(.+?)\*\*`)
	ugcPolicy  = bluemonday.UGCPolicy()
)

// richText renders the minimal inline markup lesson copy uses (**bold**)
// into HTML and sanitizes the result. Document copy is author-supplied
// data, so it goes through the same policy as any user content.
func richText(s string) string {
	html := boldMarkup.ReplaceAllString(s, "<strong>$1</strong>")
	return ugcPolicy.Sanitize(html)
}

func richTextAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = richText(s)
	}
	return out
}

// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize cleans article bodies written in the admin console's
// rich-text editor before they are stored and served to the public site.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// articlePolicy is the UGC policy plus table markup and a class attribute
// on tables, which the editor emits for bordered/striped styles.
func articlePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
		p.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
		p.AllowAttrs("class").OnElements("table")
		policy = p
	})
	return policy
}

// Sanitize strips scripts, event handlers, iframes, styles and unsafe URLs
// from s while keeping ordinary formatting.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return articlePolicy().Sanitize(s)
}

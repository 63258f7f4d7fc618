package markup

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText strips every tag from raw. The template escapes on output, so the
// entity-encoded result of the policy is decoded again.
func plainText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	cleaned := textPolicy.Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// SanitizeContent normalises caller-supplied content markup before it is
// spliced into a wrapper. The policy accepts common user-generated markup
// plus class attributes so projected content can participate in the wrapper's
// styling, and strips anything executable.
func SanitizeContent(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(contentSanitizer().Sanitize(trimmed))
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("role", "aria-label", "aria-hidden").Globally()
		contentPolicy = policy
	})
	return contentPolicy
}

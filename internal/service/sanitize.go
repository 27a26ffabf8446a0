package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textSanitizer strips markup from free-text input. Stored values are plain text, so
// entities escaped by the policy are decoded again.
type textSanitizer struct {
	policy *bluemonday.Policy
}

func newTextSanitizer() textSanitizer {
	return textSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s textSanitizer) clean(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(value)))
}

func (s textSanitizer) cleanPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cleaned := s.clean(*value)
	return &cleaned
}

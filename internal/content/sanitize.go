// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// inlinePolicy allows the emphasis markup the hero paragraphs are written
// with, plus plain links. Everything else is stripped.
var inlinePolicy = newInlinePolicy()

func newInlinePolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("b", "strong", "i", "em", "u", "br", "span")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// SanitizeInline strips markup outside the inline allow-list.
//
// Input that is already safe is returned byte-for-byte, so re-saving an
// unchanged paragraph never makes the draft dirty through entity escaping.
func SanitizeInline(raw string) string {
	clean := inlinePolicy.Sanitize(raw)
	if html.UnescapeString(clean) == html.UnescapeString(raw) {
		return raw
	}
	return clean
}

// SanitizeAll applies [SanitizeInline] to every element, in place.
func SanitizeAll(values []string) []string {
	for index, value := range values {
		values[index] = SanitizeInline(value)
	}
	return values
}

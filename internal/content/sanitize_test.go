// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/content"
)

/*
TestSanitizeInline keeps emphasis markup and strips active content.
*/
func TestSanitizeInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "I'm a Business Analyst & more", "I'm a Business Analyst & more"},
		{"emphasis kept", "I am a <b>Business Analyst</b>", "I am a <b>Business Analyst</b>"},
		{"script removed", `Hi<script>alert(1)</script>`, "Hi"},
		{"handler attribute removed", `<b onclick="x()">bold</b>`, "<b>bold</b>"},
		{"image removed", `<img src="x" onerror="y">text`, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.SanitizeInline(tt.in))
		})
	}
}

/*
TestSanitizeInline_Idempotent ensures the default hero survives unchanged.
*/
func TestSanitizeInline_Idempotent(t *testing.T) {
	doc := content.Default()
	for _, paragraph := range append(doc.En.Hero.Paragraphs, doc.Vn.Hero.Paragraphs...) {
		assert.Equal(t, paragraph, content.SanitizeInline(paragraph))
	}
}

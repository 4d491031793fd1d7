// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/locale"
)

/*
TestResolve covers query overrides, header negotiation and the fallback.
*/
func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		header string
		want   locale.Locale
	}{
		{"query_vn", "vn", "en-US", locale.Vietnamese},
		{"query_vi_alias", "vi", "", locale.Vietnamese},
		{"query_unknown_falls_to_header", "fr", "vi-VN,vi;q=0.9", locale.Vietnamese},
		{"header_english", "", "en-GB,en;q=0.8", locale.English},
		{"header_unsupported", "", "ja-JP", locale.English},
		{"empty", "", "", locale.English},
		{"garbage_header", "", ";;;", locale.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Resolve(tt.query, tt.header))
		})
	}
}

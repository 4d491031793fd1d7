// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/locale"
)

/*
TestFormatPeriods renders both locales from month picker values.
*/
func TestFormatPeriods(t *testing.T) {
	tests := []struct {
		name   string
		input  content.PeriodInput
		wantEn string
		wantVn string
	}{
		{"current role", content.PeriodInput{Start: "2025-08", Current: true}, "Aug 2025 - Present", "Tháng 8 2025 - Hiện tại"},
		{"closed range", content.PeriodInput{Start: "2024-03", End: "2025-08"}, "Mar 2024 - Aug 2025", "Tháng 3 2024 - Tháng 8 2025"},
		{"start only", content.PeriodInput{Start: "2020-08"}, "Aug 2020", "Tháng 8 2020"},
		{"current wins over end", content.PeriodInput{Start: "2020-01", End: "2021-01", Current: true}, "Jan 2020 - Present", "Tháng 1 2020 - Hiện tại"},
		{"empty", content.PeriodInput{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := content.FormatPeriods(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEn, got.En)
			assert.Equal(t, tt.wantVn, got.Vn)
		})
	}

	_, err := content.FormatPeriod(locale.English, content.PeriodInput{Start: "August 2025"})
	assert.Error(t, err)
}

/*
TestParsePeriod reverses the rendered forms found in stored content.
*/
func TestParsePeriod(t *testing.T) {
	tests := []struct {
		period string
		want   content.PeriodInput
		ok     bool
	}{
		{"Aug 2025 - Present", content.PeriodInput{Start: "2025-08", Current: true}, true},
		{"Mar 2024 - Aug 2025", content.PeriodInput{Start: "2024-03", End: "2025-08"}, true},
		{"Tháng 8 2020 - Tháng 7 2024", content.PeriodInput{Start: "2020-08", End: "2024-07"}, true},
		{"Tháng 8 2025 - Hiện tại", content.PeriodInput{Start: "2025-08", Current: true}, true},
		{"Aug 2020", content.PeriodInput{Start: "2020-08"}, true},
		{"2022", content.PeriodInput{}, false},
		{"", content.PeriodInput{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, ok := content.ParsePeriod(tt.period)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestPeriodRoundTrip checks every default experience period survives a parse/format cycle.
*/
func TestPeriodRoundTrip(t *testing.T) {
	doc := content.Default()

	for index, experience := range doc.En.ExperiencesData {
		input, ok := content.ParsePeriod(experience.Period)
		require.True(t, ok, experience.Period)

		got, err := content.FormatPeriods(input)
		require.NoError(t, err)
		assert.Equal(t, experience.Period, got.En)
		assert.Equal(t, doc.Vn.ExperiencesData[index].Period, got.Vn)
	}
}

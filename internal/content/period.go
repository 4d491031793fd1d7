// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/platform/locale"
)

// PeriodInput is the month-picker form of an experience period.
// Start and End are "YYYY-MM" values; End is ignored when Current is set.
type PeriodInput struct {
	Start   string `json:"start"`
	End     string `json:"end,omitempty"`
	Current bool   `json:"current,omitempty"`
}

const (
	monthLayout     = "2006-01"
	englishLayout   = "Jan 2006"
	periodSeparator = " - "
	presentEnglish  = "Present"
	presentVietnam  = "Hiện tại"
	monthVietnamese = "Tháng"
)

// FormatPeriod renders a period for one locale, e.g. "Aug 2025 - Present"
// or "Tháng 8 2025 - Hiện tại". An empty start yields an empty period.
func FormatPeriod(l locale.Locale, in PeriodInput) (string, error) {
	if in.Start == "" {
		return "", nil
	}

	start, err := formatMonth(l, in.Start)
	if err != nil {
		return "", err
	}

	var end string
	switch {
	case in.Current && l == locale.Vietnamese:
		end = presentVietnam
	case in.Current:
		end = presentEnglish
	case in.End != "":
		if end, err = formatMonth(l, in.End); err != nil {
			return "", err
		}
	}

	if end == "" {
		return start, nil
	}
	return start + periodSeparator + end, nil
}

// FormatPeriods renders a period for both locales at once.
func FormatPeriods(in PeriodInput) (Bilingual[string], error) {
	en, err := FormatPeriod(locale.English, in)
	if err != nil {
		return Bilingual[string]{}, err
	}
	vn, err := FormatPeriod(locale.Vietnamese, in)
	if err != nil {
		return Bilingual[string]{}, err
	}
	return Pair(en, vn), nil
}

// ParsePeriod recovers the month-picker form from a rendered period in
// either locale. ok is false when the start month cannot be read.
func ParsePeriod(period string) (in PeriodInput, ok bool) {
	startText, endText, _ := strings.Cut(strings.TrimSpace(period), periodSeparator)

	start, ok := parseMonth(startText)
	if !ok {
		return PeriodInput{}, false
	}
	in.Start = start

	endText = strings.TrimSpace(endText)
	switch {
	case strings.EqualFold(endText, presentEnglish) || endText == presentVietnam:
		in.Current = true
	case endText != "":
		if end, endOK := parseMonth(endText); endOK {
			in.End = end
		}
	}
	return in, true
}

func formatMonth(l locale.Locale, value string) (string, error) {
	month, err := time.Parse(monthLayout, value)
	if err != nil {
		return "", fmt.Errorf("content: month %q must be YYYY-MM", value)
	}
	if l == locale.Vietnamese {
		return fmt.Sprintf("%s %d %d", monthVietnamese, int(month.Month()), month.Year()), nil
	}
	return month.Format(englishLayout), nil
}

func parseMonth(text string) (string, bool) {
	text = strings.TrimSpace(text)

	if month, err := time.Parse(englishLayout, text); err == nil {
		return month.Format(monthLayout), true
	}

	// "Tháng 8 2025"
	fields := strings.Fields(text)
	if len(fields) == 3 && fields[0] == monthVietnamese {
		month, monthErr := strconv.Atoi(fields[1])
		year, yearErr := strconv.Atoi(fields[2])
		if monthErr == nil && yearErr == nil && month >= 1 && month <= 12 {
			return fmt.Sprintf("%04d-%02d", year, month), true
		}
	}
	return "", false
}

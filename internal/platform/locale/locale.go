// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package locale defines the two content locales served by Folio and resolves
the caller's preferred one from an HTTP request.

Resolution order:

  - An explicit "lang" query parameter ("en" or "vn").
  - The Accept-Language header, matched with golang.org/x/text/language.
  - [Default].
*/
package locale

import (
	"golang.org/x/text/language"
)

// Locale identifies one language variant of the content tree.
type Locale string

const (
	// English is the primary locale. Shared fields are always taken from it.
	English Locale = "en"

	// Vietnamese is the secondary locale. The content key is "vn", not the
	// BCP 47 "vi", to stay compatible with stored documents.
	Vietnamese Locale = "vn"

	// Default is used whenever nothing better can be negotiated.
	Default = English
)

// All lists the supported locales in display order.
var All = []Locale{English, Vietnamese}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Vietnamese,
})

// Parse converts a raw code into a [Locale].
//
// "vi" is accepted as an alias for [Vietnamese].
func Parse(raw string) (Locale, bool) {
	switch raw {
	case "en", "en-US", "en-GB":
		return English, true
	case "vn", "vi", "vi-VN":
		return Vietnamese, true
	}
	return "", false
}

// Negotiate picks a locale from an Accept-Language header value.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}

	if index == 1 {
		return Vietnamese
	}
	return English
}

// Resolve applies the full resolution order to a query value and a header.
func Resolve(queryValue, acceptLanguage string) Locale {
	if l, ok := Parse(queryValue); ok {
		return l
	}
	return Negotiate(acceptLanguage)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer (the editor and the session
// gate). It guarantees that a rejected edit never reaches the draft.
package validate

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// RangeFloat is [Validator.Range] for fractional values such as font sizes.
func (v *Validator) RangeFloat(field string, value, min, max float64) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %g and %g", min, max))
	}
	return v
}

// URL fails if a non-empty value is not an absolute http(s), mailto or tel URL.
//
// Empty values pass; combine with [Validator.Required] when the URL is mandatory.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}
	parsed, err := url.Parse(value)
	if err != nil {
		v.add(field, "Must be a valid URL")
		return v
	}
	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			v.add(field, "Must be a valid URL")
		}
	case "mailto", "tel":
		if parsed.Opaque == "" {
			v.add(field, "Must be a valid URL")
		}
	default:
		v.add(field, "Must be a valid URL")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("en.title", title == "", "Title is required for both languages.")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	return v.ErrWithMessage("Validation failed")
}

// ErrWithMessage is [Validator.Err] with a caller-supplied (usually
// localized) top-level message.
func (v *Validator) ErrWithMessage(message string) error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(message, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}

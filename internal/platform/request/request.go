// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/locale"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// maxBodyBytes bounds JSON bodies. Image uploads use multipart and have their own limit.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are rejected so a typo in a patch never silently drops a change.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.ValidationError("Request body is required")
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam parses a named URL parameter as a non-negative index.
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, apperr.ValidationError("Invalid " + name, apperr.FieldError{Field: name, Message: "must be a non-negative integer"})
	}
	return value, nil
}

/*
Confirmed reports whether the caller acknowledged a destructive action with ?confirm=true.
*/
func Confirmed(request *http.Request) bool {
	confirmed, _ := strconv.ParseBool(request.URL.Query().Get("confirm"))
	return confirmed
}

/*
Locale returns the content locale negotiated for this request.
*/
func Locale(request *http.Request) locale.Locale {
	return ctxutil.GetLocale(request.Context())
}

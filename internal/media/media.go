// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media turns uploaded image files into inline data URLs.

Images are not stored separately: they are embedded in the content document
as "data:<mime>;base64,<payload>" strings. Several files are encoded
concurrently; results keep the order the files were given in.
*/
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/folio/internal/platform/constants"
)

var (
	// ErrNotImage is returned when a file's content is not a recognised image type.
	ErrNotImage = errors.New("media: file is not an image")

	// ErrTooLarge is returned when a single file exceeds the per-file limit.
	ErrTooLarge = errors.New("media: file too large")

	// ErrTooManyFiles is returned when an upload carries more files than allowed.
	ErrTooManyFiles = errors.New("media: too many files")
)

// sniffLen is how many bytes http.DetectContentType inspects.
const sniffLen = 512

// Upload is one file waiting to be encoded.
type Upload struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FromMultipart adapts multipart file headers to uploads.
func FromMultipart(headers []*multipart.FileHeader) []Upload {
	uploads := make([]Upload, len(headers))
	for index, header := range headers {
		uploads[index] = Upload{
			Name: header.Filename,
			Open: func() (io.ReadCloser, error) { return header.Open() },
		}
	}
	return uploads
}

// FromBytes wraps an in-memory file.
func FromBytes(name string, data []byte) Upload {
	return Upload{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

// Encoder converts uploads to data URLs.
type Encoder struct {
	maxFileBytes int64
	maxFiles     int
	workers      int
}

// NewEncoder creates an Encoder. maxFileBytes bounds each file.
func NewEncoder(maxFileBytes int64) *Encoder {
	return &Encoder{
		maxFileBytes: maxFileBytes,
		maxFiles:     constants.MaxUploadFiles,
		workers:      4,
	}
}

// MaxFileBytes returns the per-file limit.
func (encoder *Encoder) MaxFileBytes() int64 {
	return encoder.maxFileBytes
}

// EncodeAll encodes every upload concurrently.
//
// Either all files are returned, in input order, or an error is. A single bad
// file fails the whole batch so a gallery never receives half an upload.
func (encoder *Encoder) EncodeAll(ctx context.Context, uploads []Upload) ([]string, error) {
	if len(uploads) > encoder.maxFiles {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(uploads), encoder.maxFiles)
	}

	results := make([]string, len(uploads))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(encoder.workers)

	for index, upload := range uploads {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			dataURL, err := encoder.Encode(upload)
			if err != nil {
				return err
			}
			results[index] = dataURL
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Encode reads one upload and returns its data URL.
func (encoder *Encoder) Encode(upload Upload) (string, error) {
	file, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("media: open %q: %w", upload.Name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, encoder.maxFileBytes+1))
	if err != nil {
		return "", fmt.Errorf("media: read %q: %w", upload.Name, err)
	}
	if int64(len(data)) > encoder.maxFileBytes {
		return "", fmt.Errorf("%w: %q", ErrTooLarge, upload.Name)
	}

	mimeType := DetectImageType(data)
	if mimeType == "" {
		return "", fmt.Errorf("%w: %q", ErrNotImage, upload.Name)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DetectImageType sniffs data and returns its image MIME type, or "" when
// the content is not an image.
func DetectImageType(data []byte) string {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}

	detected := http.DetectContentType(head)
	mimeType, _, _ := strings.Cut(detected, ";")
	if !strings.HasPrefix(mimeType, "image/") {
		return ""
	}
	return mimeType
}

// IsDataURL reports whether value is an inline image.
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:image/")
}

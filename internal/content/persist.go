// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

// ErrQuotaExceeded is returned when the serialised document is larger than
// the configured storage quota. Embedded images are the usual cause.
var ErrQuotaExceeded = errors.New("content: document exceeds storage quota")

// Source tells where a loaded document came from.
type Source string

const (
	SourceStore   Source = "store"
	SourceDefault Source = "default"
)

// Persister reads and writes the canonical document under one versioned key.
//
// Bumping the key suffix is how a schema change is rolled out: documents
// stored under an older key are never read again and the built-in default
// takes over.
type Persister struct {
	repository Repository
	key        string
	quotaBytes int
	logger     *slog.Logger
}

// PersisterOption customises a [Persister].
type PersisterOption func(*Persister)

// WithKey overrides the storage key.
func WithKey(key string) PersisterOption {
	return func(persister *Persister) { persister.key = key }
}

// WithQuota overrides the maximum serialised size in bytes.
func WithQuota(limit int) PersisterOption {
	return func(persister *Persister) {
		if limit > 0 {
			persister.quotaBytes = limit
		}
	}
}

// NewPersister creates a Persister over repository.
func NewPersister(repository Repository, logger *slog.Logger, options ...PersisterOption) *Persister {
	persister := &Persister{
		repository: repository,
		key:        constants.ContentStorageKey,
		quotaBytes: constants.DefaultStorageQuotaBytes,
		logger:     logger,
	}
	for _, option := range options {
		option(persister)
	}
	return persister
}

// Key returns the storage key in use.
func (persister *Persister) Key() string {
	return persister.key
}

// Load returns the stored document, or the built-in default when the key is
// missing, unreadable, malformed, carries unknown fields or fails
// [AppContent.Validate]. A partially decoded document is never returned.
func (persister *Persister) Load(context context.Context) (*AppContent, Source) {
	body, err := persister.repository.Get(context, persister.key)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			persister.logger.WarnContext(context, "content_load_failed",
				slog.String("key", persister.key),
				slog.Any("error", err),
			)
		}
		return Default(), SourceDefault
	}

	doc, err := Decode(body)
	if err != nil {
		persister.logger.WarnContext(context, "content_document_rejected",
			slog.String("key", persister.key),
			slog.Int("size_bytes", len(body)),
			slog.Any("error", err),
		)
		return Default(), SourceDefault
	}

	return doc, SourceStore
}

// Save serialises doc and writes it under the versioned key.
//
// The caller keeps its in-memory copy whatever happens here; a failed save
// never touches doc.
func (persister *Persister) Save(context context.Context, doc *AppContent) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("content: encode: %w", err)
	}

	if len(body) > persister.quotaBytes {
		return fmt.Errorf("%w: %d > %d bytes", ErrQuotaExceeded, len(body), persister.quotaBytes)
	}

	if err := persister.repository.Put(context, persister.key, body); err != nil {
		return fmt.Errorf("content: store: %w", err)
	}

	persister.logger.DebugContext(context, "content_saved",
		slog.String("key", persister.key),
		slog.Int("size_bytes", len(body)),
	)
	return nil
}

// Ping checks that the underlying store is reachable.
func (persister *Persister) Ping(context context.Context) error {
	return persister.repository.Ping(context)
}

// Decode parses a stored JSON document strictly and validates it.
func Decode(body []byte) (*AppContent, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	var doc AppContent
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("content: trailing data after document")
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("content: invalid document: %w", err)
	}
	return &doc, nil
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level storage errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned when a queried row or key doesn't exist.
var ErrNotFound = errors.New("dberr: not found")

// ErrUnavailable marks storage that cannot currently accept writes.
var ErrUnavailable = errors.New("dberr: storage unavailable")

// Wrap inspects a storage error and classifies it.
//
// Missing rows map to [ErrNotFound]. Read-only or closed stores map to
// [ErrUnavailable]. Everything else is wrapped with the action for context.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}

	// 2. Store refuses writes
	if errors.Is(err, bolt.ErrDatabaseReadOnly) || errors.Is(err, bolt.ErrDatabaseNotOpen) || errors.Is(err, bolt.ErrTxClosed) {
		return fmt.Errorf("%s: %w: %w", action, ErrUnavailable, err)
	}

	// 3. Postgres server-side failures keep their SQLSTATE for the logs
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: sqlstate %s: %w", action, pgErr.Code, err)
	}

	return fmt.Errorf("%s: %w", action, err)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

// BoltRepository keeps the document in an embedded bbolt file.
type BoltRepository struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBolt opens (or creates) the bbolt file at path and ensures the bucket exists.
func OpenBolt(path string) (*BoltRepository, error) {
	if path == "" {
		return nil, errors.New("content: missing bolt path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("content: create bolt dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("content: open bolt: %w", err)
	}

	repository := &BoltRepository{db: db, bucket: []byte(constants.BoltBucketContent)}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(repository.bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("content: create bucket: %w", err)
	}

	return repository, nil
}

// Close releases the file lock.
func (repository *BoltRepository) Close() error {
	if repository.db == nil {
		return nil
	}
	return repository.db.Close()
}

func (repository *BoltRepository) Get(context context.Context, key string) ([]byte, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	var body []byte
	err := repository.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(repository.bucket)
		if bucket == nil {
			return dberr.ErrNotFound
		}
		value := bucket.Get([]byte(key))
		if value == nil {
			return dberr.ErrNotFound
		}
		// Values are only valid inside the transaction.
		body = append([]byte(nil), value...)
		return nil
	})
	if err != nil {
		return nil, dberr.Wrap(err, "get_content")
	}
	return body, nil
}

func (repository *BoltRepository) Put(context context.Context, key string, body []byte) error {
	if err := context.Err(); err != nil {
		return err
	}

	err := repository.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(repository.bucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), body)
	})
	return dberr.Wrap(err, "put_content")
}

func (repository *BoltRepository) Ping(context context.Context) error {
	if err := context.Err(); err != nil {
		return err
	}
	return dberr.Wrap(repository.db.View(func(tx *bolt.Tx) error { return nil }), "ping_content")
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/postgres"
)

// PostgresRepository keeps the document in the content_document table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Get(context context.Context, key string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.ContentDocument.Body, schema.ContentDocument.Table, schema.ContentDocument.Key,
	)

	var body []byte
	if err := repository.db.QueryRow(context, query, key).Scan(&body); err != nil {
		return nil, dberr.Wrap(err, "get_content")
	}
	return body, nil
}

func (repository *PostgresRepository) Put(context context.Context, key string, body []byte) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = now()
	`,
		schema.ContentDocument.Table,
		schema.ContentDocument.Key, schema.ContentDocument.Body, schema.ContentDocument.SizeBytes, schema.ContentDocument.UpdatedAt,
		schema.ContentDocument.Key,
		schema.ContentDocument.Body, schema.ContentDocument.Body,
		schema.ContentDocument.SizeBytes, schema.ContentDocument.SizeBytes,
		schema.ContentDocument.UpdatedAt,
	)

	// body is already JSON; pass it as a string so pgx sends it as jsonb text.
	_, err := repository.db.Exec(context, query, key, string(body), len(body))
	return dberr.Wrap(err, "put_content")
}

func (repository *PostgresRepository) Ping(context context.Context) error {
	return postgres.Ping(context, repository.db)
}

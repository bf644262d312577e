package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/yigit/transferdesk/internal/pkg/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (collection, id)
);`

// SQLiteStore keeps documents as JSON text in a single SQLite file. It is
// meant for local development without a Postgres server.
type SQLiteStore struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the documents table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single connection keeps writes serialised for SQLite.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &SQLiteStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question).RunWith(db),
	}, nil
}

func (s *SQLiteStore) selectDocs(collection string) squirrel.SelectBuilder {
	return s.sb.Select("id", "data").
		From("documents").
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("rowid ASC")
}

func (s *SQLiteStore) queryDocs(ctx context.Context, q squirrel.SelectBuilder) ([]Document, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing sqlite document query")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		doc, err := unmarshalData(id, []byte(raw))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return docs, nil
}

// Query implements Store.
func (s *SQLiteStore) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	return s.queryDocs(ctx, s.selectDocs(collection).Where("CAST(json_extract(data, '$.' || ?) AS TEXT) = ?", field, value))
}

// All implements Store.
func (s *SQLiteStore) All(ctx context.Context, collection string) ([]Document, error) {
	return s.queryDocs(ctx, s.selectDocs(collection))
}

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw string
	err := s.sb.Select("data").
		From("documents").
		Where(squirrel.Eq{"collection": collection, "id": id}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("error getting document: %w", err)
	}
	return unmarshalData(id, []byte(raw))
}

// Insert implements Store.
func (s *SQLiteStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := marshalData(data)
	if err != nil {
		return err
	}

	_, err = s.sb.Insert("documents").
		Columns("collection", "id", "data").
		Values(collection, id, raw).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP").
		ExecContext(ctx)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error writing sqlite document")
		return fmt.Errorf("error writing document: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.sb.Delete("documents").
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

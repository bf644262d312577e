package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// PostgresStore keeps documents as JSONB rows of the documents table
// (see migrations/001_documents.sql).
type PostgresStore struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresStore creates a store over an open pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (s *PostgresStore) selectDocs(collection string) squirrel.SelectBuilder {
	return s.sb.Select("id", "data").
		From("documents").
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("seq ASC")
}

func (s *PostgresStore) queryDocs(ctx context.Context, q squirrel.SelectBuilder) ([]Document, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build document query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing document query")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		doc, err := unmarshalData(id, raw)
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
func (s *PostgresStore) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	return s.queryDocs(ctx, s.selectDocs(collection).Where("data->>? = ?", field, value))
}

// All implements Store.
func (s *PostgresStore) All(ctx context.Context, collection string) ([]Document, error) {
	return s.queryDocs(ctx, s.selectDocs(collection))
}

// Get implements Store.
func (s *PostgresStore) Get(ctx context.Context, collection, id string) (Document, error) {
	sql, args, err := s.sb.Select("data").
		From("documents").
		Where(squirrel.Eq{"collection": collection, "id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return Document{}, fmt.Errorf("failed to build get document query: %w", err)
	}

	var raw []byte
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error getting document")
		return Document{}, fmt.Errorf("error getting document: %w", err)
	}
	return unmarshalData(id, raw)
}

// Insert implements Store.
func (s *PostgresStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Set implements Store.
func (s *PostgresStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := marshalData(data)
	if err != nil {
		return err
	}

	sql, args, err := s.sb.Insert("documents").
		Columns("collection", "id", "data").
		Values(collection, id, raw).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set document query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error writing document")
		return fmt.Errorf("error writing document: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	sql, args, err := s.sb.Delete("documents").
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete document query: %w", err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error deleting document")
		return fmt.Errorf("error deleting document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

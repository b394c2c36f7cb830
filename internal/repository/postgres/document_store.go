package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// documentStore keeps each collection in its own table of JSONB documents,
// inside schema. An empty schema means the connection's current schema.
type documentStore struct {
	db     DB
	schema string
	close  func()

	mu            sync.Mutex
	schemaCreated bool
	tables        map[string]bool
}

func NewDocumentStore(pool *pgxpool.Pool, schema string) domain.DocumentStore {
	return newDocumentStore(pool, schema, pool.Close)
}

func newDocumentStore(db DB, schema string, closeFn func()) *documentStore {
	return &documentStore{
		db:     db,
		schema: schema,
		close:  closeFn,
		tables: make(map[string]bool),
	}
}

func (s *documentStore) InsertDocument(ctx context.Context, collection string, doc any) (string, error) {
	body, err := encodeDocument(doc)
	if err != nil {
		return "", err
	}

	if err := s.ensureTable(ctx, collection); err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := fmt.Sprintf(`INSERT INTO %s (id, document) VALUES ($1, $2::jsonb)`, s.tableIdent(collection))
	if _, err := s.db.Exec(ctx, query, id, body); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *documentStore) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT table_name FROM information_schema.tables
              WHERE table_schema = COALESCE(NULLIF($1, ''), current_schema()) AND table_type = 'BASE TABLE'
              ORDER BY table_name LIMIT $2`
	rows, err := s.db.Query(ctx, query, s.schema, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (s *documentStore) Close(ctx context.Context) error {
	if s.close != nil {
		s.close()
	}
	return nil
}

func (s *documentStore) ensureTable(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables[collection] {
		return nil
	}

	if s.schema != "" && !s.schemaCreated {
		query := fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{s.schema}.Sanitize())
		if _, err := s.db.Exec(ctx, query); err != nil {
			return fmt.Errorf("prepare schema %s: %w", s.schema, err)
		}
		s.schemaCreated = true
	}

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id uuid PRIMARY KEY,
		document jsonb NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`, s.tableIdent(collection))
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("prepare collection %s: %w", collection, err)
	}
	s.tables[collection] = true
	return nil
}

// encodeDocument keeps HTML characters as submitted.
func encodeDocument(doc any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// tableIdent quotes the collection's table, qualified by schema when set.
func (s *documentStore) tableIdent(collection string) string {
	if s.schema == "" {
		return pgx.Identifier{collection}.Sanitize()
	}
	return pgx.Identifier{s.schema, collection}.Sanitize()
}

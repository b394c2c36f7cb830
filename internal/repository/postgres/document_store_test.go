package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	execs    []string
	args     [][]any
	execErr  error
	queries  []string
	qargs    [][]any
	rows     []string
	queryErr error
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	f.args = append(f.args, args)
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sql)
	f.qargs = append(f.qargs, args)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{values: f.rows, pos: -1}, nil
}

// fakeRows yields one text column per row.
type fakeRows struct {
	values []string
	pos    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed {
		return false
	}
	r.pos++
	if r.pos >= len(r.values) {
		r.closed = true
		return false
	}
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return errors.New("expected one destination")
	}
	p, ok := dest[0].(*string)
	if !ok {
		return errors.New("expected *string destination")
	}
	*p = r.values[r.pos]
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	return []any{r.values[r.pos]}, nil
}

func TestInsertDocument(t *testing.T) {
	db := &fakeDB{}
	store := newDocumentStore(db, "", nil)

	msg := domain.MessageDocument{Message: domain.Message{Name: "Ada", Email: "ada@example.com", Message: "<b>hi</b> there"}}
	id, err := store.InsertDocument(context.Background(), domain.MessageCollection, msg)
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	require.Len(t, db.execs, 2)
	assert.Contains(t, db.execs[0], `CREATE TABLE IF NOT EXISTS "message"`)
	assert.Contains(t, db.execs[1], `INSERT INTO "message"`)
	assert.Equal(t, id, db.args[1][0])
	// stored verbatim
	assert.Contains(t, db.args[1][1], `"message":"<b>hi</b> there"`)

	_, err = store.InsertDocument(context.Background(), domain.MessageCollection, msg)
	require.NoError(t, err)
	assert.Len(t, db.execs, 3, "table is only prepared once")
}

func TestInsertDocumentCreatesSchema(t *testing.T) {
	db := &fakeDB{}
	store := newDocumentStore(db, "my-portfolio", nil)

	_, err := store.InsertDocument(context.Background(), domain.MessageCollection, map[string]string{"name": "Ada"})
	require.NoError(t, err)

	require.Len(t, db.execs, 3)
	assert.Equal(t, `CREATE SCHEMA IF NOT EXISTS "my-portfolio"`, db.execs[0])
	assert.Contains(t, db.execs[1], `CREATE TABLE IF NOT EXISTS "my-portfolio"."message"`)
	assert.Contains(t, db.execs[2], `INSERT INTO "my-portfolio"."message"`)

	_, err = store.InsertDocument(context.Background(), "other", map[string]string{"name": "Ada"})
	require.NoError(t, err)
	require.Len(t, db.execs, 5, "schema is only created once")
	assert.Contains(t, db.execs[3], `CREATE TABLE IF NOT EXISTS "my-portfolio"."other"`)
}

func TestInsertDocumentSchemaFailure(t *testing.T) {
	db := &fakeDB{execErr: errors.New("permission denied for database portfolio")}
	store := newDocumentStore(db, "portfolio", nil)

	_, err := store.InsertDocument(context.Background(), domain.MessageCollection, map[string]string{"name": "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare schema portfolio")
	assert.Len(t, db.execs, 1)
	assert.False(t, store.schemaCreated)
}

func TestInsertDocumentFailure(t *testing.T) {
	db := &fakeDB{execErr: errors.New("connection refused")}
	store := newDocumentStore(db, "", nil)

	_, err := store.InsertDocument(context.Background(), domain.MessageCollection, map[string]string{"name": "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.False(t, store.tables[domain.MessageCollection])
}

func TestCollectionNames(t *testing.T) {
	db := &fakeDB{rows: []string{"message", "other"}}
	store := newDocumentStore(db, "portfolio", nil)

	names, err := store.CollectionNames(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"message", "other"}, names)

	require.Len(t, db.queries, 1)
	assert.Contains(t, db.queries[0], "LIMIT $2")
	assert.Equal(t, []any{"portfolio", 10}, db.qargs[0])
}

func TestCollectionNamesEmpty(t *testing.T) {
	store := newDocumentStore(&fakeDB{}, "", nil)

	names, err := store.CollectionNames(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCollectionNamesError(t *testing.T) {
	store := newDocumentStore(&fakeDB{queryErr: errors.New("permission denied")}, "", nil)

	_, err := store.CollectionNames(context.Background(), 10)
	assert.EqualError(t, err, "permission denied")
}

func TestClose(t *testing.T) {
	closed := false
	store := newDocumentStore(&fakeDB{}, "", func() { closed = true })

	require.NoError(t, store.Close(context.Background()))
	assert.True(t, closed)
}

func TestTableIdent(t *testing.T) {
	assert.Equal(t, `"message"`, newDocumentStore(&fakeDB{}, "", nil).tableIdent("message"))
	assert.Equal(t, `"portfolio"."message"`, newDocumentStore(&fakeDB{}, "portfolio", nil).tableIdent("message"))
	assert.True(t, strings.HasPrefix(newDocumentStore(&fakeDB{}, "", nil).tableIdent(`bad"; DROP TABLE x; --`), `"bad""`))
}

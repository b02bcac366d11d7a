package docstore

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

//go:embed migrations.sql
var migrationsSQL string

const (
	pgSelectByID = `SELECT body FROM documents WHERE collection = $1 AND id = $2`
	pgSelectOne  = `SELECT body FROM documents WHERE collection = $1 AND body->>$2 = $3 ORDER BY id LIMIT 1`
	pgSelectAll  = `SELECT body FROM documents WHERE collection = $1 ORDER BY id`
	pgInsert     = `INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3)`
	pgUpdate     = `UPDATE documents SET body = body || $3::jsonb WHERE collection = $1 AND id = $2`
	pgDelete     = `DELETE FROM documents WHERE collection = $1 AND id = $2`
	pgIncrement  = `UPDATE documents
		SET body = jsonb_set(body, ARRAY[$3::text], to_jsonb(COALESCE((body->>$3)::int, 0) + $4::int))
		WHERE collection = $1 AND id = $2 AND COALESCE((body->>$3)::int, 0) + $4::int >= 0
		RETURNING (body->>$3)::int`
	pgExists = `SELECT EXISTS (SELECT 1 FROM documents WHERE collection = $1 AND id = $2)`
)

// PostgresStore keeps every collection in one JSONB table.
type PostgresStore struct {
	DB *sql.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore opens dsn with lib/pq and checks the connection.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("docstore: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("docstore: ping postgres: %w", err)
	}
	return &PostgresStore{DB: db}, nil
}

// Migrate creates the documents table when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, migrationsSQL); err != nil {
		return pgError("migrate", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, collection, id string, dest any) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	return s.queryOne(ctx, dest, pgSelectByID, collection, id)
}

func (s *PostgresStore) FindOne(ctx context.Context, collection, field string, value any, dest any) (bool, error) {
	text, err := textValue(value)
	if err != nil {
		return false, err
	}
	return s.queryOne(ctx, dest, pgSelectOne, collection, field, text)
}

func (s *PostgresStore) queryOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	var body []byte
	err := s.DB.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, pgError("select", err)
	}
	return true, decodeInto(json.RawMessage(body), dest)
}

func (s *PostgresStore) FindAll(ctx context.Context, collection string, dest any) error {
	rows, err := s.DB.QueryContext(ctx, pgSelectAll, collection)
	if err != nil {
		return pgError("select all", err)
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return pgError("scan", err)
		}
		docs = append(docs, json.RawMessage(body))
	}
	if err := rows.Err(); err != nil {
		return pgError("rows", err)
	}
	return decodeInto(docs, dest)
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	id := NewID()
	m, err := newDocument(id, doc)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("docstore: encode document: %w", err)
	}
	if _, err := s.DB.ExecContext(ctx, pgInsert, collection, id, body); err != nil {
		return "", pgError("insert", err)
	}
	return id, nil
}

func (s *PostgresStore) UpdateByID(ctx context.Context, collection, id string, patch map[string]any) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	set, err := toDocument(patch)
	if err != nil {
		return false, err
	}
	delete(set, IDField)
	body, err := json.Marshal(set)
	if err != nil {
		return false, fmt.Errorf("docstore: encode patch: %w", err)
	}
	res, err := s.DB.ExecContext(ctx, pgUpdate, collection, id, body)
	if err != nil {
		return false, pgError("update", err)
	}
	return affected(res)
}

func (s *PostgresStore) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	res, err := s.DB.ExecContext(ctx, pgDelete, collection, id)
	if err != nil {
		return false, pgError("delete", err)
	}
	return affected(res)
}

// Increment relies on the row lock taken by the guarded UPDATE; when no row
// comes back a second query tells a missing document from a refused change.
func (s *PostgresStore) Increment(ctx context.Context, collection, id, field string, delta int) (int, error) {
	if !ValidID(id) {
		return 0, ErrNotFound
	}

	var next int
	err := s.DB.QueryRowContext(ctx, pgIncrement, collection, id, field, delta).Scan(&next)
	if err == nil {
		return next, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, pgError("increment", err)
	}

	var exists bool
	if err := s.DB.QueryRowContext(ctx, pgExists, collection, id).Scan(&exists); err != nil {
		return 0, pgError("exists", err)
	}
	if !exists {
		return 0, ErrNotFound
	}
	return 0, ErrBelowZero
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *PostgresStore) Close(context.Context) error {
	return s.DB.Close()
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, pgError("rows affected", err)
	}
	return n > 0, nil
}

// textValue renders value the way ->> renders a JSON scalar.
func textValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("docstore: encode filter value: %w", err)
	}
	return string(raw), nil
}

func pgError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("docstore: postgres %s (%s): %w", op, pqErr.Code.Name(), err)
	}
	return fmt.Errorf("docstore: postgres %s: %w", op, err)
}

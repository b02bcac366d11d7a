package docstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgres(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return &PostgresStore{DB: db}, mock
}

func TestPostgresMigrate(t *testing.T) {
	store, mock := newMockPostgres(t)
	mock.ExpectExec(regexp.QuoteMeta(migrationsSQL)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Migrate(context.Background()))
}

func TestPostgresInsertStoresIDInBody(t *testing.T) {
	store, mock := newMockPostgres(t)
	mock.ExpectExec(regexp.QuoteMeta(pgInsert)).
		WithArgs("products", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := store.Insert(context.Background(), "products", item{Name: "Martelo de Thor", Quantity: 10})
	require.NoError(t, err)
	assert.True(t, ValidID(id))
}

func TestPostgresFindByID(t *testing.T) {
	store, mock := newMockPostgres(t)
	id := NewID()
	mock.ExpectQuery(regexp.QuoteMeta(pgSelectByID)).
		WithArgs("products", id).
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow([]byte(`{"_id":"` + id + `","name":"Martelo de Thor","quantity":10}`)))

	var got item
	found, err := store.FindByID(context.Background(), "products", id, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, item{ID: id, Name: "Martelo de Thor", Quantity: 10}, got)
}

func TestPostgresFindByIDMissingAndMalformed(t *testing.T) {
	store, mock := newMockPostgres(t)
	id := NewID()
	mock.ExpectQuery(regexp.QuoteMeta(pgSelectByID)).
		WithArgs("products", id).
		WillReturnError(sql.ErrNoRows)

	var got item
	found, err := store.FindByID(context.Background(), "products", id, &got)
	require.NoError(t, err)
	assert.False(t, found)

	// malformed ids never reach the database
	found, err = store.FindByID(context.Background(), "products", "123", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresFindOneRendersValueAsText(t *testing.T) {
	store, mock := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(pgSelectOne)).
		WithArgs("products", "quantity", "10").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	var got item
	found, err := store.FindOne(context.Background(), "products", "quantity", 10, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresFindAll(t *testing.T) {
	store, mock := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(pgSelectAll)).
		WithArgs("products").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow([]byte(`{"_id":"a","name":"Produto A","quantity":1}`)).
			AddRow([]byte(`{"_id":"b","name":"Produto B","quantity":2}`)))

	var got []item
	require.NoError(t, store.FindAll(context.Background(), "products", &got))
	assert.Equal(t, []item{{ID: "a", Name: "Produto A", Quantity: 1}, {ID: "b", Name: "Produto B", Quantity: 2}}, got)
}

func TestPostgresUpdateAndDeleteReportRowsAffected(t *testing.T) {
	store, mock := newMockPostgres(t)
	id := NewID()
	mock.ExpectExec(regexp.QuoteMeta(pgUpdate)).
		WithArgs("products", id, []byte(`{"name":"Novo nome"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(pgDelete)).
		WithArgs("products", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := store.UpdateByID(context.Background(), "products", id, map[string]any{"name": "Novo nome", "_id": "x"})
	require.NoError(t, err)
	assert.True(t, found)

	found, err = store.DeleteByID(context.Background(), "products", id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresIncrement(t *testing.T) {
	id := NewID()

	t.Run("applied", func(t *testing.T) {
		store, mock := newMockPostgres(t)
		mock.ExpectQuery(regexp.QuoteMeta(pgIncrement)).
			WithArgs("products", id, "quantity", -3).
			WillReturnRows(sqlmock.NewRows([]string{"int4"}).AddRow(7))

		v, err := store.Increment(context.Background(), "products", id, "quantity", -3)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("refused", func(t *testing.T) {
		store, mock := newMockPostgres(t)
		mock.ExpectQuery(regexp.QuoteMeta(pgIncrement)).
			WithArgs("products", id, "quantity", -30).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(pgExists)).
			WithArgs("products", id).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := store.Increment(context.Background(), "products", id, "quantity", -30)
		assert.ErrorIs(t, err, ErrBelowZero)
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockPostgres(t)
		mock.ExpectQuery(regexp.QuoteMeta(pgIncrement)).
			WithArgs("products", id, "quantity", 1).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(pgExists)).
			WithArgs("products", id).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := store.Increment(context.Background(), "products", id, "quantity", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresErrorsCarryCondition(t *testing.T) {
	store, mock := newMockPostgres(t)
	pqErr := &pq.Error{Code: "23505", Message: "duplicate key value"}
	mock.ExpectExec(regexp.QuoteMeta(pgInsert)).
		WithArgs("products", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pqErr)

	_, err := store.Insert(context.Background(), "products", item{Name: "Produto", Quantity: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique_violation")
	var got *pq.Error
	assert.True(t, errors.As(err, &got))
}

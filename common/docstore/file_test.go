package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	id, err := first.Insert(ctx, "products", item{Name: "Martelo de Thor", Quantity: 10})
	require.NoError(t, err)

	second, err := NewFileStore(path)
	require.NoError(t, err)
	var got item
	found, err := second.FindByID(ctx, "products", id, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, path, second.FilePath())
}

func TestFileStoreLoadsSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	seed := `{"products":{"5f43a7ca92d58b13d4e5a5b3":{"_id":"5f43a7ca92d58b13d4e5a5b3","name":"Traje de encolhimento","quantity":20}}}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	v, err := store.Increment(context.Background(), "products", "5f43a7ca92d58b13d4e5a5b3", "quantity", -5)
	require.NoError(t, err)
	assert.Equal(t, 15, v)
}

func TestFileStoreReportsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Error(t, store.Ping(context.Background()))

	var all []item
	assert.Error(t, store.FindAll(context.Background(), "products", &all))
}

func TestNewFileStoreRequiresDirectory(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "missing", "store.json"))
	assert.Error(t, err)
}

func TestFileStoreRefusedIncrementLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()
	store, err := NewFileStore(path)
	require.NoError(t, err)
	id, err := store.Insert(ctx, "products", item{Name: "Produto", Quantity: 1})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = store.Increment(ctx, "products", id, "quantity", -2)
	assert.ErrorIs(t, err, ErrBelowZero)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

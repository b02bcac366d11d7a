package docstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/narender/store-manager/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, config.NewConfig(), discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store.(*instrumentedStore).next)

	cfg := config.NewConfig(config.WithStoreBackend(config.BackendFile), config.WithDataFilePath(filepath.Join(t.TempDir(), "db.json")))
	store, err = Open(ctx, cfg, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store.(*instrumentedStore).next)
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.NewConfig(config.WithStoreBackend("cassandra")), discardLogger())
	assert.ErrorContains(t, err, "cassandra")
}

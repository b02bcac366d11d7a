package docstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func newMiniRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreWithClient(client, "test"), mr
}

func TestRedisStoreContract(t *testing.T) {
	suite.Run(t, &storeContract{newStore: func(t *testing.T) Store {
		store, _ := newMiniRedisStore(t)
		return store
	}})
}

func TestRedisStoreKeyLayout(t *testing.T) {
	store, mr := newMiniRedisStore(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, "products", item{Name: "Martelo de Thor", Quantity: 10})
	require.NoError(t, err)

	assert.True(t, mr.Exists("test:products:"+id))
	members, err := mr.ZMembers("test:products:_ids")
	require.NoError(t, err)
	assert.Equal(t, []string{id}, members)

	_, err = store.DeleteByID(ctx, "products", id)
	require.NoError(t, err)
	assert.False(t, mr.Exists("test:products:"+id))
}

func TestRedisStoreIncrementRejectsNonInteger(t *testing.T) {
	store, _ := newMiniRedisStore(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, "products", map[string]any{"name": "Produto", "quantity": "many"})
	require.NoError(t, err)

	_, err = store.Increment(ctx, "products", id, "quantity", 1)
	assert.ErrorIs(t, err, ErrNotInteger)
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "://nope", "")
	assert.Error(t, err)
}

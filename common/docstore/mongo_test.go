package docstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestMongoStoreContract needs a reachable server in MONGO_TEST_URL.
func TestMongoStoreContract(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URL")
	if uri == "" {
		t.Skip("MONGO_TEST_URL not set")
	}
	suite.Run(t, &storeContract{newStore: func(t *testing.T) Store {
		ctx := context.Background()
		store, err := NewMongoStore(ctx, uri, "docstore_test_"+NewID())
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.db.Drop(context.Background()) })
		return store
	}})
}

func TestFromMongoConvertsObjectIDs(t *testing.T) {
	oid := primitive.NewObjectID()
	raw := bson.M{
		"_id":  oid,
		"name": "Produto",
		"itensSold": primitive.A{
			bson.M{"productId": "p1", "quantity": int32(2)},
		},
	}

	doc := fromMongo(raw)

	assert.Equal(t, oid.Hex(), doc["_id"])
	var got order
	require.NoError(t, decodeInto(doc, &got))
	assert.Equal(t, []line{{ProductID: "p1", Quantity: 2}}, got.Lines)
}

func TestToMongoKeepsIntegersIntegral(t *testing.T) {
	m, err := toMongo(item{Name: "Produto", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), m["quantity"])
	assert.Equal(t, "Produto", m["name"])
}

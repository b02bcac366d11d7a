package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

// MongoStore keeps documents in MongoDB with native ObjectID _id values.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore connects to uri and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("docstore: connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("docstore: ping mongo: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

func (s *MongoStore) FindByID(ctx context.Context, collection, id string, dest any) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	return s.findOne(ctx, collection, bson.M{IDField: oid}, dest)
}

func (s *MongoStore) FindOne(ctx context.Context, collection, field string, value any, dest any) (bool, error) {
	return s.findOne(ctx, collection, bson.M{field: value}, dest)
}

func (s *MongoStore) findOne(ctx context.Context, collection string, filter bson.M, dest any) (bool, error) {
	var raw bson.M
	opts := options.FindOne().SetSort(bson.D{{Key: IDField, Value: 1}})
	err := s.db.Collection(collection).FindOne(ctx, filter, opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: mongo find in %s: %w", collection, err)
	}
	return true, decodeInto(fromMongo(raw), dest)
}

func (s *MongoStore) FindAll(ctx context.Context, collection string, dest any) error {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: IDField, Value: 1}}))
	if err != nil {
		return fmt.Errorf("docstore: mongo find all in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []map[string]any{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return fmt.Errorf("docstore: mongo decode in %s: %w", collection, err)
		}
		docs = append(docs, fromMongo(raw))
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("docstore: mongo cursor in %s: %w", collection, err)
	}
	return decodeInto(docs, dest)
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	oid := primitive.NewObjectID()
	m, err := toMongo(doc)
	if err != nil {
		return "", err
	}
	m[IDField] = oid
	if _, err := s.db.Collection(collection).InsertOne(ctx, m); err != nil {
		return "", fmt.Errorf("docstore: mongo insert into %s: %w", collection, err)
	}
	return oid.Hex(), nil
}

func (s *MongoStore) UpdateByID(ctx context.Context, collection, id string, patch map[string]any) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	set, err := toMongo(patch)
	if err != nil {
		return false, err
	}
	delete(set, IDField)
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{IDField: oid}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("docstore: mongo update in %s: %w", collection, err)
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{IDField: oid})
	if err != nil {
		return false, fmt.Errorf("docstore: mongo delete in %s: %w", collection, err)
	}
	return res.DeletedCount > 0, nil
}

// Increment uses a single guarded findOneAndUpdate: the filter only matches
// while the field is large enough to absorb a negative delta.
func (s *MongoStore) Increment(ctx context.Context, collection, id, field string, delta int) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrNotFound
	}
	filter := bson.M{IDField: oid}
	if delta < 0 {
		filter[field] = bson.M{"$gte": -delta}
	}

	var updated bson.M
	err = s.db.Collection(collection).FindOneAndUpdate(ctx, filter,
		bson.M{"$inc": bson.M{field: delta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		n, countErr := s.db.Collection(collection).CountDocuments(ctx, bson.M{IDField: oid})
		if countErr != nil {
			return 0, fmt.Errorf("docstore: mongo count in %s: %w", collection, countErr)
		}
		if n == 0 {
			return 0, ErrNotFound
		}
		return 0, ErrBelowZero
	}
	if err != nil {
		return 0, fmt.Errorf("docstore: mongo increment in %s: %w", collection, err)
	}

	next, ok := intValue(updated[field])
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, field)
	}
	return next, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toMongo converts a value into a bson.M, keeping integers integral.
func toMongo(v any) (bson.M, error) {
	doc, err := toDocument(v)
	if err != nil {
		return nil, err
	}
	return bson.M(normalizeNumbers(doc).(map[string]any)), nil
}

// normalizeNumbers turns json.Number leaves into int64 or float64.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeNumbers(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalizeNumbers(val)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

// fromMongo rewrites ObjectID values to their hex form.
func fromMongo(raw bson.M) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = fromMongoValue(v)
	}
	return out
}

func fromMongoValue(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case bson.M:
		return fromMongo(t)
	case primitive.D:
		return fromMongo(t.Map())
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromMongoValue(e)
		}
		return out
	default:
		return v
	}
}

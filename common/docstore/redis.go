package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// Each document is a JSON string under "<prefix>:<collection>:<id>"; the ids of
// a collection live in a zero-score sorted set so ZRANGE yields id order.
var (
	redisUpdateScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then return 0 end
local doc = cjson.decode(raw)
local patch = cjson.decode(ARGV[1])
for k, v in pairs(patch) do doc[k] = v end
redis.call('SET', KEYS[1], cjson.encode(doc))
return 1
`)

	redisIncrementScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then return {-1, 0} end
local doc = cjson.decode(raw)
local current = doc[ARGV[1]]
if current == nil then current = 0 end
if type(current) ~= 'number' or current % 1 ~= 0 then return {-3, 0} end
local next = current + tonumber(ARGV[2])
if next < 0 then return {-2, current} end
doc[ARGV[1]] = next
redis.call('SET', KEYS[1], cjson.encode(doc))
return {0, next}
`)
)

// RedisStore keeps documents in Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects using a redis:// URL and verifies it with a ping.
func NewRedisStore(ctx context.Context, redisURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("docstore: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("docstore: ping redis: %w", err)
	}
	return NewRedisStoreWithClient(client, prefix), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "docstore"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) docKey(collection, id string) string {
	return s.prefix + ":" + collection + ":" + id
}

func (s *RedisStore) indexKey(collection string) string {
	return s.prefix + ":" + collection + ":_ids"
}

func (s *RedisStore) FindByID(ctx context.Context, collection, id string, dest any) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	raw, err := s.client.Get(ctx, s.docKey(collection, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: redis get: %w", err)
	}
	return true, decodeInto(json.RawMessage(raw), dest)
}

// FindOne scans the collection in id order; collections here are small.
func (s *RedisStore) FindOne(ctx context.Context, collection, field string, value any, dest any) (bool, error) {
	docs, err := s.all(ctx, collection)
	if err != nil {
		return false, err
	}
	for _, doc := range docs {
		if v, ok := doc[field]; ok && sameValue(v, value) {
			return true, decodeInto(doc, dest)
		}
	}
	return false, nil
}

func (s *RedisStore) FindAll(ctx context.Context, collection string, dest any) error {
	docs, err := s.all(ctx, collection)
	if err != nil {
		return err
	}
	return decodeInto(docs, dest)
}

func (s *RedisStore) all(ctx context.Context, collection string) ([]map[string]any, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("docstore: redis list ids: %w", err)
	}
	docs := make([]map[string]any, 0, len(ids))
	if len(ids) == 0 {
		return docs, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(collection, id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("docstore: redis mget: %w", err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// removed between ZRANGE and MGET
			continue
		}
		doc, err := toDocument(json.RawMessage(raw))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *RedisStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	id := NewID()
	m, err := newDocument(id, doc)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("docstore: encode document: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(collection, id), body, 0)
		pipe.ZAdd(ctx, s.indexKey(collection), redis.Z{Score: 0, Member: id})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("docstore: redis insert: %w", err)
	}
	return id, nil
}

func (s *RedisStore) UpdateByID(ctx context.Context, collection, id string, patch map[string]any) (bool, error) {
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
	n, err := redisUpdateScript.Run(ctx, s.client, []string{s.docKey(collection, id)}, string(body)).Int()
	if err != nil {
		return false, fmt.Errorf("docstore: redis update: %w", err)
	}
	return n == 1, nil
}

func (s *RedisStore) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.docKey(collection, id))
		pipe.ZRem(ctx, s.indexKey(collection), id)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("docstore: redis delete: %w", err)
	}
	return del.Val() > 0, nil
}

// Increment runs as a Lua script, which Redis executes atomically.
func (s *RedisStore) Increment(ctx context.Context, collection, id, field string, delta int) (int, error) {
	if !ValidID(id) {
		return 0, ErrNotFound
	}
	res, err := redisIncrementScript.Run(ctx, s.client, []string{s.docKey(collection, id)}, field, delta).Int64Slice()
	if err != nil {
		return 0, fmt.Errorf("docstore: redis increment: %w", err)
	}
	if len(res) != 2 {
		return 0, fmt.Errorf("docstore: redis increment: unexpected reply %v", res)
	}
	switch res[0] {
	case 0:
		return int(res[1]), nil
	case -1:
		return 0, ErrNotFound
	case -2:
		return 0, ErrBelowZero
	default:
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, field)
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close(context.Context) error {
	return s.client.Close()
}

package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore maps collections to Firestore collections and ids to document ids.
// The "_id" field is not stored; it is restored from the document reference.
type FirestoreStore struct {
	Client *firestore.Client
}

var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore creates a client for projectID. An empty credentialsFile
// falls back to application default credentials or FIRESTORE_EMULATOR_HOST.
func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("docstore: firestore client: %w", err)
	}
	return &FirestoreStore{Client: client}, nil
}

func (s *FirestoreStore) col(collection string) *firestore.CollectionRef {
	return s.Client.Collection(collection)
}

func (s *FirestoreStore) FindByID(ctx context.Context, collection, id string, dest any) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	snap, err := s.col(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: firestore get: %w", err)
	}
	return true, decodeInto(snapshotDocument(snap), dest)
}

func (s *FirestoreStore) FindOne(ctx context.Context, collection, field string, value any, dest any) (bool, error) {
	it := s.col(collection).Where(field, "==", value).OrderBy(firestore.DocumentID, firestore.Asc).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: firestore query: %w", err)
	}
	return true, decodeInto(snapshotDocument(snap), dest)
}

func (s *FirestoreStore) FindAll(ctx context.Context, collection string, dest any) error {
	it := s.col(collection).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer it.Stop()

	docs := []map[string]any{}
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("docstore: firestore list: %w", err)
		}
		docs = append(docs, snapshotDocument(snap))
	}
	return decodeInto(docs, dest)
}

func (s *FirestoreStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	id := NewID()
	m, err := toFirestore(doc)
	if err != nil {
		return "", err
	}
	if _, err := s.col(collection).Doc(id).Create(ctx, m); err != nil {
		return "", fmt.Errorf("docstore: firestore create: %w", err)
	}
	return id, nil
}

func (s *FirestoreStore) UpdateByID(ctx context.Context, collection, id string, patch map[string]any) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	set, err := toFirestore(patch)
	if err != nil {
		return false, err
	}
	updates := make([]firestore.Update, 0, len(set))
	for k, v := range set {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	if len(updates) == 0 {
		return s.exists(ctx, collection, id)
	}
	_, err = s.col(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: firestore update: %w", err)
	}
	return true, nil
}

func (s *FirestoreStore) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	_, err := s.col(collection).Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: firestore delete: %w", err)
	}
	return true, nil
}

// Increment reads and writes the document inside a transaction, which
// Firestore retries on contention.
func (s *FirestoreStore) Increment(ctx context.Context, collection, id, field string, delta int) (int, error) {
	if !ValidID(id) {
		return 0, ErrNotFound
	}
	ref := s.col(collection).Doc(id)

	var next int
	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		next, err = applyIncrement(snap.Data(), field, delta)
		if err != nil {
			return err
		}
		return tx.Update(ref, []firestore.Update{{FieldPath: firestore.FieldPath{field}, Value: next}})
	})
	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrBelowZero), errors.Is(err, ErrNotInteger):
		return 0, err
	default:
		return 0, fmt.Errorf("docstore: firestore increment: %w", err)
	}
}

func (s *FirestoreStore) exists(ctx context.Context, collection, id string) (bool, error) {
	_, err := s.col(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: firestore get: %w", err)
	}
	return true, nil
}

// Ping issues a cheap read; a missing document still proves connectivity.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.Client.Collection("_health").Doc("ping").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("docstore: firestore ping: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Close(context.Context) error {
	return s.Client.Close()
}

func snapshotDocument(snap *firestore.DocumentSnapshot) map[string]any {
	doc := snap.Data()
	doc[IDField] = snap.Ref.ID
	return doc
}

// toFirestore converts v to a field map without "_id", with integral numbers as int64.
func toFirestore(v any) (map[string]any, error) {
	doc, err := toDocument(v)
	if err != nil {
		return nil, err
	}
	delete(doc, IDField)
	return normalizeNumbers(doc).(map[string]any), nil
}

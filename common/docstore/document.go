package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a new ObjectID in hex form. Ids sort in creation order.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID reports whether id is a 24-hex ObjectID.
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// toDocument converts any JSON-encodable value into its canonical map form.
func toDocument(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode document: %w", err)
	}
	var doc map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("docstore: document must be a JSON object: %w", err)
	}
	return doc, nil
}

// newDocument canonicalizes doc for insertion under id.
func newDocument(id string, doc any) (map[string]any, error) {
	m, err := toDocument(doc)
	if err != nil {
		return nil, err
	}
	m[IDField] = id
	return m, nil
}

// decodeInto fills dest (pointer to struct, map or slice) from any JSON-encodable value.
func decodeInto(src any, dest any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("docstore: encode stored document: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("docstore: decode document: %w", err)
	}
	return nil
}

// cloneDocument deep-copies a canonical document.
func cloneDocument(doc map[string]any) map[string]any {
	out, err := toDocument(doc)
	if err != nil {
		// canonical documents always re-encode
		panic(err)
	}
	return out
}

// sameValue compares two values by their JSON encoding.
func sameValue(a, b any) bool {
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(normalizeNumber(ra), normalizeNumber(rb))
}

// normalizeNumber maps equal numeric encodings ("5", "5.0") onto one form.
func normalizeNumber(raw []byte) []byte {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		out, _ := json.Marshal(f)
		return out
	}
	return raw
}

// intValue extracts an integral number from a decoded document field.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// applyIncrement computes the new value of field or reports why it cannot change.
func applyIncrement(doc map[string]any, field string, delta int) (int, error) {
	current := 0
	if v, present := doc[field]; present && v != nil {
		n, ok := intValue(v)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrNotInteger, field)
		}
		current = n
	}
	next := current + delta
	if next < 0 {
		return current, ErrBelowZero
	}
	return next, nil
}

// sortedIDs returns the keys of docs in ascending order.
func sortedIDs(docs map[string]map[string]any) []string {
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

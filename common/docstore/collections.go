package docstore

// collections is the in-process data model shared by MemoryStore and FileStore.
// It is not safe for concurrent use; callers hold their own lock.
type collections map[string]map[string]map[string]any

func (c collections) coll(name string, create bool) map[string]map[string]any {
	docs, ok := c[name]
	if !ok && create {
		docs = map[string]map[string]any{}
		c[name] = docs
	}
	return docs
}

func (c collections) findByID(collection, id string) (map[string]any, bool) {
	doc, ok := c.coll(collection, false)[id]
	return doc, ok
}

func (c collections) findOne(collection, field string, value any) (map[string]any, bool) {
	docs := c.coll(collection, false)
	for _, id := range sortedIDs(docs) {
		if v, ok := docs[id][field]; ok && sameValue(v, value) {
			return docs[id], true
		}
	}
	return nil, false
}

func (c collections) all(collection string) []map[string]any {
	docs := c.coll(collection, false)
	out := make([]map[string]any, 0, len(docs))
	for _, id := range sortedIDs(docs) {
		out = append(out, docs[id])
	}
	return out
}

func (c collections) insert(collection string, doc any) (string, error) {
	id := NewID()
	m, err := newDocument(id, doc)
	if err != nil {
		return "", err
	}
	c.coll(collection, true)[id] = m
	return id, nil
}

func (c collections) update(collection, id string, patch map[string]any) (bool, error) {
	doc, ok := c.findByID(collection, id)
	if !ok {
		return false, nil
	}
	canonical, err := toDocument(patch)
	if err != nil {
		return false, err
	}
	delete(canonical, IDField)
	for k, v := range canonical {
		doc[k] = v
	}
	return true, nil
}

func (c collections) remove(collection, id string) bool {
	docs := c.coll(collection, false)
	if _, ok := docs[id]; !ok {
		return false
	}
	delete(docs, id)
	return true
}

func (c collections) increment(collection, id, field string, delta int) (int, error) {
	doc, ok := c.findByID(collection, id)
	if !ok {
		return 0, ErrNotFound
	}
	next, err := applyIncrement(doc, field, delta)
	if err != nil {
		return 0, err
	}
	doc[field] = next
	return next, nil
}

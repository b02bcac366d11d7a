package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists all collections in a single JSON file. Every operation
// reads the file, applies the change and rewrites it, so the file stays the
// source of truth. Writes go through a temp file and rename.
type FileStore struct {
	mu       sync.Mutex
	filePath string
}

var _ Store = (*FileStore)(nil)

// NewFileStore prepares a store at filePath. A missing file is an empty store;
// its directory must exist.
func NewFileStore(filePath string) (*FileStore, error) {
	dir := filepath.Dir(filePath)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("docstore: data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docstore: %s is not a directory", dir)
	}
	return &FileStore{filePath: filePath}, nil
}

// FilePath returns the path to the database file.
func (s *FileStore) FilePath() string {
	return s.filePath
}

func (s *FileStore) read() (collections, error) {
	content, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return collections{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("docstore: read %s: %w", s.filePath, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return collections{}, nil
	}

	data := collections{}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("docstore: unmarshal %s: %w", s.filePath, err)
	}
	return data, nil
}

func (s *FileStore) write(data collections) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("docstore: marshal data: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), ".docstore-*.json")
	if err != nil {
		return fmt.Errorf("docstore: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(jsonData); err != nil {
		tmp.Close()
		return fmt.Errorf("docstore: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("docstore: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return fmt.Errorf("docstore: replace %s: %w", s.filePath, err)
	}
	return nil
}

func (s *FileStore) view(fn func(collections) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	return fn(data)
}

// mutate applies fn and persists the result only when fn reports a change.
func (s *FileStore) mutate(fn func(collections) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	changed, err := fn(data)
	if err != nil || !changed {
		return err
	}
	return s.write(data)
}

func (s *FileStore) FindByID(_ context.Context, collection, id string, dest any) (found bool, err error) {
	err = s.view(func(data collections) error {
		doc, ok := data.findByID(collection, id)
		if !ok {
			return nil
		}
		found = true
		return decodeInto(doc, dest)
	})
	return found, err
}

func (s *FileStore) FindOne(_ context.Context, collection, field string, value any, dest any) (found bool, err error) {
	err = s.view(func(data collections) error {
		doc, ok := data.findOne(collection, field, value)
		if !ok {
			return nil
		}
		found = true
		return decodeInto(doc, dest)
	})
	return found, err
}

func (s *FileStore) FindAll(_ context.Context, collection string, dest any) error {
	return s.view(func(data collections) error {
		return decodeInto(data.all(collection), dest)
	})
}

func (s *FileStore) Insert(_ context.Context, collection string, doc any) (id string, err error) {
	err = s.mutate(func(data collections) (bool, error) {
		id, err = data.insert(collection, doc)
		return err == nil, err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *FileStore) UpdateByID(_ context.Context, collection, id string, patch map[string]any) (found bool, err error) {
	err = s.mutate(func(data collections) (bool, error) {
		found, err = data.update(collection, id, patch)
		return found, err
	})
	return found, err
}

func (s *FileStore) DeleteByID(_ context.Context, collection, id string) (found bool, err error) {
	err = s.mutate(func(data collections) (bool, error) {
		found = data.remove(collection, id)
		return found, nil
	})
	return found, err
}

func (s *FileStore) Increment(_ context.Context, collection, id, field string, delta int) (value int, err error) {
	err = s.mutate(func(data collections) (bool, error) {
		value, err = data.increment(collection, id, field, delta)
		return err == nil, err
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Ping checks that the file, if present, is readable and well formed.
func (s *FileStore) Ping(context.Context) error {
	return s.view(func(collections) error { return nil })
}

func (s *FileStore) Close(context.Context) error { return nil }

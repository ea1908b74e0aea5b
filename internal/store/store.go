// Package store persists the site configuration document as a single JSON
// file. The document is read and written whole; section-level operations are
// read-modify-write over the full artifact.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound is returned when no configuration document has been
	// written yet.
	ErrNotFound = errors.New("config document not found")
	// ErrSectionNotFound is returned by DeleteSection for an unknown key.
	ErrSectionNotFound = errors.New("section not found")
	// ErrInvalidInput is returned when a caller omits a required argument.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorage wraps filesystem and parse failures.
	ErrStorage = errors.New("storage error")
)

// Document is the stored configuration keyed by section name. The store does
// not interpret section payloads; typed shapes live in the content package.
type Document map[string]json.RawMessage

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for name, raw := range d {
		buf := make(json.RawMessage, len(raw))
		copy(buf, raw)
		out[name] = buf
	}
	return out
}

// FileStore keeps the document at a fixed path on the local filesystem.
// Writes are whole-document and rename-atomic: a reader never observes a
// truncated file, and a failed write leaves the previous document intact.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the stored document.
func (s *FileStore) Path() string {
	return s.path
}

// ReadAll loads the full document.
func (s *FileStore) ReadAll(ctx context.Context) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// WriteAll replaces the stored document with doc.
func (s *FileStore) WriteAll(ctx context.Context, doc Document) error {
	if doc == nil {
		return fmt.Errorf("%w: no document provided", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// WriteSection replaces one section of the stored document and returns the
// full updated document. The read step surfaces ErrNotFound when no document
// exists yet.
func (s *FileStore) WriteSection(ctx context.Context, name string, value json.RawMessage) (Document, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: no section name provided", ErrInvalidInput)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("%w: no section data provided", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	doc[name] = value
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteSection removes one section and returns the document without it.
func (s *FileStore) DeleteSection(ctx context.Context, name string) (Document, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: no section name provided", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	if _, ok := doc[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
	delete(doc, name)
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Ping reports whether the document's directory is reachable.
func (s *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("%w: stat config dir: %v", ErrStorage, err)
	}
	return nil
}

func (s *FileStore) read() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: read config file: %v", ErrStorage, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse config file: %v", ErrStorage, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

func (s *FileStore) write(doc Document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal config: %v", ErrStorage, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create config dir: %v", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".site-config-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrStorage, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(payload, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrStorage, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace config file: %v", ErrStorage, err)
	}
	return nil
}

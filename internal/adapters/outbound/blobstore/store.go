// Package blobstore persists named JSON documents under a data directory.
//
// The store is deliberately forgiving: a missing or unreadable document
// reads back as the empty default, and a failed write is logged and
// reported as false. Nothing here is fatal.
package blobstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Store is a file-based implementation of domain.BlobStore.
type Store struct {
	dir string
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load decodes the named document into out. A missing file leaves out at
// its empty default; read and parse failures are logged and likewise
// leave out untouched.
func (s *Store) Load(name string, out any) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("loading document", "name", name, "err", err)
		}
		return
	}

	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("parsing document", "name", name, "err", err)
	}
}

// Save writes v as the named document, creating the data directory as
// needed. The whole document is rewritten on every save. Returns false
// on failure.
func (s *Store) Save(name string, v any) bool {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		slog.Error("creating data directory", "dir", s.dir, "err", err)
		return false
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("encoding document", "name", name, "err", err)
		return false
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		slog.Error("writing document", "name", name, "err", err)
		return false
	}
	return true
}

// internal/app/store/lessons/registry.go
//
// Package lessons provides lesson-document lookup. Documents ship embedded
// in the binary; the Registry serves them in-process and the Mongo store
// persists them so operators can edit content without a redeploy.
package lessons

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

// ErrNotFound is returned when no document exists for a lesson ID.
var ErrNotFound = errors.New("lesson not found")

// Provider is the lookup interface features consume. Both the in-process
// Registry and the Mongo store satisfy it.
type Provider interface {
	Get(ctx context.Context, lessonID string) ([]byte, error)
}

// Registry holds raw lesson documents in memory, keyed by lesson ID.
type Registry struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// LoadEmbedded builds a Registry from the embedded lesson files. The file
// stem is the lesson ID; catalog.json is course metadata, not a lesson.
func LoadEmbedded() (*Registry, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded lessons: %w", err)
	}

	r := &Registry{docs: map[string][]byte{}}
	for _, entry := range entries {
		name := entry.Name()
		if name == "catalog.json" {
			continue
		}
		raw, err := dataFS.ReadFile(path.Join("data", name))
		if err != nil {
			return nil, fmt.Errorf("read embedded lesson %s: %w", name, err)
		}
		id := strings.TrimSuffix(name, ".json")
		r.docs[id] = raw
	}
	return r, nil
}

// Register adds or replaces a document.
func (r *Registry) Register(lessonID string, raw []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[lessonID] = raw
}

// Get returns the raw document for a lesson ID.
func (r *Registry) Get(_ context.Context, lessonID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.docs[lessonID]
	if !ok {
		return nil, ErrNotFound
	}
	return raw, nil
}

// IDs returns the registered lesson IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

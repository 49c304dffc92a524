package gateway

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Ensure Memory implements Gateway
var _ Gateway = (*Memory)(nil)

// Memory is an in-process Gateway used by tests and the memory driver.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
}

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]Document)}
}

func (m *Memory) Create(ctx context.Context, collection, id string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.New().String()
	}

	docs, ok := m.collections[collection]
	if !ok {
		docs = make(map[string]Document)
		m.collections[collection] = docs
	}
	docs[id] = cloneDoc(doc)

	return id, nil
}

func (m *Memory) Get(ctx context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.collections[collection][id]
	if !ok {
		return nil, nil
	}

	out := cloneDoc(doc)
	out["id"] = id
	return out, nil
}

func (m *Memory) QueryEqual(ctx context.Context, collection, field string, value any) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []Document
	for id, doc := range m.collections[collection] {
		if reflect.DeepEqual(doc[field], value) {
			out := cloneDoc(doc)
			out["id"] = id
			results = append(results, out)
		}
	}

	return results, nil
}

func (m *Memory) UpdatePartial(ctx context.Context, collection, id string, fields Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.collections[collection][id]
	if !ok {
		return nil
	}

	for k, v := range fields {
		doc[k] = v
	}

	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.collections[collection], id)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

func cloneDoc(doc Document) Document {
	out := make(Document, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	return out
}

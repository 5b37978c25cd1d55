// Package fixtures provides an in-memory document store for tests. It
// mirrors the merge and scoping semantics of the SQL-backed store.
package fixtures

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
)

type record struct {
	userID string
	data   map[string]any
}

// MemCollection is an in-memory repository.Collection implementation.
type MemCollection[T any] struct {
	mu   sync.Mutex
	docs map[string]*record
}

// NewMemCollection returns an empty in-memory collection.
func NewMemCollection[T any]() *MemCollection[T] {
	return &MemCollection[T]{docs: make(map[string]*record)}
}

func (m *MemCollection[T]) Create(_ context.Context, userID string, doc any) (string, error) {
	data, err := toMap(doc)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	now := time.Now().UnixMilli()
	data["id"] = id
	if userID != "" {
		data["userId"] = userID
	} else {
		delete(data, "userId")
	}
	if _, ok := data["createdAt"]; !ok {
		data["createdAt"] = now
	}
	data["updatedAt"] = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = &record{userID: userID, data: data}
	return id, nil
}

func (m *MemCollection[T]) Get(_ context.Context, userID, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.docs[id]
	if !ok || (userID != "" && rec.userID != userID) {
		return nil, domain.ErrNotFound
	}
	return decode[T](rec.data)
}

func (m *MemCollection[T]) List(_ context.Context, userID string, page dto.Pagination) (*repository.Page[T], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.docs))
	for id, rec := range m.docs {
		if userID != "" && rec.userID != userID {
			continue
		}
		if page.Cursor != "" && id <= page.Cursor {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	limit := page.Limit
	if limit <= 0 {
		limit = dto.DefaultPageLimit
	}
	out := &repository.Page[T]{}
	for i, id := range ids {
		if i == limit {
			out.NextCursor = ids[i-1]
			break
		}
		item, err := decode[T](m.docs[id].data)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (m *MemCollection[T]) Patch(_ context.Context, userID, id string, partial any) error {
	changes, err := toMap(partial)
	if err != nil {
		return err
	}
	delete(changes, "id")
	delete(changes, "userId")
	delete(changes, "updatedAt")

	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.docs[id]
	if !ok || (userID != "" && rec.userID != userID) {
		return domain.ErrNotFound
	}
	for k, v := range changes {
		rec.data[k] = v
	}
	rec.data["updatedAt"] = time.Now().UnixMilli()
	return nil
}

func (m *MemCollection[T]) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.docs[id]
	if !ok || (userID != "" && rec.userID != userID) {
		return domain.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

// Len reports how many documents the collection holds.
func (m *MemCollection[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

func toMap(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func decode[T any](data map[string]any) (*T, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

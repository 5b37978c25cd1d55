// Package repository implements the document-store port on Postgres via
// GORM: one documents table, records addressed by (collection, owner, id),
// payloads kept as jsonb.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
)

type document struct {
	ID         string `gorm:"primaryKey;size:36"`
	Collection string `gorm:"not null;size:64;index:idx_documents_scope,priority:1"`
	UserID     string `gorm:"size:128;index:idx_documents_scope,priority:2"`
	Data       []byte `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (document) TableName() string { return "documents" }

// Store owns the database handle shared by all collections.
type Store struct {
	db *gorm.DB
}

// New wraps db as a document store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to Postgres at url and wraps the handle as a store.
func Open(url string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// Migrate creates the documents table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&document{})
}

type collection[T any] struct {
	db   *gorm.DB
	name string
}

// NewCollection returns a typed view over one named collection of s.
func NewCollection[T any](s *Store, name string) repository.Collection[T] {
	return &collection[T]{db: s.db, name: name}
}

func (c *collection[T]) Create(ctx context.Context, userID string, doc any) (string, error) {
	m, err := toMap(doc)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	now := time.Now().UnixMilli()
	m["id"] = id
	if userID == "" {
		delete(m, "userId")
	} else {
		m["userId"] = userID
	}
	// AiMessage carries a caller-supplied creation time; everything else
	// is stamped here.
	if _, ok := m["createdAt"]; !ok {
		m["createdAt"] = now
	}
	m["updatedAt"] = now

	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	rec := document{ID: id, Collection: c.name, UserID: userID, Data: data}
	if err := c.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", err
	}
	return id, nil
}

func (c *collection[T]) Get(ctx context.Context, userID, id string) (*T, error) {
	var rec document
	err := c.scoped(ctx, userID).Where("id = ?", id).First(&rec).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return decode[T](rec.Data)
}

func (c *collection[T]) List(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[T], error) {
	if page.Limit <= 0 {
		page.Limit = dto.DefaultPageLimit
	}
	q := c.scoped(ctx, userID).Order("id").Limit(page.Limit + 1)
	if page.Cursor != "" {
		q = q.Where("id > ?", page.Cursor)
	}
	var recs []document
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := &repository.Page[T]{}
	for i := range recs {
		if i == page.Limit {
			out.NextCursor = recs[i-1].ID
			break
		}
		item, err := decode[T](recs[i].Data)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (c *collection[T]) Patch(ctx context.Context, userID, id string, partial any) error {
	changes, err := toMap(partial)
	if err != nil {
		return err
	}
	// The store owns identity and stamps; last-write-wins on the rest.
	delete(changes, "id")
	delete(changes, "userId")
	delete(changes, "updatedAt")

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := c.scope(tx.WithContext(ctx))
		if userID != "" {
			q = q.Where("user_id = ?", userID)
		}
		var rec document
		err := q.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			Take(&rec).Error
		if err != nil {
			return mapErr(err)
		}
		var m map[string]any
		if err := json.Unmarshal(rec.Data, &m); err != nil {
			return err
		}
		for k, v := range changes {
			m[k] = v
		}
		m["updatedAt"] = time.Now().UnixMilli()
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		return tx.WithContext(ctx).Model(&document{}).
			Where("id = ?", rec.ID).
			Update("data", data).Error
	})
}

func (c *collection[T]) Delete(ctx context.Context, userID, id string) error {
	res := c.scoped(ctx, userID).Where("id = ?", id).Delete(&document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *collection[T]) scoped(ctx context.Context, userID string) *gorm.DB {
	q := c.scope(c.db.WithContext(ctx))
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	return q
}

func (c *collection[T]) scope(db *gorm.DB) *gorm.DB {
	return db.Model(&document{}).Where("collection = ?", c.name)
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

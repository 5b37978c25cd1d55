// Package service holds the application services: one per domain area,
// each validating input DTOs and driving the document store.
package service

import (
	"context"
	"log/slog"

	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/validation"
)

// resource wires one entity's collection with the shared validator and
// logger. T is the persisted shape, C and U its create/update DTOs.
type resource[T, C, U any] struct {
	name string
	col  repository.Collection[T]
	val  *validation.Validator
	log  *slog.Logger
}

func newResource[T, C, U any](
	name string,
	col repository.Collection[T],
	val *validation.Validator,
	log *slog.Logger,
) resource[T, C, U] {
	return resource[T, C, U]{name: name, col: col, val: val, log: log}
}

func (r *resource[T, C, U]) create(ctx context.Context, userID string, in C) (*T, error) {
	v, err := validation.Parse(r.val, in)
	if err != nil {
		r.log.Warn("create rejected", "collection", r.name, "error", err)
		return nil, err
	}
	id, err := r.col.Create(ctx, userID, v)
	if err != nil {
		return nil, err
	}
	r.log.Info("document created", "collection", r.name, "id", id)
	return r.col.Get(ctx, userID, id)
}

func (r *resource[T, C, U]) update(ctx context.Context, userID, id string, in U) (*T, error) {
	v, err := validation.Parse(r.val, in)
	if err != nil {
		r.log.Warn("update rejected", "collection", r.name, "id", id, "error", err)
		return nil, err
	}
	if err := r.col.Patch(ctx, userID, id, v); err != nil {
		return nil, err
	}
	return r.col.Get(ctx, userID, id)
}

func (r *resource[T, C, U]) get(ctx context.Context, userID, id string) (*T, error) {
	return r.col.Get(ctx, userID, id)
}

func (r *resource[T, C, U]) list(ctx context.Context, userID string, page dto.Pagination) (*repository.Page[T], error) {
	page, err := validation.Parse(r.val, page)
	if err != nil {
		return nil, err
	}
	return r.col.List(ctx, userID, page)
}

func (r *resource[T, C, U]) delete(ctx context.Context, userID, id string) error {
	if err := r.col.Delete(ctx, userID, id); err != nil {
		return err
	}
	r.log.Info("document deleted", "collection", r.name, "id", id)
	return nil
}

// Package resource is the generic resource synchronizer: fetch a collection
// through the cache, mutate through the API client, invalidate the tag on
// success. One component, instantiated once per resource, in place of five
// near-identical copies.
package resource

import (
	"context"
	"errors"

	"github.com/travelplan/travelplan-go/internal/cache"
)

var (
	// ErrNotConfirmed is returned when a delete fires without the caller
	// having acknowledged the confirmation step.
	ErrNotConfirmed = errors.New("delete not confirmed")
)

// Input is the contract for create/edit form payloads.
type Input interface {
	Validate() error
}

// Collection synchronizes one remote collection of T, mutated via inputs of
// type I, under a single cache tag.
type Collection[T any, I Input] struct {
	tag    string
	cache  *cache.Store
	list   func(ctx context.Context) ([]T, error)
	create func(ctx context.Context, in I) (T, error)
	update func(ctx context.Context, id int64, in I) (T, error)
	remove func(ctx context.Context, id int64) error
}

// NewCollection binds a tag and the four API calls for one resource.
func NewCollection[T any, I Input](
	tag string,
	c *cache.Store,
	list func(ctx context.Context) ([]T, error),
	create func(ctx context.Context, in I) (T, error),
	update func(ctx context.Context, id int64, in I) (T, error),
	remove func(ctx context.Context, id int64) error,
) *Collection[T, I] {
	return &Collection[T, I]{
		tag:    tag,
		cache:  c,
		list:   list,
		create: create,
		update: update,
		remove: remove,
	}
}

// Tag returns the collection's cache tag.
func (c *Collection[T, I]) Tag() string {
	return c.tag
}

// List reads the collection through the cache: a fresh cached value is
// returned as-is, otherwise the service is fetched.
func (c *Collection[T, I]) List(ctx context.Context) ([]T, error) {
	return cache.Read(ctx, c.cache, c.tag, c.list)
}

// Create validates the input, submits it, and on success invalidates the tag
// so the next List observes the new item. Validation failures never reach
// the wire; mutation failures leave the cache untouched.
func (c *Collection[T, I]) Create(ctx context.Context, in I) (T, error) {
	if err := in.Validate(); err != nil {
		var zero T
		return zero, err
	}
	item, err := c.create(ctx, in)
	if err != nil {
		var zero T
		return zero, err
	}
	c.cache.Invalidate(c.tag)
	return item, nil
}

// Update is Create's contract applied to an existing item.
func (c *Collection[T, I]) Update(ctx context.Context, id int64, in I) (T, error) {
	if err := in.Validate(); err != nil {
		var zero T
		return zero, err
	}
	item, err := c.update(ctx, id, in)
	if err != nil {
		var zero T
		return zero, err
	}
	c.cache.Invalidate(c.tag)
	return item, nil
}

// Delete removes one item by id. The confirmation step is part of the
// contract: confirmed must be true or the call never fires.
func (c *Collection[T, I]) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := c.remove(ctx, id); err != nil {
		return err
	}
	c.cache.Invalidate(c.tag)
	return nil
}

package client

import (
	"context"
	"net/http"
)

// Record is anything a Collection can hold.
type Record interface {
	RecordID() string
}

// Collection is a read-through copy of one remote collection. Every
// mutation goes to the server first; Items is only reconciled on success,
// so a failed call leaves the local state exactly as it was and the caller
// can retry. The services, categories and bookings screens all sit on top
// of this one type.
type Collection[T Record] struct {
	client *Client
	path   string
	Items  []T
}

func NewCollection[T Record](c *Client, path string) *Collection[T] {
	return &Collection[T]{client: c, path: path}
}

// Fetch replaces Items with the server's full collection.
func (col *Collection[T]) Fetch(ctx context.Context) error {
	var items []T
	if err := col.client.do(ctx, http.MethodGet, col.path, nil, &items); err != nil {
		return err
	}
	col.Items = items
	return nil
}

// Create posts the input and appends the server-returned record.
func (col *Collection[T]) Create(ctx context.Context, input interface{}) (T, error) {
	var created T
	if err := col.client.do(ctx, http.MethodPost, col.path, input, &created); err != nil {
		return created, err
	}
	col.Items = append(col.Items, created)
	return created, nil
}

// Update sends the input keyed by id and replaces the matching record with
// the server's response.
func (col *Collection[T]) Update(ctx context.Context, id string, input interface{}) (T, error) {
	var updated T
	if err := col.client.do(ctx, http.MethodPut, col.path+"/"+id, input, &updated); err != nil {
		return updated, err
	}
	for i, item := range col.Items {
		if item.RecordID() == id {
			col.Items[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the record server-side, then locally.
func (col *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := col.client.do(ctx, http.MethodDelete, col.path+"/"+id, nil, nil); err != nil {
		return err
	}
	kept := col.Items[:0]
	for _, item := range col.Items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	col.Items = kept
	return nil
}

// Find returns the record with the given id, if present.
func (col *Collection[T]) Find(id string) (T, bool) {
	for _, item := range col.Items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

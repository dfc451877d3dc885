package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Collection is a REST resource under path with the usual list, get,
// create, patch and delete operations.
type Collection[T any] struct {
	client *Client
	path   string
}

func NewCollection[T any](client *Client, path string) Collection[T] {
	return Collection[T]{client: client, path: path}
}

func (c Collection[T]) List(ctx context.Context, token string, query url.Values) ([]T, error) {
	var items []T
	if err := c.client.do(ctx, http.MethodGet, c.path, token, query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c Collection[T]) Get(ctx context.Context, token, id string) (T, error) {
	var item T
	err := c.client.do(ctx, http.MethodGet, c.path+"/"+url.PathEscape(id), token, nil, nil, &item)
	return item, err
}

func (c Collection[T]) Create(ctx context.Context, token string, body any) (T, error) {
	var item T
	err := c.client.do(ctx, http.MethodPost, c.path, token, nil, body, &item)
	return item, err
}

func (c Collection[T]) Update(ctx context.Context, token, id string, body any) (T, error) {
	var item T
	err := c.client.do(ctx, http.MethodPatch, c.path+"/"+url.PathEscape(id), token, nil, body, &item)
	return item, err
}

func (c Collection[T]) Delete(ctx context.Context, token, id string) error {
	return c.client.do(ctx, http.MethodDelete, c.path+"/"+url.PathEscape(id), token, nil, nil, nil)
}

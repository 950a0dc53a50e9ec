package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// Validatable lets payload types check themselves. Inputs implementing it are
// validated before the request is sent, saving a round trip; decoded entities
// implementing it are validated after decode, turning a structurally valid
// but semantically broken response into a *DecodeError.
type Validatable interface {
	Validate() error
}

// Resource provides the CRUD verbs for one entity type mounted at a path.
type Resource[E any] struct {
	c    *Client
	path string
}

// NewResource binds an entity type to its mount point, e.g.
//
//	tasks := client.NewResource[Task](c, "/api/tasks")
func NewResource[E any](c *Client, path string) *Resource[E] {
	return &Resource[E]{c: c, path: path}
}

// List returns the full collection.
func (r *Resource[E]) List(ctx context.Context) ([]E, error) {
	var out []E
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.checkDecoded(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Get returns the entity with the given id.
func (r *Resource[E]) Get(ctx context.Context, id int64) (*E, error) {
	var out E
	if err := r.c.do(ctx, http.MethodGet, r.idPath(id), nil, &out); err != nil {
		return nil, err
	}
	if err := r.checkDecoded(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts in and returns the created entity, including its generated id
// and timestamps.
func (r *Resource[E]) Create(ctx context.Context, in any) (*E, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	var out E
	if err := r.c.do(ctx, http.MethodPost, r.path, in, &out); err != nil {
		return nil, err
	}
	if err := r.checkDecoded(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the entity with the given id.
func (r *Resource[E]) Update(ctx context.Context, id int64, in any) error {
	if err := validate(in); err != nil {
		return err
	}
	return r.c.do(ctx, http.MethodPut, r.idPath(id), in, nil)
}

// Delete removes the entity with the given id.
func (r *Resource[E]) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, r.idPath(id), nil, nil)
}

func (r *Resource[E]) idPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func validate(in any) error {
	if v, ok := in.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}
	}
	return nil
}

// checkDecoded applies the optional post-decode validation hook.
func (r *Resource[E]) checkDecoded(e *E) error {
	if v, ok := any(e).(Validatable); ok {
		if err := v.Validate(); err != nil {
			return &DecodeError{Path: r.path, Err: err}
		}
	}
	return nil
}

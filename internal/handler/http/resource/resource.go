// Package resource provides generic CRUD HTTP handlers. A Resource binds a
// use case service to a URL path and serves the standard verb set:
//
//	GET    {path}       list
//	POST   {path}       create
//	GET    {path}/{id}  get
//	PUT    {path}/{id}  replace
//	DELETE {path}/{id}  delete
//
// Entity-specific packages instantiate Resource with their service, DTO
// mapping and path, and get the full REST surface with consistent error
// mapping for free.
package resource

import (
	"context"
	"errors"
	"net/http"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/handler/http/respond"
)

// Replacer is the constraint on update inputs. BodyID reports the entity id
// carried in the request body, if any, so handlers can reject bodies whose id
// contradicts the path.
type Replacer interface {
	BodyID() (int64, bool)
}

// Service is the use case contract the handlers drive. E is the entity,
// C the create input, U the update input.
//
// Error contract: Get, Update and Delete return entity.ErrNotFound for
// missing ids; Update additionally returns entity.ErrConflict when a
// concurrent writer won the race. Validation failures surface as
// *entity.ValidationError or wrap entity.ErrInvalidInput.
type Service[E, C any, U Replacer] interface {
	List(ctx context.Context) ([]*E, error)
	Get(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, in C) (*E, error)
	Update(ctx context.Context, id int64, in U) error
	Delete(ctx context.Context, id int64) error
}

// Resource wires a Service to a path. ToDTO maps entities to their wire
// representation; ID extracts the generated id for the Location header on
// create.
type Resource[E, C any, U Replacer] struct {
	Svc   Service[E, C, U]
	ToDTO func(*E) any
	ID    func(*E) int64
	Path  string // mount point, e.g. "/api/tasks"
}

// idPrefix is the prefix stripped ahead of the numeric id segment.
func (res *Resource[E, C, U]) idPrefix() string {
	return res.Path + "/"
}

// writeDomainError maps domain errors to HTTP status codes:
// validation → 400, missing → 404, lost update race → 409,
// everything else → 500 with the detail masked.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, entity.ErrInvalidInput):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, entity.ErrNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, entity.ErrConflict):
		respond.SafeError(w, http.StatusConflict, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

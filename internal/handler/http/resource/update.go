package resource

import (
	"encoding/json"
	"fmt"
	"net/http"

	"crud-starter/internal/handler/http/pathutil"
	"crud-starter/internal/handler/http/respond"
)

type UpdateHandler[E, C any, U Replacer] struct{ Res *Resource[E, C, U] }

// ServeHTTP replaces the entity at the path id with the request body.
// A body that carries its own id must agree with the path; a mismatch is
// rejected before the service is consulted.
func (h UpdateHandler[E, C, U]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, h.Res.idPrefix())
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var in U
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody(err))
		return
	}
	if bodyID, ok := in.BodyID(); ok && bodyID != id {
		respond.SafeError(w, http.StatusBadRequest,
			fmt.Errorf("invalid body: id %d does not match path id %d", bodyID, id))
		return
	}

	if err := h.Res.Svc.Update(r.Context(), id, in); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// errInvalidBody flags the request as malformed while keeping the decoder
// detail attached for logs.
func errInvalidBody(err error) error {
	return fmt.Errorf("invalid request body: %w", err)
}

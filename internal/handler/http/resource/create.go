package resource

import (
	"encoding/json"
	"net/http"
	"strconv"

	"crud-starter/internal/handler/http/respond"
)

type CreateHandler[E, C any, U Replacer] struct{ Res *Resource[E, C, U] }

// ServeHTTP creates a new entity from the request body and returns it with
// 201 and a Location header pointing at the new resource.
func (h CreateHandler[E, C, U]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in C
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody(err))
		return
	}

	item, err := h.Res.Svc.Create(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Location",
		h.Res.Path+"/"+strconv.FormatInt(h.Res.ID(item), 10))
	respond.JSON(w, http.StatusCreated, h.Res.ToDTO(item))
}

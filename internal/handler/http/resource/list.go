package resource

import (
	"net/http"

	"crud-starter/internal/handler/http/respond"
)

type ListHandler[E, C any, U Replacer] struct{ Res *Resource[E, C, U] }

// ServeHTTP returns the full collection as a JSON array. An empty collection
// encodes as [] rather than null.
func (h ListHandler[E, C, U]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Res.Svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, h.Res.ToDTO(it))
	}
	respond.JSON(w, http.StatusOK, out)
}

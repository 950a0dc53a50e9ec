package resource

import (
	"net/http"

	"crud-starter/internal/handler/http/pathutil"
	"crud-starter/internal/handler/http/respond"
)

type DeleteHandler[E, C any, U Replacer] struct{ Res *Resource[E, C, U] }

func (h DeleteHandler[E, C, U]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, h.Res.idPrefix())
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Res.Svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

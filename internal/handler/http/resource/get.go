package resource

import (
	"net/http"

	"crud-starter/internal/handler/http/pathutil"
	"crud-starter/internal/handler/http/respond"
)

type GetHandler[E, C any, U Replacer] struct{ Res *Resource[E, C, U] }

func (h GetHandler[E, C, U]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, h.Res.idPrefix())
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Res.Svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, h.Res.ToDTO(item))
}

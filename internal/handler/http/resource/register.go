package resource

import "net/http"

// Register mounts the CRUD handlers on mux. Mutating verbs (POST, PUT,
// DELETE) are wrapped with authz; pass nil to expose them unprotected.
func (res *Resource[E, C, U]) Register(mux *http.ServeMux, authz func(http.Handler) http.Handler) {
	if authz == nil {
		authz = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("GET    "+res.Path, ListHandler[E, C, U]{res})
	mux.Handle("GET    "+res.Path+"/", GetHandler[E, C, U]{res})

	mux.Handle("POST   "+res.Path, authz(CreateHandler[E, C, U]{res}))
	mux.Handle("PUT    "+res.Path+"/", authz(UpdateHandler[E, C, U]{res}))
	mux.Handle("DELETE "+res.Path+"/", authz(DeleteHandler[E, C, U]{res}))
}

package expense

import (
	"net/http"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/handler/http/resource"
	expUC "crud-starter/internal/usecase/expense"
)

// Path is the mount point of the expense resource.
const Path = "/api/expenses"

// Register mounts the expense CRUD routes on mux. Mutating verbs are wrapped
// with authz.
func Register(mux *http.ServeMux, svc *expUC.Service, authz func(http.Handler) http.Handler) {
	res := &resource.Resource[entity.Expense, expUC.CreateInput, expUC.UpdateInput]{
		Svc:   svc,
		ToDTO: toDTO,
		ID:    func(e *entity.Expense) int64 { return e.ID },
		Path:  Path,
	}
	res.Register(mux, authz)
}

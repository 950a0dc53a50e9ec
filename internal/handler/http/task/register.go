package task

import (
	"net/http"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/handler/http/resource"
	taskUC "crud-starter/internal/usecase/task"
)

// Path is the mount point of the task resource.
const Path = "/api/tasks"

// Register mounts the task CRUD routes on mux. Mutating verbs are wrapped
// with authz.
func Register(mux *http.ServeMux, svc *taskUC.Service, authz func(http.Handler) http.Handler) {
	res := &resource.Resource[entity.Task, taskUC.CreateInput, taskUC.UpdateInput]{
		Svc:   svc,
		ToDTO: toDTO,
		ID:    func(t *entity.Task) int64 { return t.ID },
		Path:  Path,
	}
	res.Register(mux, authz)
}

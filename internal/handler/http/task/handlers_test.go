package task

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crud-starter/internal/domain/entity"
	taskUC "crud-starter/internal/usecase/task"
)

type stubRepo struct {
	tasks  map[int64]*entity.Task
	nextID int64
}

func newStubRepo(tasks ...*entity.Task) *stubRepo {
	r := &stubRepo{tasks: make(map[int64]*entity.Task), nextID: 1}
	for _, t := range tasks {
		r.tasks[t.ID] = t
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *stubRepo) Get(_ context.Context, id int64) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubRepo) List(context.Context) ([]*entity.Task, error) {
	out := make([]*entity.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubRepo) Create(_ context.Context, t *entity.Task) error {
	t.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *stubRepo) Update(_ context.Context, t *entity.Task) error {
	stored, ok := r.tasks[t.ID]
	if !ok {
		return entity.ErrNotFound
	}
	if !stored.UpdatedAt.Equal(t.UpdatedAt) {
		return entity.ErrConflict
	}
	cp := *t
	cp.UpdatedAt = time.Now().UTC()
	r.tasks[t.ID] = &cp
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, &taskUC.Service{Repo: repo}, nil)
	return mux
}

/* ───── 1. Round trip ───── */

func TestCreateThenGet(t *testing.T) {
	mux := newMux(newStubRepo())

	body := `{"title":"write report","notes":"for Friday"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("create code = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	loc := rr.Header().Get("Location")
	if loc == "" {
		t.Fatal("no Location header")
	}

	req = httptest.NewRequest(http.MethodGet, loc, nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("get code = %d, want 200", rr.Code)
	}
	var got DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "write report" || got.Notes != "for Friday" || got.Done {
		t.Errorf("dto = %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

/* ───── 2. Validation ───── */

func TestCreate_EmptyTitleRejected(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks",
		strings.NewReader(`{"title":""}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rr.Code)
	}
	if len(repo.tasks) != 0 {
		t.Error("invalid task was persisted")
	}
}

/* ───── 3. Full replacement on PUT ───── */

func TestUpdate_ReplacesAllFields(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo := newStubRepo(&entity.Task{
		ID: 1, Title: "old", Notes: "old notes", Done: false, DueDate: &due,
	})
	mux := newMux(repo)

	// Body omits due_date, so replacement clears it.
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/1",
		strings.NewReader(`{"title":"new","notes":"","done":true}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want 204: %s", rr.Code, rr.Body.String())
	}
	stored := repo.tasks[1]
	if stored.Title != "new" || stored.Notes != "" || !stored.Done {
		t.Errorf("stored = %+v", stored)
	}
	if stored.DueDate != nil {
		t.Error("due date not cleared by full replacement")
	}
}

func TestUpdate_MissingTaskIs404(t *testing.T) {
	mux := newMux(newStubRepo())

	req := httptest.NewRequest(http.MethodPut, "/api/tasks/99",
		strings.NewReader(`{"title":"x"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rr.Code)
	}
}

/* ───── 4. Lost update race ───── */

func TestUpdate_StaleWriteIs409(t *testing.T) {
	repo := newStubRepo(&entity.Task{ID: 1, Title: "first"})
	svc := &taskUC.Service{Repo: repo}

	// A second writer bumps updated_at between this caller's read and write.
	stale, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Update(context.Background(), 1, taskUC.UpdateInput{Title: "second"}); err != nil {
		t.Fatal(err)
	}
	stale.Title = "third"
	err = repo.Update(context.Background(), stale)
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

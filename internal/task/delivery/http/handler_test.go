package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"daybalance/internal/model"
	"daybalance/internal/task"
)

type mockUseCase struct {
	task    model.Task
	tasks   []model.Task
	balance task.Balance
	history []model.DaySummary
	err     error

	lastCreate task.CreateInput
	lastUpdate task.UpdateInput
	lastList   task.ListInput
	lastID     string
}

func (m *mockUseCase) Create(_ context.Context, input task.CreateInput) (model.Task, error) {
	m.lastCreate = input
	return m.task, m.err
}

func (m *mockUseCase) Get(_ context.Context, id string) (model.Task, error) {
	m.lastID = id
	return m.task, m.err
}

func (m *mockUseCase) List(_ context.Context, input task.ListInput) ([]model.Task, error) {
	m.lastList = input
	return m.tasks, m.err
}

func (m *mockUseCase) Update(_ context.Context, id string, input task.UpdateInput) (model.Task, error) {
	m.lastID = id
	m.lastUpdate = input
	return m.task, m.err
}

func (m *mockUseCase) Delete(_ context.Context, id string) error {
	m.lastID = id
	return m.err
}

func (m *mockUseCase) Complete(_ context.Context, id string) (model.Task, error) {
	m.lastID = id
	return m.task, m.err
}

func (m *mockUseCase) Balance(_ context.Context, date string) (task.Balance, error) {
	m.lastID = date
	return m.balance, m.err
}

func (m *mockUseCase) History(_ context.Context, date string, days int) ([]model.DaySummary, error) {
	m.lastID = date
	return m.history, m.err
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (nopLogger) Panic(ctx context.Context, args ...any)                 {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func setupRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(nopLogger{}, uc)
	r := gin.New()
	r.POST("/tasks", h.Create)
	r.GET("/tasks", h.List)
	r.GET("/tasks/balance", h.Balance)
	r.GET("/tasks/history", h.History)
	r.GET("/tasks/:id", h.Get)
	r.PUT("/tasks/:id", h.Update)
	r.DELETE("/tasks/:id", h.Delete)
	r.POST("/tasks/:id/complete", h.Complete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTask(t *testing.T) {
	uc := &mockUseCase{task: model.Task{
		ID:        "t1",
		Title:     "Write report",
		Type:      model.TaskTypeAdult,
		Status:    model.TaskStatusTodo,
		Duration:  30,
		CreatedAt: time.Now(),
	}}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/tasks", gin.H{
		"title":          "Write report",
		"type":           "ADULT",
		"scheduled_date": "2026-03-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.lastCreate.Title != "Write report" || uc.lastCreate.Type != model.TaskTypeAdult {
		t.Errorf("unexpected create input: %+v", uc.lastCreate)
	}
	if uc.lastCreate.ScheduledDate != "2026-03-10" {
		t.Errorf("scheduled date not passed through: %+v", uc.lastCreate)
	}
}

func TestCreateTaskMissingTitle(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/tasks", gin.H{"type": "ADULT"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateTaskInvalidType(t *testing.T) {
	uc := &mockUseCase{err: task.ErrInvalidType}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/tasks", gin.H{"title": "x", "type": "WRONG"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	uc := &mockUseCase{err: task.ErrNotFound}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/tasks/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if uc.lastID != "missing" {
		t.Errorf("expected id passed to usecase, got %q", uc.lastID)
	}
}

func TestListTasksFilters(t *testing.T) {
	uc := &mockUseCase{tasks: []model.Task{{ID: "a"}, {ID: "b"}}}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/tasks?date=2026-03-10&status=DONE&limit=5&offset=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastList.Date != "2026-03-10" || uc.lastList.Status != model.TaskStatusDone {
		t.Errorf("filters not passed through: %+v", uc.lastList)
	}
	if uc.lastList.Limit != 5 || uc.lastList.Offset != 2 {
		t.Errorf("pagination not passed through: %+v", uc.lastList)
	}

	var resp struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Data.Count)
	}
}

func TestCompleteAlreadyDone(t *testing.T) {
	uc := &mockUseCase{err: task.ErrAlreadyDone}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/tasks/t1/complete", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBalanceDefaultsToToday(t *testing.T) {
	uc := &mockUseCase{balance: task.Balance{Score: 4, Label: "All Work, No Play"}}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/tasks/balance", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastID != time.Now().Format("2006-01-02") {
		t.Errorf("expected today's date, got %q", uc.lastID)
	}
}

func TestDeleteTask(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := doJSON(t, r, http.MethodDelete, "/tasks/t1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastID != "t1" {
		t.Errorf("expected id t1, got %q", uc.lastID)
	}
}

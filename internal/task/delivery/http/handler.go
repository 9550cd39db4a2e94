package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"daybalance/internal/model"
	"daybalance/internal/task"
	pkgLog "daybalance/pkg/log"
	pkgResponse "daybalance/pkg/response"
)

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// Create handles task creation
// @Summary Create a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param body body createTaskReq true "Task"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, newTaskItem(created))
}

// Get handles fetching one task
// @Summary Get a task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks/{id} [get]
func (h *handler) Get(c *gin.Context) {
	got, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, newTaskItem(got))
}

// List handles listing tasks
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Param date query string false "Filter by scheduled date (YYYY-MM-DD)"
// @Param status query string false "Filter by status (TODO, START, DONE)"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks [get]
func (h *handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	tasks, err := h.uc.List(c.Request.Context(), task.ListInput{
		Date:   c.Query("date"),
		Status: model.TaskStatus(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, newTaskListResp(tasks))
}

// Update handles partial task updates
// @Summary Update a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param body body updateTaskReq true "Fields to change"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks/{id} [put]
func (h *handler) Update(c *gin.Context) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, newTaskItem(updated))
}

// Delete handles task deletion
// @Summary Delete a task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, gin.H{"deleted": true})
}

// Complete marks a task done
// @Summary Complete a task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks/{id}/complete [post]
func (h *handler) Complete(c *gin.Context) {
	done, err := h.uc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, newTaskItem(done))
}

// Balance returns the day's balance score
// @Summary Balance score for a day
// @Tags Tasks
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks/balance [get]
func (h *handler) Balance(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = today()
	}

	balance, err := h.uc.Balance(c.Request.Context(), date)
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, balance)
}

// History returns the 7-day summary
// @Summary Daily summaries for the past week
// @Tags Tasks
// @Produce json
// @Param date query string false "Reference day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/tasks/history [get]
func (h *handler) History(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = today()
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	history, err := h.uc.History(c.Request.Context(), date, days)
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, gin.H{"history": history})
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		pkgResponse.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidType),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrAlreadyDone):
		pkgResponse.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "task handler: %v", err)
		pkgResponse.InternalError(c, err)
	}
}

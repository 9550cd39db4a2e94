package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daybalance/internal/coach"
	"daybalance/internal/task"
	pkgLog "daybalance/pkg/log"
	pkgResponse "daybalance/pkg/response"
)

type handler struct {
	l  pkgLog.Logger
	uc coach.UseCase
}

// Advice returns the coach's suggestion for the current moment
// @Summary Get advice for right now
// @Tags Coach
// @Produce json
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/coach/advice [get]
func (h *handler) Advice(c *gin.Context) {
	text, err := h.uc.Advice(c.Request.Context())
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, adviceResp{Advice: text})
}

// Summary returns the end-of-day recap
// @Summary Get the end-of-day recap
// @Tags Coach
// @Produce json
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/coach/summary [get]
func (h *handler) Summary(c *gin.Context) {
	text, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, summaryResp{Summary: text})
}

// Predict returns the forecast for tomorrow
// @Summary Get tomorrow's forecast
// @Tags Coach
// @Produce json
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/coach/predict [get]
func (h *handler) Predict(c *gin.Context) {
	text, err := h.uc.Predict(c.Request.Context())
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, predictResp{Prediction: text})
}

// Chat answers a free-form question. Chunks stream over the websocket
// while this request is in flight; the response body carries the final
// parsed result.
// @Summary Ask the coach a question
// @Tags Coach
// @Accept json
// @Produce json
// @Param body body chatReq true "Question plus conversation state"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/coach/chat [post]
func (h *handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(c.Request.Context(), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, out)
}

// ScheduleAssist suggests when to slot a task
// @Summary Suggest category, date, and time for a task title
// @Tags Coach
// @Accept json
// @Produce json
// @Param body body scheduleAssistReq true "Task title"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/coach/schedule-assist [post]
func (h *handler) ScheduleAssist(c *gin.Context) {
	var req scheduleAssistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	suggestion, err := h.uc.ScheduleAssist(c.Request.Context(), req.Title)
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, suggestion)
}

// ApplyAction accepts a proposed action and stores it as a task
// @Summary Apply a coach-proposed action
// @Tags Coach
// @Accept json
// @Produce json
// @Param body body applyActionReq true "Accepted action"
// @Success 200 {object} pkgResponse.Resp
// @Router /api/v1/coach/apply-action [post]
func (h *handler) ApplyAction(c *gin.Context) {
	var req applyActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	created, err := h.uc.ApplyAction(c.Request.Context(), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	pkgResponse.OK(c, created)
}

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, coach.ErrEmptyQuestion),
		errors.Is(err, coach.ErrEmptyTitle),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidType):
		pkgResponse.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "coach handler: %v", err)
		pkgResponse.InternalError(c, err)
	}
}

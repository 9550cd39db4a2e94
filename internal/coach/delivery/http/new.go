package http

import (
	"github.com/gin-gonic/gin"

	"daybalance/internal/coach"
	pkgLog "daybalance/pkg/log"
)

// Handler is the interface for the coach HTTP delivery handler.
type Handler interface {
	Advice(c *gin.Context)
	Summary(c *gin.Context)
	Predict(c *gin.Context)
	Chat(c *gin.Context)
	ScheduleAssist(c *gin.Context)
	ApplyAction(c *gin.Context)
}

// New creates a new coach HTTP delivery handler.
func New(l pkgLog.Logger, uc coach.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

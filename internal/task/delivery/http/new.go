package http

import (
	"github.com/gin-gonic/gin"

	"daybalance/internal/task"
	pkgLog "daybalance/pkg/log"
)

// Handler is the interface for the task HTTP delivery handler.
type Handler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)
	Balance(c *gin.Context)
	History(c *gin.Context)
}

// New creates a new task HTTP delivery handler.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	coachDelivery "daybalance/internal/coach/delivery/http"
	"daybalance/internal/coach/stream"
	"daybalance/internal/middleware"
	taskDelivery "daybalance/internal/task/delivery/http"
	"daybalance/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware   middleware.Middleware
	taskHandler  taskDelivery.Handler
	coachHandler coachDelivery.Handler
	hub          *stream.Hub
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware   middleware.Middleware
	TaskHandler  taskDelivery.Handler
	CoachHandler coachDelivery.Handler
	Hub          *stream.Hub
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		middleware:   cfg.Middleware,
		taskHandler:  cfg.TaskHandler,
		coachHandler: cfg.CoachHandler,
		hub:          cfg.Hub,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.coachHandler == nil {
		return errors.New("coach handler is required")
	}
	return nil
}

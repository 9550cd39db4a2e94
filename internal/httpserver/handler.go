package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"daybalance/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "server mode: production")
	} else {
		srv.l.Infof(ctx, "server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	tasks := api.Group("/tasks")
	{
		tasks.POST("", srv.taskHandler.Create)
		tasks.GET("", srv.taskHandler.List)
		tasks.GET("/balance", srv.taskHandler.Balance)
		tasks.GET("/history", srv.taskHandler.History)
		tasks.GET("/:id", srv.taskHandler.Get)
		tasks.PUT("/:id", srv.taskHandler.Update)
		tasks.DELETE("/:id", srv.taskHandler.Delete)
		tasks.POST("/:id/complete", srv.taskHandler.Complete)
	}

	// Coach routes share one rate limiter so a chatty client cannot
	// exhaust the LLM budget.
	coach := api.Group("/coach", srv.middleware.RateLimit())
	{
		coach.GET("/advice", srv.coachHandler.Advice)
		coach.GET("/summary", srv.coachHandler.Summary)
		coach.GET("/predict", srv.coachHandler.Predict)
		coach.POST("/chat", srv.coachHandler.Chat)
		coach.POST("/schedule-assist", srv.coachHandler.ScheduleAssist)
		coach.POST("/apply-action", srv.coachHandler.ApplyAction)
	}

	if srv.hub != nil {
		srv.gin.GET("/ws/coach", srv.hub.ServeWS)
		srv.l.Infof(ctx, "coach stream route registered at GET /ws/coach")
	} else {
		srv.l.Infof(ctx, "stream hub not configured, skipping websocket route")
	}

	return nil
}

package usecase

import (
	"context"
	"time"

	"daybalance/internal/coach/stream"
	"daybalance/internal/model"
	"daybalance/internal/task"
	"daybalance/pkg/gcalendar"
	"daybalance/pkg/llmprovider"
	pkgLog "daybalance/pkg/log"
	"daybalance/pkg/requestqueue"
)

// Generator is the slice of the LLM provider manager the coach needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	GenerateStream(ctx context.Context, req *llmprovider.Request, onChunk func(text string) error) (*llmprovider.Response, error)
}

// Calendar mirrors scheduled tasks onto an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	taskUC   task.UseCase
	llm      Generator
	queue    *requestqueue.Queue
	hub      *stream.Hub
	calendar Calendar // nil disables mirroring
	prefs    model.Preferences
	now      func() time.Time
}

// New creates a new coach UseCase instance.
func New(
	l pkgLog.Logger,
	taskUC task.UseCase,
	llm Generator,
	queue *requestqueue.Queue,
	hub *stream.Hub,
	calendar Calendar,
	prefs model.Preferences,
) *implUseCase {
	return &implUseCase{
		l:        l,
		taskUC:   taskUC,
		llm:      llm,
		queue:    queue,
		hub:      hub,
		calendar: calendar,
		prefs:    prefs,
		now:      time.Now,
	}
}

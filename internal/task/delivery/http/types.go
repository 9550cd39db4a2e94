package http

import (
	"time"

	"daybalance/internal/model"
	"daybalance/internal/task"
)

type createTaskReq struct {
	Title         string `json:"title" binding:"required"`
	Type          string `json:"type" binding:"required"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Duration      int    `json:"duration"`
}

func (r createTaskReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:         r.Title,
		Type:          model.TaskType(r.Type),
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		Duration:      r.Duration,
	}
}

type updateTaskReq struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Duration      int    `json:"duration"`
}

func (r updateTaskReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		Title:         r.Title,
		Type:          model.TaskType(r.Type),
		Status:        model.TaskStatus(r.Status),
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		Duration:      r.Duration,
	}
}

type taskItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	ScheduledDate string     `json:"scheduled_date,omitempty"`
	ScheduledTime string     `json:"scheduled_time,omitempty"`
	Duration      int        `json:"duration"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func newTaskItem(t model.Task) taskItem {
	return taskItem{
		ID:            t.ID,
		Title:         t.Title,
		Type:          string(t.Type),
		Status:        string(t.Status),
		ScheduledDate: t.ScheduledDate,
		ScheduledTime: t.ScheduledTime,
		Duration:      t.Duration,
		CreatedAt:     t.CreatedAt,
		CompletedAt:   t.CompletedAt,
	}
}

type taskListResp struct {
	Tasks []taskItem `json:"tasks"`
	Count int        `json:"count"`
}

func newTaskListResp(tasks []model.Task) taskListResp {
	items := make([]taskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, newTaskItem(t))
	}
	return taskListResp{Tasks: items, Count: len(items)}
}

package model

import "time"

// TaskType is the life-balance category of a task.
type TaskType string

const (
	TaskTypeAdult TaskType = "ADULT" // obligations: work, chores, errands
	TaskTypeChild TaskType = "CHILD" // play: hobbies, fun, social
	TaskTypeRest  TaskType = "REST"  // recovery: sleep, gym, downtime
)

// Valid reports whether t is a known task type.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeAdult, TaskTypeChild, TaskTypeRest:
		return true
	}
	return false
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "TODO"
	TaskStatusStart TaskStatus = "START"
	TaskStatusDone  TaskStatus = "DONE"
)

// DefaultTaskDuration is applied when a task carries no explicit duration.
const DefaultTaskDuration = 30 // minutes

// Task is a single tracked item. ScheduledDate is YYYY-MM-DD and
// ScheduledTime is zero-padded 24h HH:MM; both may be empty for
// unscheduled tasks.
type Task struct {
	ID            string
	Title         string
	Type          TaskType
	Status        TaskStatus
	ScheduledDate string
	ScheduledTime string
	Duration      int // minutes
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// Scheduled reports whether the task has both a date and a time of day.
func (t Task) Scheduled() bool {
	return t.ScheduledDate != "" && t.ScheduledTime != ""
}

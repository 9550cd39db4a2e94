package task

import "daybalance/internal/model"

// CreateInput is the input for task creation.
type CreateInput struct {
	Title         string
	Type          model.TaskType
	ScheduledDate string // YYYY-MM-DD, optional
	ScheduledTime string // HH:MM 24h, optional
	Duration      int    // minutes; <=0 means default
}

// UpdateInput carries the mutable task fields. Empty strings and zero
// values leave the stored field untouched.
type UpdateInput struct {
	Title         string
	Type          model.TaskType
	Status        model.TaskStatus
	ScheduledDate string
	ScheduledTime string
	Duration      int
}

// ListInput is the filter for listing tasks.
type ListInput struct {
	Date   string // YYYY-MM-DD, optional
	Status model.TaskStatus
	Limit  int
	Offset int
}

// Balance is the day's score with a qualitative label and the
// per-category completion counts that produced it.
type Balance struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Adult int    `json:"adult_completed"`
	Child int    `json:"child_completed"`
	Rest  int    `json:"rest_completed"`
}

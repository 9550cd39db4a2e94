package directive

import "daybalance/internal/model"

// Action is a task-creation directive recovered from model output. It is
// a candidate only; the UI materializes it into a Task at most once.
type Action struct {
	Title          string
	Type           model.TaskType
	Duration       int    // minutes
	Date           string // YYYY-MM-DD, empty when the directive had none
	Time           string // HH:MM
	ProjectedScore *int   // trailing +/-N suffix, nil when absent
}

// Result is the outcome of parsing a complete model response.
type Result struct {
	Text    string // user-visible text, directives and thought stripped
	Thought string // trimmed reasoning block, empty when absent
	Actions []Action
}

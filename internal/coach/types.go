package coach

import (
	"daybalance/internal/coach/directive"
	"daybalance/internal/model"
)

// ChatInput is one question to the coach. The client owns conversation
// state, so trailing turns and active goals ride along with the request.
type ChatInput struct {
	Question string
	Turns    []model.ChatTurn
	Goals    []model.Goal
}

// ChatOutput is the parsed result of one chat exchange.
type ChatOutput struct {
	Text    string             `json:"text"`
	Thought string             `json:"thought,omitempty"`
	Actions []directive.Action `json:"actions,omitempty"`
}

// Suggestion is the scheduling proposal for a task title.
type Suggestion struct {
	Type     model.TaskType `json:"suggestedType"`
	Date     string         `json:"suggestedDate"`
	Time     string         `json:"suggestedTime"`
	Duration int            `json:"duration"`
	Fallback bool           `json:"fallback,omitempty"` // true when computed locally
}

// ApplyActionInput carries one accepted action from the client.
type ApplyActionInput struct {
	Title    string
	Type     model.TaskType
	Duration int
	Date     string
	Time     string
}

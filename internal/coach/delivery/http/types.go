package http

import (
	"daybalance/internal/coach"
	"daybalance/internal/model"
)

type chatTurnReq struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type goalReq struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Done    bool   `json:"done"`
}

// chatReq carries the question plus the client-held conversation state.
type chatReq struct {
	Question string        `json:"question" binding:"required"`
	Turns    []chatTurnReq `json:"turns"`
	Goals    []goalReq     `json:"goals"`
}

func (r chatReq) toInput() coach.ChatInput {
	turns := make([]model.ChatTurn, 0, len(r.Turns))
	for _, t := range r.Turns {
		turns = append(turns, model.ChatTurn{Role: t.Role, Text: t.Text})
	}

	goals := make([]model.Goal, 0, len(r.Goals))
	for _, g := range r.Goals {
		goals = append(goals, model.Goal{
			ID:      g.ID,
			Title:   g.Title,
			DueDate: g.DueDate,
			Done:    g.Done,
		})
	}

	return coach.ChatInput{
		Question: r.Question,
		Turns:    turns,
		Goals:    goals,
	}
}

type scheduleAssistReq struct {
	Title string `json:"title" binding:"required"`
}

type applyActionReq struct {
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Duration int    `json:"duration"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (r applyActionReq) toInput() coach.ApplyActionInput {
	return coach.ApplyActionInput{
		Title:    r.Title,
		Type:     model.TaskType(r.Type),
		Duration: r.Duration,
		Date:     r.Date,
		Time:     r.Time,
	}
}

type adviceResp struct {
	Advice string `json:"advice"`
}

type summaryResp struct {
	Summary string `json:"summary"`
}

type predictResp struct {
	Prediction string `json:"prediction"`
}

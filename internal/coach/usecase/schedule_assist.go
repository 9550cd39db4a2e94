package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"daybalance/internal/coach"
	"daybalance/internal/coach/prompt"
	"daybalance/internal/model"
	"daybalance/pkg/llmprovider"
)

// ScheduleAssist suggests a category, date, time, and duration for a
// task title. Backend or decode failure falls back to a local parse, so
// a non-empty title always yields a suggestion.
func (uc *implUseCase) ScheduleAssist(ctx context.Context, title string) (coach.Suggestion, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return coach.Suggestion{}, coach.ErrEmptyTitle
	}

	s, err := uc.buildState(ctx, prompt.ModeScheduleAssist)
	if err != nil {
		return coach.Suggestion{}, err
	}
	s.Title = title
	promptText := prompt.Build(s)

	raw, err := uc.queue.Do(ctx, "", func(ctx context.Context) (string, error) {
		resp, genErr := uc.llm.GenerateContent(ctx, &llmprovider.Request{
			System:   systemPersona,
			Messages: []llmprovider.Message{{Role: "user", Text: promptText}},
		})
		if genErr != nil {
			return "", genErr
		}
		return resp.Text, nil
	})
	if err == nil {
		if sug, decodeErr := decodeSuggestion(raw); decodeErr == nil {
			return sug, nil
		} else {
			uc.l.Warnf(ctx, "coach.schedule_assist: %v (raw=%q), using local fallback", decodeErr, raw)
		}
	} else {
		uc.l.Warnf(ctx, "coach.schedule_assist: backend failed (%v), using local fallback", err)
	}

	return uc.fallbackSuggestion(title), nil
}

type suggestionWire struct {
	SuggestedType string `json:"suggestedType"`
	SuggestedDate string `json:"suggestedDate"`
	SuggestedTime string `json:"suggestedTime"`
	Duration      int    `json:"duration"`
}

// decodeSuggestion extracts the JSON object from the model's reply.
// Models occasionally wrap the object in prose or a code fence, so the
// first balanced {...} span is what gets decoded.
func decodeSuggestion(raw string) (coach.Suggestion, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return coach.Suggestion{}, coach.ErrBadSuggestion
	}

	var wire suggestionWire
	if err := json.Unmarshal([]byte(raw[start:end+1]), &wire); err != nil {
		return coach.Suggestion{}, coach.ErrBadSuggestion
	}

	typ := model.TaskType(strings.ToUpper(strings.TrimSpace(wire.SuggestedType)))
	if !typ.Valid() {
		return coach.Suggestion{}, coach.ErrBadSuggestion
	}
	if wire.SuggestedDate == "" || wire.SuggestedTime == "" {
		return coach.Suggestion{}, coach.ErrBadSuggestion
	}

	duration := wire.Duration
	if duration <= 0 {
		duration = model.DefaultTaskDuration
	}

	return coach.Suggestion{
		Type:     typ,
		Date:     wire.SuggestedDate,
		Time:     wire.SuggestedTime,
		Duration: duration,
	}, nil
}

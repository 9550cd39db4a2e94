package usecase

import (
	"context"
	"strings"

	"daybalance/internal/coach"
	"daybalance/internal/coach/directive"
	"daybalance/internal/coach/prompt"
	"daybalance/internal/coach/stream"
	"daybalance/pkg/llmprovider"
)

// Chat answers a free-form question. While the provider streams, every
// chunk republishes the whole buffer so far to the websocket hub; only
// when the stream completes is the buffer parsed for directives. Chat
// responses are never cached.
func (uc *implUseCase) Chat(ctx context.Context, input coach.ChatInput) (coach.ChatOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return coach.ChatOutput{}, coach.ErrEmptyQuestion
	}

	s, err := uc.buildState(ctx, prompt.ModeChat)
	if err != nil {
		return coach.ChatOutput{}, err
	}
	s.Question = question
	s.Turns = input.Turns
	s.Goals = input.Goals
	promptText := prompt.Build(s)

	var buf strings.Builder
	raw, err := uc.queue.Do(ctx, "", func(ctx context.Context) (string, error) {
		buf.Reset()
		resp, genErr := uc.llm.GenerateStream(ctx, &llmprovider.Request{
			System:   systemPersona,
			Messages: []llmprovider.Message{{Role: "user", Text: promptText}},
		}, func(chunk string) error {
			buf.WriteString(chunk)
			uc.publish(stream.Frame{Type: "chunk", Text: buf.String()})
			return nil
		})
		if genErr != nil {
			return "", genErr
		}
		return resp.Text, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "coach.chat: generation failed: %v", err)
		uc.publish(stream.Frame{Type: "error", Message: "The coach is unavailable right now."})
		return coach.ChatOutput{}, err
	}

	res := directive.Parse(raw)
	uc.publish(stream.Frame{
		Type:    "done",
		Text:    res.Text,
		Thought: res.Thought,
		Actions: res.Actions,
	})

	uc.l.Infof(ctx, "coach.chat: answered, actions=%d", len(res.Actions))
	return coach.ChatOutput{
		Text:    res.Text,
		Thought: res.Thought,
		Actions: res.Actions,
	}, nil
}

func (uc *implUseCase) publish(frame stream.Frame) {
	if uc.hub == nil {
		return
	}
	uc.hub.Broadcast(frame)
}

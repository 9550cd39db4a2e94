package usecase

import (
	"context"
	"fmt"

	"daybalance/internal/coach/directive"
	"daybalance/internal/coach/prompt"
	"daybalance/pkg/llmprovider"
)

// Advice returns a short suggestion for the current moment.
func (uc *implUseCase) Advice(ctx context.Context) (string, error) {
	return uc.generateCached(ctx, prompt.ModeAdvice)
}

// Summary returns an end-of-day recap.
func (uc *implUseCase) Summary(ctx context.Context) (string, error) {
	return uc.generateCached(ctx, prompt.ModeSummary)
}

// Predict returns a forecast for tomorrow from the 7-day history.
func (uc *implUseCase) Predict(ctx context.Context) (string, error) {
	return uc.generateCached(ctx, prompt.ModePredict)
}

// generateCached runs one non-chat generation through the queue. The
// cache key is mode plus local date, so repeat requests within the TTL
// reuse the day's answer instead of paying for another call.
func (uc *implUseCase) generateCached(ctx context.Context, mode prompt.Mode) (string, error) {
	s, err := uc.buildState(ctx, mode)
	if err != nil {
		return "", err
	}
	promptText := prompt.Build(s)
	cacheKey := fmt.Sprintf("%s:%s", mode, s.Now.Format(dateLayout))

	raw, err := uc.queue.Do(ctx, cacheKey, func(ctx context.Context) (string, error) {
		resp, genErr := uc.llm.GenerateContent(ctx, &llmprovider.Request{
			System:   systemPersona,
			Messages: []llmprovider.Message{{Role: "user", Text: promptText}},
		})
		if genErr != nil {
			return "", genErr
		}
		return resp.Text, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "coach.%s: generation failed: %v", mode, err)
		return "", err
	}

	// Thought blocks and stray directives never reach the user.
	return directive.Parse(raw).Text, nil
}

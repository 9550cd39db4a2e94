package qwen

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GenerateStream sends a streaming generation request. Chunks are read
// from the SSE body in one sequential loop; onChunk receives each text
// fragment in arrival order. The accumulated full text is returned when
// the stream signals completion.
func (q *qwenImpl) GenerateStream(ctx context.Context, req *Request, onChunk func(text string) error) (*Response, error) {
	resp, err := q.post(ctx, q.transformRequest(req, true))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			break
		}

		var chunk openAIStreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// Malformed keep-alive or comment lines are skipped.
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}

		fragment := chunk.Choices[0].Delta.Content
		if fragment == "" {
			continue
		}
		full.WriteString(fragment)
		if onChunk != nil {
			if err := onChunk(fragment); err != nil {
				return nil, fmt.Errorf("qwen: chunk consumer failed: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("qwen: stream read failed: %w", err)
	}

	return &Response{Text: full.String()}, nil
}

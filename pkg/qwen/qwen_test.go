package qwen_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daybalance/pkg/qwen"
)

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "hello there"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13}
		}`))
	}))
	defer srv.Close()

	client, err := qwen.New(qwen.Config{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		Messages: []qwen.Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != "hello there" {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 13 {
		t.Errorf("TotalTokens = %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateStream(t *testing.T) {
	body := strings.Join([]string{
		`data: {"choices":[{"delta":{"content":"Good "}}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"evening"}}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"."},"finish_reason":"stop"}]}`,
		``,
		`data: [DONE]`,
		``,
	}, "\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client, err := qwen.New(qwen.Config{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var chunks []string
	resp, err := client.GenerateStream(context.Background(), &qwen.Request{
		Messages: []qwen.Message{{Role: "user", Text: "hi"}},
	}, func(text string) error {
		chunks = append(chunks, text)
		return nil
	})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	if resp.Text != "Good evening." {
		t.Errorf("accumulated Text = %q", resp.Text)
	}
	if len(chunks) != 3 {
		t.Errorf("chunks = %v, want 3 fragments", chunks)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, _ := qwen.New(qwen.Config{APIKey: "test-key", BaseURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &qwen.Request{})
	if err == nil {
		t.Fatalf("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status code: %v", err)
	}
}

package llmprovider

import (
	"context"

	"daybalance/pkg/deepseek"
	"daybalance/pkg/qwen"
)

// QwenAdapter adapts the Qwen client to the Provider interface.
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter wraps a Qwen client.
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toQwenRequest(req))
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *QwenAdapter) GenerateStream(ctx context.Context, req *Request, onChunk func(text string) error) (*Response, error) {
	resp, err := a.client.GenerateStream(ctx, toQwenRequest(req), onChunk)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage:        &Usage{},
	}, nil
}

func (a *QwenAdapter) Name() string  { return "qwen" }
func (a *QwenAdapter) Model() string { return a.client.Model() }

func toQwenRequest(req *Request) *qwen.Request {
	out := &qwen.Request{
		System:      req.System,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]qwen.Message, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, qwen.Message{Role: m.Role, Text: m.Text})
	}
	return out
}

// DeepSeekAdapter adapts the DeepSeek client to the Provider interface.
// The DeepSeek client is not streaming; GenerateStream degrades to a
// single completion delivered as one chunk.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter wraps a DeepSeek client.
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

func (a *DeepSeekAdapter) GenerateStream(ctx context.Context, req *Request, onChunk func(text string) error) (*Response, error) {
	resp, err := a.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}
	if onChunk != nil && resp.Text != "" {
		if err := onChunk(resp.Text); err != nil {
			return nil, &ProviderError{Provider: a.Name(), Err: err}
		}
	}
	return resp, nil
}

func (a *DeepSeekAdapter) Name() string  { return "deepseek" }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

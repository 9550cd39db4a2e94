package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek API client
type IDeepSeek interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

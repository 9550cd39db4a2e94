package llmprovider

import (
	"context"
	"fmt"
	"time"

	"daybalance/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return m.generate(ctx, req, func(ctx context.Context, p Provider) (*Response, error) {
		return p.GenerateContent(ctx, req)
	})
}

// GenerateStream is GenerateContent with incremental delivery. Fallback
// applies only while no chunk has been emitted yet: once a provider has
// streamed text to the consumer, its failure is terminal.
func (m *Manager) GenerateStream(ctx context.Context, req *Request, onChunk func(text string) error) (*Response, error) {
	emitted := false
	guarded := func(text string) error {
		emitted = true
		if onChunk == nil {
			return nil
		}
		return onChunk(text)
	}

	resp, err := m.generate(ctx, req, func(ctx context.Context, p Provider) (*Response, error) {
		out, genErr := p.GenerateStream(ctx, req, guarded)
		if genErr != nil && emitted {
			return nil, &unrecoverableError{err: genErr}
		}
		return out, genErr
	})
	return resp, err
}

type attemptFunc func(ctx context.Context, p Provider) (*Response, error)

// unrecoverableError stops the fallback chain.
type unrecoverableError struct{ err error }

func (e *unrecoverableError) Error() string { return e.err.Error() }
func (e *unrecoverableError) Unwrap() error { return e.err }

func (m *Manager) generate(ctx context.Context, req *Request, attempt attemptFunc) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		resp, err := m.attemptWithRetry(ctx, provider, attempt)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if _, fatal := err.(*unrecoverableError); fatal {
			break
		}
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// attemptWithRetry implements the retry mechanism with linear backoff
func (m *Manager) attemptWithRetry(ctx context.Context, provider Provider, attempt attemptFunc) (*Response, error) {
	var lastErr error

	attempts := m.config.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		if i > 0 {
			delay := time.Duration(i) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := attempt(ctx, provider)
		if err == nil {
			return resp, nil
		}
		if _, fatal := err.(*unrecoverableError); fatal {
			return nil, err
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s tokens=%d",
		provider.Name(), provider.Model(), totalTokens(resp))
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}

func totalTokens(resp *Response) int {
	if resp == nil || resp.Usage == nil {
		return 0
	}
	return resp.Usage.TotalTokens
}

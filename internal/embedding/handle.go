package embedding

import (
	"context"
	"sync"
)

// Handle owns at most one loaded provider instance, created lazily on first
// use and shared by all callers. Initialization runs once; if it fails, the
// same error is reported to every subsequent caller without retrying.
type Handle struct {
	factory  func(ctx context.Context) (Provider, error)
	once     sync.Once
	provider Provider
	err      error
}

// NewHandle creates a Handle that builds its provider with factory on first use.
func NewHandle(factory func(ctx context.Context) (Provider, error)) *Handle {
	return &Handle{factory: factory}
}

// Provider returns the shared provider, initializing it if needed.
func (h *Handle) Provider(ctx context.Context) (Provider, error) {
	h.once.Do(func() {
		h.provider, h.err = h.factory(ctx)
	})
	return h.provider, h.err
}

// Encode initializes the provider if needed and forwards the call, so a
// Handle can stand in wherever a Provider is expected.
func (h *Handle) Encode(ctx context.Context, texts []string, normalize bool) ([][]float32, error) {
	p, err := h.Provider(ctx)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return p.Encode(ctx, texts, normalize)
}

// Close releases the provider if it was ever initialized.
func (h *Handle) Close() error {
	if h.provider != nil {
		return h.provider.Close()
	}
	return nil
}

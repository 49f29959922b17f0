package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Backend selects which provider the Service dispatches to.
type Backend string

const (
	// BackendOffline uses the built-in deterministic phrase table.
	BackendOffline Backend = "offline"
	// BackendLLM uses the chat-completion-style networked backend.
	BackendLLM Backend = "llm"
	// BackendMT uses the dedicated machine-translation networked backend.
	BackendMT Backend = "mt"
)

// Service is the translation abstraction callers use. It owns the active
// backend, the same-locale short-circuit, and the offline-fallback contract
// for recoverable backend failures.
//
// The Service is safe for concurrent use. Configure swaps the active backend
// under lock; calls already dispatched keep the backend they started with.
type Service struct {
	mu         sync.RWMutex
	backend    Backend
	credential string
	active     Provider

	baseURL string
	model   string
	offline *Offline
	logger  *slog.Logger
}

// Option configures a Service instance.
type Option func(*Service)

// WithLogger provides a logger for fallback events. If not specified, a
// discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Service for the given configuration.
func New(cfg Config, opts ...Option) (*Service, error) {
	s := &Service{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		offline: NewOffline(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	backend := cfg.Backend
	if backend == "" {
		backend = BackendOffline
	}
	if err := s.Configure(backend, cfg.Credential); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure selects the active backend and its credential at runtime.
// In-flight calls keep the previously active backend.
func (s *Service) Configure(backend Backend, credential string) error {
	var active Provider
	switch backend {
	case BackendOffline:
		active = s.offline
	case BackendLLM:
		active = NewLLM(credential, s.baseURL, s.model)
	case BackendMT:
		active = NewMT(credential, s.baseURL)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	s.mu.Lock()
	s.backend = backend
	s.credential = credential
	s.active = active
	s.mu.Unlock()
	return nil
}

// Active returns the currently configured backend selector and credential.
func (s *Service) Active() (Backend, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend, s.credential
}

// Translate translates one string between two locales.
//
// Same-locale requests return the input unchanged with confidence 1.0 and no
// backend dispatch. A missing credential on a networked backend is returned
// as ErrMissingCredential; every other backend failure is absorbed by
// substituting the offline backend's result for the same input, so the only
// trace of the failure the caller sees is a lower confidence and the offline
// provider identity.
func (s *Service) Translate(ctx context.Context, req Request) (Result, error) {
	s.mu.RLock()
	active := s.active
	s.mu.RUnlock()

	if req.From == req.To {
		return Result{TranslatedText: req.Text, Confidence: 1.0, Provider: active.Name()}, nil
	}

	res, err := active.Translate(ctx, req)
	if err == nil {
		return res, nil
	}
	if errors.Is(err, ErrMissingCredential) {
		return Result{}, err
	}

	s.logger.WarnContext(ctx, "translation backend failed, using offline fallback",
		"backend", active.Name(),
		"from", req.From.String(),
		"to", req.To.String(),
		"error", err,
	)
	return s.offline.Translate(ctx, req)
}

// BatchTranslate translates an ordered list of requests concurrently and
// independently, returning results in input order. Per-item recoverable
// failures are already absorbed by Translate; any configuration errors are
// joined into the returned error, with the corresponding result left zero.
func (s *Service) BatchTranslate(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req Request) {
			defer wg.Done()
			results[i], errs[i] = s.Translate(ctx, req)
		}(i, req)
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

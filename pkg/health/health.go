package health

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc is the health check function signature.
type CheckFunc func(ctx context.Context) error

// Checks is a map of named health check functions.
type Checks map[string]CheckFunc

// Response represents a health check response.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check represents the status of a single health check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures health check behavior.
type Option func(*config)

// WithTimeout sets the timeout shared by all checks of one probe.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to report failing checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

type result struct {
	err  error
	name string
}

// Run executes all checks in parallel and aggregates the result.
// A check that outlives the timeout is reported with ErrCheckTimeout.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return runChecks(ctx, checks, newConfig(opts...))
}

func runChecks(ctx context.Context, checks Checks, cfg *config) *Response {
	if len(checks) == 0 {
		return &Response{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	// Buffered so late checks never block after a timeout.
	results := make(chan result, len(checks))
	for name, check := range checks {
		go func() {
			results <- result{name: name, err: check(ctx)}
		}()
	}

	resp := &Response{Status: StatusHealthy, Checks: make(map[string]Check, len(checks))}
	for range len(checks) {
		var r result
		select {
		case r = <-results:
		case <-ctx.Done():
			markTimedOut(resp, checks)
			return resp
		}
		resp.Checks[r.name] = toCheck(ctx, r, cfg)
		if r.err != nil {
			resp.Status = StatusUnhealthy
		}
	}
	return resp
}

func toCheck(ctx context.Context, r result, cfg *config) Check {
	if r.err == nil {
		return Check{Status: StatusHealthy}
	}
	cfg.logger.WarnContext(ctx, "health check failed",
		slog.String("check", r.name),
		slog.String("error", r.err.Error()),
	)
	return Check{Status: StatusUnhealthy, Error: r.err.Error()}
}

func markTimedOut(resp *Response, checks Checks) {
	resp.Status = StatusUnhealthy
	for name := range checks {
		if _, done := resp.Checks[name]; !done {
			resp.Checks[name] = Check{Status: StatusUnhealthy, Error: ErrCheckTimeout.Error()}
		}
	}
}

// Err returns ErrCheckFailed when the response is unhealthy.
func (r *Response) Err() error {
	if r.Status == StatusHealthy {
		return nil
	}
	var errs []error
	for name, c := range r.Checks {
		if c.Status != StatusHealthy {
			errs = append(errs, errors.New(name+": "+c.Error))
		}
	}
	return errors.Join(append([]error{ErrCheckFailed}, errs...)...)
}

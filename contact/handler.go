package contact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/contactform"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
)

const (
	// DefaultPath is the route the form posts to.
	DefaultPath = "/contact-form"

	// DefaultMaxBodyBytes caps the request body size.
	DefaultMaxBodyBytes int64 = 1 << 20
)

// Handler relays contact form submissions as email.
// It holds no per-request state and is safe for concurrent use.
type Handler struct {
	mailer       *mailer.Mailer
	logger       *slog.Logger
	path         string
	cfg          Config
	maxBodyBytes int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Pass one built with RequestIDExtractor to
// correlate records with requests.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithPath sets the route the handler is mounted on.
func WithPath(path string) Option {
	return func(h *Handler) {
		if path != "" {
			h.path = path
		}
	}
}

// WithMaxBodyBytes caps the request body size. Larger bodies fail with 500.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler creates a Handler delivering through sender.
// Every email passes mailer's pre-send checks, so a missing sender or
// receiver address fails the submission without reaching the provider.
func NewHandler(cfg Config, sender mailer.Sender, opts ...Option) *Handler {
	h := &Handler{
		cfg:          cfg,
		mailer:       mailer.New(sender),
		logger:       logger.NewNope(),
		path:         DefaultPath,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the submission endpoint.
func (h *Handler) Routes(r contactform.Router) {
	r.POST(h.path, h.submit)
}

func (h *Handler) submit(c contactform.Context) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, h.maxBodyBytes))
	if err != nil {
		h.logger.ErrorContext(c, "failed to read request body", slog.String("error", err.Error()))
		out := failed(UnexpectedFailure, fmt.Errorf("%w: %w", ErrBodyRead, err))
		return c.String(out.Status, out.Message)
	}

	out := h.Handle(c, body)
	return c.String(out.Status, out.Message)
}

// Handle validates one raw request body, relays it as an email and reports
// the outcome. Exactly one delivery attempt is made for a valid submission
// and none otherwise. It never panics.
func (h *Handler) Handle(ctx context.Context, raw []byte) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			h.logger.ErrorContext(ctx, "unexpected failure", slog.String("error", err.Error()))
			out = failed(UnexpectedFailure, err)
		}
	}()

	h.logger.InfoContext(ctx, "processing contact form submission")

	sub, err := decodeSubmission(raw)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to decode submission", slog.String("error", err.Error()))
		return failed(UnexpectedFailure, err)
	}

	if err := sub.Validate(); err != nil {
		h.logger.WarnContext(ctx, "contact form rejected", slog.String("error", err.Error()))
		return rejected(err)
	}

	email, err := composeEmail(h.cfg, sub)
	if err != nil {
		h.logger.ErrorContext(ctx, "unexpected failure", slog.String("error", err.Error()))
		return failed(UnexpectedFailure, err)
	}

	if err := h.mailer.Send(ctx, email); err != nil {
		h.logger.ErrorContext(ctx, "failed to send email", slog.String("error", err.Error()))
		return failed(DeliveryFailure, err)
	}

	h.logger.InfoContext(ctx, "email sent", slog.String("subject", email.Subject))
	return succeeded()
}

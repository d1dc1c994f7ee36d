// Command contactform-lambda serves the contact form from AWS Lambda behind
// an API Gateway proxy integration.
package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dmitrymomot/contactform"
	"github.com/dmitrymomot/contactform/contact"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer/provider"
)

const flushTimeout = 2 * time.Second

type Config struct {
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	Contact contact.Config
	Mail    provider.Config
	Log     logger.Config
	Sentry  logger.SentryConfig
}

func main() {
	cfg, err := config.Load[Config]()
	if err != nil {
		logger.New().Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor())

	sender, err := provider.New(context.Background(), cfg.Mail, log)
	if err != nil {
		log.Error("failed to create mail sender", slog.String("error", err.Error()))
		os.Exit(1)
	}

	h := &handler{
		contact:      contact.NewHandler(cfg.Contact, sender, contact.WithLogger(log)),
		log:          log,
		flush:        logger.SentryFlush(cfg.Sentry),
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	lambda.Start(h.handle)
}

type handler struct {
	contact      *contact.Handler
	log          *slog.Logger
	flush        func(context.Context) error
	maxBodyBytes int64
}

// handle translates one API Gateway event into a submission.
// The returned error is always nil: failures are HTTP responses, not
// Lambda invocation errors, so API Gateway does not answer 502.
func (h *handler) handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if id := req.RequestContext.RequestID; id != "" {
		ctx = middlewares.WithRequestIDContext(ctx, id)
	}
	defer h.flushLogs(ctx)

	if req.HTTPMethod != "" && !strings.EqualFold(req.HTTPMethod, http.MethodPost) {
		return respond(ctx, http.StatusMethodNotAllowed, contactform.TextMethodNotAllowed), nil
	}

	body, err := decodeBody(req, h.maxBodyBytes)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to read request body", slog.String("error", err.Error()))
		return respond(ctx, http.StatusInternalServerError, contact.MessageProcessingError), nil
	}

	out := h.contact.Handle(ctx, body)
	return respond(ctx, out.Status, out.Message), nil
}

func (h *handler) flushLogs(ctx context.Context) {
	if h.flush == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	_ = h.flush(ctx)
}

func decodeBody(req events.APIGatewayProxyRequest, maxBytes int64) ([]byte, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", contact.ErrBodyRead, err)
		}
		body = decoded
	}
	if maxBytes > 0 && int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", contact.ErrBodyRead, maxBytes)
	}
	return body, nil
}

func respond(ctx context.Context, status int, text string) events.APIGatewayProxyResponse {
	headers := map[string]string{"Content-Type": "text/plain; charset=utf-8"}
	if id := middlewares.GetRequestID(ctx); id != "" {
		headers["X-Request-ID"] = id
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       text,
	}
}

package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/contact"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
)

const validBody = `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello"}`

type recorder struct {
	sent []*mailer.Email
	err  error
}

func (r *recorder) Send(_ context.Context, e *mailer.Email) error {
	r.sent = append(r.sent, e)
	return r.err
}

func newHandler(sender mailer.Sender) (*handler, *int) {
	flushed := 0
	cfg := contact.Config{SenderEmail: "noreply@example.com", ReceiverEmail: "owner@example.com"}
	return &handler{
		contact: contact.NewHandler(cfg, sender),
		log:     logger.NewNope(),
		flush: func(context.Context) error {
			flushed++
			return nil
		},
		maxBodyBytes: 1 << 20,
	}, &flushed
}

func TestHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      events.APIGatewayProxyRequest
		sendErr  error
		wantCode int
		wantBody string
		wantSent int
	}{
		{
			name:     "valid submission",
			req:      events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: validBody},
			wantCode: http.StatusOK,
			wantBody: contact.MessageSuccess,
			wantSent: 1,
		},
		{
			name: "base64 body",
			req: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Body:            base64.StdEncoding.EncodeToString([]byte(validBody)),
				IsBase64Encoded: true,
			},
			wantCode: http.StatusOK,
			wantBody: contact.MessageSuccess,
			wantSent: 1,
		},
		{
			name:     "bad base64",
			req:      events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: "%%%", IsBase64Encoded: true},
			wantCode: http.StatusInternalServerError,
			wantBody: contact.MessageProcessingError,
		},
		{
			name:     "missing fields",
			req:      events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: `{"name":"Jane"}`},
			wantCode: http.StatusBadRequest,
			wantBody: contact.MessageMissingFields,
		},
		{
			name:     "invalid json",
			req:      events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: "nope"},
			wantCode: http.StatusInternalServerError,
			wantBody: contact.MessageProcessingError,
		},
		{
			name:     "provider failure",
			req:      events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: validBody},
			sendErr:  errors.New("throttled"),
			wantCode: http.StatusInternalServerError,
			wantBody: contact.MessageProcessingError,
			wantSent: 1,
		},
		{
			name:     "wrong method",
			req:      events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet},
			wantCode: http.StatusMethodNotAllowed,
			wantBody: "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sender := &recorder{err: tt.sendErr}
			h, flushed := newHandler(sender)

			resp, err := h.handle(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantBody, resp.Body)
			assert.Equal(t, "text/plain; charset=utf-8", resp.Headers["Content-Type"])
			assert.Len(t, sender.sent, tt.wantSent)
			assert.Equal(t, 1, *flushed)
		})
	}
}

func TestHandle_OversizedBody(t *testing.T) {
	t.Parallel()

	sender := &recorder{}
	h, _ := newHandler(sender)
	h.maxBodyBytes = 10

	resp, err := h.handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: validBody})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, sender.sent)
}

func TestHandle_RequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), middlewares.RequestIDExtractor()))

	cfg := contact.Config{SenderEmail: "noreply@example.com", ReceiverEmail: "owner@example.com"}
	h := &handler{
		contact:      contact.NewHandler(cfg, &recorder{}, contact.WithLogger(log)),
		log:          log,
		maxBodyBytes: 1 << 20,
	}

	req := events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: validBody}
	req.RequestContext.RequestID = "apigw-123"

	resp, err := h.handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "apigw-123", resp.Headers["X-Request-ID"])
	assert.Contains(t, buf.String(), `"request_id":"apigw-123"`)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[Config](map[string]string{
		"SENDER_EMAIL":     "noreply@example.com",
		"RECEIVER_EMAIL":   "owner@example.com",
		"SENDGRID_API_KEY": "SG.key",
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.listenAddress())
	assert.Equal(t, "/contact-form", cfg.ContactPath)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "sendgrid", cfg.Mail.Name)
	assert.Equal(t, "SG.key", cfg.Mail.SendGrid.APIKey)
	assert.Equal(t, "noreply@example.com", cfg.Contact.SenderEmail)
	assert.Equal(t, "owner@example.com", cfg.Contact.ReceiverEmail)
}

func TestConfigAzurePort(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[Config](map[string]string{
		"ADDRESS":                      ":9000",
		"FUNCTIONS_CUSTOMHANDLER_PORT": "7071",
		"CONTACT_PATH":                 "/api/contact-form",
		"CORS_ALLOWED_ORIGINS":         "https://a.example,https://b.example",
	})
	require.NoError(t, err)

	assert.Equal(t, ":7071", cfg.listenAddress())
	assert.Equal(t, "/api/contact-form", cfg.ContactPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func testConfig(t *testing.T, env map[string]string) Config {
	t.Helper()
	cfg, err := config.Parse[Config](env)
	require.NoError(t, err)
	return cfg
}

func TestNewApp(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, map[string]string{
		"SENDER_EMAIL":   "noreply@example.com",
		"RECEIVER_EMAIL": "owner@example.com",
		"CONTACT_PATH":   "/api/contact-form",
	})

	calls := 0
	sender := mailer.SenderFunc(func(ctx context.Context, e *mailer.Email) error {
		calls++
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("expected request deadline")
		}
		return nil
	})
	app := newApp(cfg, sender, logger.NewNope())

	body := `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact-form", strings.NewReader(body))
	req.Header.Set("Origin", "https://site.example")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewApp_ReadinessWithoutAddresses(t *testing.T) {
	t.Parallel()

	app := newApp(testConfig(t, map[string]string{}), mailer.SenderFunc(func(context.Context, *mailer.Email) error { return nil }), logger.NewNope())

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

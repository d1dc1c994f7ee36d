package sendgrid_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/mailer/sendgrid"
)

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type sgPayload struct {
	From             sgAddress  `json:"from"`
	ReplyTo          *sgAddress `json:"reply_to"`
	Subject          string     `json:"subject"`
	Personalizations []struct {
		To []sgAddress `json:"to"`
	} `json:"personalizations"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
	Categories []string `json:"categories"`
}

func newServer(t *testing.T, status int, captured *sgPayload, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if captured != nil {
			assert.NoError(t, json.Unmarshal(body, captured))
		}

		w.WriteHeader(status)
		if status >= 300 {
			_, _ = w.Write([]byte(`{"errors":[{"message":"The provided authorization grant is invalid"}]}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testEmail() *mailer.Email {
	return &mailer.Email{
		From:    "Site <site@example.com>",
		To:      []string{"owner@example.com"},
		ReplyTo: "ann@example.com",
		Subject: "Hi",
		HTML:    "<p>Hello there</p>",
		Text:    "Hello there",
	}
}

func TestSender_Send_Success(t *testing.T) {
	t.Parallel()

	var payload sgPayload
	var calls atomic.Int32
	srv := newServer(t, http.StatusAccepted, &payload, &calls)

	s := sendgrid.New(sendgrid.Config{APIKey: "test-key", Host: srv.URL, Categories: []string{"contact-form"}})
	err := s.Send(context.Background(), testEmail())
	require.NoError(t, err)

	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, "site@example.com", payload.From.Email)
	assert.Equal(t, "Site", payload.From.Name)
	require.NotNil(t, payload.ReplyTo)
	assert.Equal(t, "ann@example.com", payload.ReplyTo.Email)
	assert.Equal(t, "Hi", payload.Subject)
	require.Len(t, payload.Personalizations, 1)
	require.Len(t, payload.Personalizations[0].To, 1)
	assert.Equal(t, "owner@example.com", payload.Personalizations[0].To[0].Email)
	require.Len(t, payload.Content, 2)
	assert.Equal(t, "text/plain", payload.Content[0].Type)
	assert.Equal(t, "text/html", payload.Content[1].Type)
	assert.Equal(t, "<p>Hello there</p>", payload.Content[1].Value)
	assert.Equal(t, []string{"contact-form"}, payload.Categories)
}

func TestSender_Send_HTMLOnly(t *testing.T) {
	t.Parallel()

	var payload sgPayload
	var calls atomic.Int32
	srv := newServer(t, http.StatusAccepted, &payload, &calls)

	email := testEmail()
	email.Text = ""
	email.ReplyTo = ""

	err := sendgrid.New(sendgrid.Config{APIKey: "test-key", Host: srv.URL}).Send(context.Background(), email)
	require.NoError(t, err)

	require.Len(t, payload.Content, 1)
	assert.Equal(t, "text/html", payload.Content[0].Type)
	assert.Nil(t, payload.ReplyTo)
}

func TestSender_Send_ErrorStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newServer(t, http.StatusUnauthorized, nil, &calls)

	err := sendgrid.New(sendgrid.Config{APIKey: "test-key", Host: srv.URL}).Send(context.Background(), testEmail())
	require.ErrorIs(t, err, sendgrid.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "401")
	assert.EqualValues(t, 1, calls.Load())
}

func TestSender_Send_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	host := srv.URL
	srv.Close()

	err := sendgrid.New(sendgrid.Config{APIKey: "test-key", Host: host}).Send(context.Background(), testEmail())
	require.Error(t, err)
	assert.NotErrorIs(t, err, sendgrid.ErrUnexpectedStatus)
}

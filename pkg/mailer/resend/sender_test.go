package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

func TestConvertTags_SortedByName(t *testing.T) {
	t.Parallel()

	tags := convertTags(mailer.Tags{"source": "contact-form", "env": "prod"})

	require.Len(t, tags, 2)
	assert.Equal(t, "env", tags[0].Name)
	assert.Equal(t, "prod", tags[0].Value)
	assert.Equal(t, "source", tags[1].Name)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := New(Config{APIKey: "re_test", BaseURL: "://bad"})
	require.Error(t, err)
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	t.Cleanup(srv.Close)

	s, err := New(Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	err = s.Send(context.Background(), &mailer.Email{
		From:    "site@example.com",
		To:      []string{"owner@example.com"},
		Subject: "Hi",
		HTML:    "<p>Hello</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi", got["subject"])
	assert.Equal(t, "site@example.com", got["from"])
}

func TestSender_Send_ProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	t.Cleanup(srv.Close)

	s, err := New(Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	err = s.Send(context.Background(), &mailer.Email{
		From:    "bad",
		To:      []string{"owner@example.com"},
		Subject: "Hi",
		HTML:    "<p>Hello</p>",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resend: failed to send email")
}

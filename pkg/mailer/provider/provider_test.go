package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/mailer/console"
	"github.com/dmitrymomot/contactform/pkg/mailer/provider"
	"github.com/dmitrymomot/contactform/pkg/mailer/resend"
	"github.com/dmitrymomot/contactform/pkg/mailer/sendgrid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  provider.Config
		want any
	}{
		{name: "default is sendgrid", cfg: provider.Config{}, want: &sendgrid.Sender{}},
		{name: "sendgrid", cfg: provider.Config{Name: "SendGrid"}, want: &sendgrid.Sender{}},
		{name: "resend", cfg: provider.Config{Name: "resend"}, want: &resend.Sender{}},
		{name: "console", cfg: provider.Config{Name: " console "}, want: &console.Sender{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := provider.New(context.Background(), tt.cfg, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	t.Parallel()

	_, err := provider.New(context.Background(), provider.Config{Name: "pigeon"}, nil)
	require.ErrorIs(t, err, mailer.ErrUnknownProvider)
}

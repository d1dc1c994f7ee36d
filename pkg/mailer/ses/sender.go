// Package ses implements mailer.Sender on top of Amazon SES.
package ses

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

const charset = "UTF-8"

// API is the subset of the SES client used by Sender.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Sender implements mailer.Sender using Amazon SES.
type Sender struct {
	client API
	config Config
}

// New creates a sender around an existing SES client.
func New(client API, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// NewFromConfig loads the default AWS configuration for cfg.Region and
// creates a sender backed by a new SES client.
func NewFromConfig(ctx context.Context, cfg Config) (*Sender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("ses: failed to load aws config: %w", err)
	}
	return New(ses.NewFromConfig(awsCfg), cfg), nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	body := &types.Body{
		Html: &types.Content{Data: aws.String(email.HTML), Charset: aws.String(charset)},
	}
	if email.Text != "" {
		body.Text = &types.Content{Data: aws.String(email.Text), Charset: aws.String(charset)}
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(email.From),
		Destination: &types.Destination{ToAddresses: email.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
			Body:    body,
		},
	}

	if email.ReplyTo != "" {
		input.ReplyToAddresses = []string{email.ReplyTo}
	}
	if s.config.ConfigurationSet != "" {
		input.ConfigurationSetName = aws.String(s.config.ConfigurationSet)
	}
	if len(email.Tags) > 0 {
		input.Tags = messageTags(email.Tags)
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: failed to send email: %w", err)
	}

	return nil
}

func messageTags(tags mailer.Tags) []types.MessageTag {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.MessageTag, 0, len(tags))
	for _, name := range names {
		out = append(out, types.MessageTag{Name: aws.String(name), Value: aws.String(tags[name])})
	}
	return out
}

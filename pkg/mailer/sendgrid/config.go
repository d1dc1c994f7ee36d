package sendgrid

// DefaultHost is the SendGrid v3 API host.
const DefaultHost = "https://api.sendgrid.com"

// Config holds SendGrid email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey string `env:"SENDGRID_API_KEY"`
	Host   string `env:"SENDGRID_HOST" envDefault:"https://api.sendgrid.com"`
	// Categories are attached to every message for SendGrid statistics.
	Categories []string `env:"SENDGRID_CATEGORIES" envSeparator:","`
}

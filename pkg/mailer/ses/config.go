package ses

// Config holds Amazon SES provider configuration.
// Credentials come from the default AWS chain (env, shared config, instance role).
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
}

package config

import "time"

// PushConfig contains push notification gateway configuration.
type PushConfig struct {
	Enabled    bool          `env:"ENABLED"     envDefault:"false"`
	GatewayURL string        `env:"GATEWAY_URL" envDefault:""`
	AuthKey    string        `env:"AUTH_KEY"    envDefault:""`
	Timeout    time.Duration `env:"TIMEOUT"     envDefault:"5s"`
	RetryLimit int           `env:"RETRY_LIMIT" envDefault:"2"`
}

// SMSConfig contains SMS gateway configuration.
type SMSConfig struct {
	Enabled    bool          `env:"ENABLED"     envDefault:"false"`
	GatewayURL string        `env:"GATEWAY_URL" envDefault:""`
	Sender     string        `env:"SENDER"      envDefault:""`
	APIKey     string        `env:"API_KEY"     envDefault:""`
	Timeout    time.Duration `env:"TIMEOUT"     envDefault:"5s"`
	RetryLimit int           `env:"RETRY_LIMIT" envDefault:"2"`
}

// EmailConfig contains mailer configuration.
type EmailConfig struct {
	Enabled    bool          `env:"ENABLED"    envDefault:"false"`
	MailerURL  string        `env:"MAILER_URL" envDefault:""`
	FromName   string        `env:"FROM_NAME"  envDefault:"Booking"`
	FromEmail  string        `env:"FROM_EMAIL" envDefault:"noreply@example.com"`
	Timeout    time.Duration `env:"TIMEOUT"    envDefault:"5s"`
	RetryLimit int           `env:"RETRY_LIMIT" envDefault:"2"`
}

// NotifyConfig groups the notification channel gateways.
// A channel with Enabled=false is not registered with the dispatcher.
type NotifyConfig struct {
	Push  PushConfig  `envPrefix:"PUSH_"`
	SMS   SMSConfig   `envPrefix:"SMS_"`
	Email EmailConfig `envPrefix:"EMAIL_"`
}

// Sanitize applies guardrails to notification configuration values.
// A channel marked enabled without a gateway URL is disabled.
func (n *NotifyConfig) Sanitize() {
	if n.Push.Enabled && n.Push.GatewayURL == "" {
		n.Push.Enabled = false
	}
	if n.SMS.Enabled && n.SMS.GatewayURL == "" {
		n.SMS.Enabled = false
	}
	if n.Email.Enabled && n.Email.MailerURL == "" {
		n.Email.Enabled = false
	}
	if n.Push.RetryLimit < 0 {
		n.Push.RetryLimit = 0
	}
	if n.SMS.RetryLimit < 0 {
		n.SMS.RetryLimit = 0
	}
	if n.Email.RetryLimit < 0 {
		n.Email.RetryLimit = 0
	}
}

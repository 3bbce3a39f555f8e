package email

// Config holds Postmark delivery settings. Tokens are optional so that
// development environments can run with email disabled; NewPostmarkClient
// rejects an incomplete config at construction time instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@socialynx.app"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@socialynx.app"`
}

// Enabled reports whether the config carries enough credentials to send
// real email.
func (c Config) Enabled() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}

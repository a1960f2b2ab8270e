package email

import (
	"localpro_backend/internal/logger"
)

// LogProvider is used when SMTP is not configured: outgoing mail is
// written to the log instead of being sent.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(to, subject, body string) error {
	logger.Info("email not sent (SMTP not configured)", "to", to, "subject", subject)
	return nil
}

func (p *LogProvider) SendPasswordReset(to, token string) error {
	logger.Info("password reset email not sent (SMTP not configured)", "to", to, "token", token)
	return nil
}

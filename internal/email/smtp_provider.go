package email

import (
	"fmt"

	"localpro_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through a plain SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	subject := "Reset your LocalPro password"
	body := fmt.Sprintf(
		"<p>We received a request to reset your password.</p>"+
			"<p>Your reset code is: <b>%s</b></p>"+
			"<p>The code expires in one hour. If you did not request a reset, ignore this email.</p>",
		token,
	)
	return p.Send(to, subject, body)
}

package email

// Provider is the outbound-mail boundary.
type Provider interface {
	// Send delivers a single HTML email.
	Send(to, subject, body string) error

	// SendPasswordReset delivers the password-reset email.
	SendPasswordReset(to, token string) error
}

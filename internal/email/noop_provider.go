package email

import "cofoundr_backend/internal/logger"

// NoopProvider is wired when outbound mail is disabled in config. It logs
// instead of sending so local environments still show what would go out.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email sending disabled", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendVerification(to string, token string) error {
	logger.Info("email sending disabled, skipping verification mail", "to", to)
	return nil
}

func (p *NoopProvider) Validate() error { return nil }

func (p *NoopProvider) Close() error { return nil }

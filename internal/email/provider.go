package email

// Provider is the outbound mail interface. The app wires the SMTP provider
// in production and a recording mock in tests.
type Provider interface {
	Send(email *Email) error

	// SendVerification delivers the account verification link for a freshly
	// registered address.
	SendVerification(to string, token string) error

	Validate() error
	Close() error
}

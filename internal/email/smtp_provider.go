package email

import (
	"bytes"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"cofoundr_backend/internal/config"
)

var verificationTemplate = template.Must(template.New("verification").Parse(`
<p>Welcome to Cofoundr!</p>
<p>Confirm your email address to start browsing co-founder candidates:</p>
<p><a href="{{.VerifyURL}}">Verify my email</a></p>
<p>If you did not create an account, ignore this message.</p>
`))

// SMTPProvider delivers mail through the configured SMTP relay.
type SMTPProvider struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
	host      string
	port      int
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		dialer:    gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
		host:      cfg.Email.SMTPHost,
		port:      cfg.Email.SMTPPort,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = m.FormatAddress(p.fromEmail, p.fromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail via %s:%d: %w", p.host, p.port, err)
	}
	return nil
}

func (p *SMTPProvider) SendVerification(to string, token string) error {
	var body bytes.Buffer
	err := verificationTemplate.Execute(&body, TemplateData{
		"VerifyURL": fmt.Sprintf("https://app.cofoundr.io/verify?token=%s", token),
	})
	if err != nil {
		return fmt.Errorf("render verification email: %w", err)
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Verify your Cofoundr account",
		HTMLBody: body.String(),
	})
}

func (p *SMTPProvider) Validate() error {
	if p.host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.port <= 0 || p.port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.port)
	}
	return nil
}

func (p *SMTPProvider) Close() error {
	return nil
}

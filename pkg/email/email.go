package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	htmltemplate "html/template"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	texttemplate "text/template"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
)

const notProvided = "Not provided"

// SendFunc delivers a fully composed message.
type SendFunc func(ctx context.Context, from string, to []string, msg []byte) error

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string

	// configured mirrors config.SMTPConfigured: credentials only
	configured bool
	send       SendFunc
}

// contactEmailData holds the fields rendered into both message parts
type contactEmailData struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	Subject     string
	Message     string
	SubmittedAt string
}

func NewEmailService(cfg *config.Config) *EmailService {
	s := &EmailService{
		host:      cfg.SMTPServer,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.FromEmail,
		toEmail:   cfg.ContactEmailTo,

		configured: cfg.SMTPConfigured(),
	}
	s.send = s.sendSMTP
	return s
}

// WithSender replaces the SMTP transport, mainly for tests.
func (s *EmailService) WithSender(send SendFunc) *EmailService {
	s.send = send
	return s
}

const contactEmailHTML = `<html>
<body>
    <h2>New Contact Form Submission</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Company:</strong> {{.Company}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <p>{{.Message}}</p>
    <hr>
    <p><small>Submitted at: {{.SubmittedAt}}</small></p>
</body>
</html>`

const contactEmailText = `New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Company: {{.Company}}
Phone: {{.Phone}}
Subject: {{.Subject}}

Message:
{{.Message}}

Submitted at: {{.SubmittedAt}}
`

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("contact_html").Parse(contactEmailHTML))
	textTmpl = texttemplate.Must(texttemplate.New("contact_text").Parse(contactEmailText))
)

// Subject returns the notification subject line for a submission.
func Subject(sub *domain.ContactSubmission) string {
	return "New Contact Form Submission: " + sub.Subject
}

// NotifyContactSubmission emails the operator about a new submission.
// Without SMTP credentials the message is skipped and only the subject is logged.
func (s *EmailService) NotifyContactSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	subject := Subject(sub)
	if !s.IsConfigured() {
		logger.Log.Info("Email not sent - SMTP not configured", "would_send", subject, "submission_id", sub.ID)
		return nil
	}

	msg, err := s.BuildContactMessage(sub)
	if err != nil {
		return err
	}

	if err := s.send(ctx, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Log.Info("Contact notification sent", "submission_id", sub.ID, "to", s.toEmail)
	return nil
}

// BuildContactMessage composes a multipart/alternative message with plain-text and HTML parts.
func (s *EmailService) BuildContactMessage(sub *domain.ContactSubmission) ([]byte, error) {
	data := contactEmailData{
		Name:        sub.Name,
		Email:       sub.Email,
		Company:     orNotProvided(sub.Company),
		Phone:       orNotProvided(sub.Phone),
		Subject:     sub.Subject,
		Message:     sub.Message,
		SubmittedAt: sub.SubmittedAt.Format(time.RFC3339),
	}

	var textBody, htmlBody bytes.Buffer
	if err := textTmpl.Execute(&textBody, data); err != nil {
		return nil, fmt.Errorf("failed to execute text template: %w", err)
	}
	if err := htmlTmpl.Execute(&htmlBody, data); err != nil {
		return nil, fmt.Errorf("failed to execute html template: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, part := range []struct {
		contentType string
		content     []byte
	}{
		{"text/plain; charset=UTF-8", textBody.Bytes()},
		{"text/html; charset=UTF-8", htmlBody.Bytes()},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {part.contentType}})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(part.content); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.fromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", s.toEmail)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", headerSafe(sub.Email))
	fmt.Fprintf(&msg, "Subject: %s\r\n", headerSafe(Subject(sub)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%s\r\n", mw.Boundary())
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return msg.Bytes(), nil
}

// IsConfigured checks if the email service has SMTP credentials.
// The host is not part of the check; an empty host fails at send time.
func (s *EmailService) IsConfigured() bool {
	return s.configured
}

// sendSMTP dials the relay, upgrades with STARTTLS when offered and authenticates with PLAIN.
func (s *EmailService) sendSMTP(ctx context.Context, from string, to []string, msg []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return err
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func orNotProvided(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return notProvided
	}
	return *s
}

// headerSafe strips CR/LF so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

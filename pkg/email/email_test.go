package email

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"testing"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(user, pass string) *config.Config {
	return &config.Config{
		SMTPServer:     "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   user,
		SMTPPassword:   pass,
		FromEmail:      "noreply@aagamshah.com",
		ContactEmailTo: "owner@example.com",
	}
}

func testSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:          "sub-1",
		Name:        "Jane <Doe>",
		Email:       "jane@example.com",
		Subject:     "Project inquiry",
		Message:     "Let's talk",
		SubmittedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:      domain.StatusReceived,
	}
}

func TestBuildContactMessageIsMultipartAlternative(t *testing.T) {
	svc := NewEmailService(testConfig("u", "p"))

	raw, err := svc.BuildContactMessage(testSubmission())
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "New Contact Form Submission: Project inquiry", msg.Header.Get("Subject"))
	assert.Equal(t, "owner@example.com", msg.Header.Get("To"))
	assert.Equal(t, "jane@example.com", msg.Header.Get("Reply-To"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	var types []string
	var bodies []string
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		b, _ := io.ReadAll(p)
		types = append(types, p.Header.Get("Content-Type"))
		bodies = append(bodies, string(b))
	}

	require.Len(t, types, 2)
	assert.Contains(t, types[0], "text/plain")
	assert.Contains(t, types[1], "text/html")
	assert.Contains(t, bodies[0], "Company: Not provided")
	assert.Contains(t, bodies[0], "Name: Jane <Doe>")
	assert.Contains(t, bodies[1], "Jane &lt;Doe&gt;")
	assert.Contains(t, bodies[1], "Submitted at: 2025-01-02T03:04:05Z")
}

func TestNotifySkipsWhenUnconfigured(t *testing.T) {
	called := false
	svc := NewEmailService(testConfig("", "")).WithSender(func(ctx context.Context, from string, to []string, msg []byte) error {
		called = true
		return nil
	})

	err := svc.NotifyContactSubmission(context.Background(), testSubmission())
	assert.NoError(t, err)
	assert.False(t, called)
	assert.False(t, svc.IsConfigured())
}

func TestNotifySendsToOperator(t *testing.T) {
	var gotFrom string
	var gotTo []string
	svc := NewEmailService(testConfig("u", "p")).WithSender(func(ctx context.Context, from string, to []string, msg []byte) error {
		gotFrom, gotTo = from, to
		return nil
	})

	require.NoError(t, svc.NotifyContactSubmission(context.Background(), testSubmission()))
	assert.Equal(t, "noreply@aagamshah.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
}

func TestNotifyAttemptsSendWithCredentialsButNoServer(t *testing.T) {
	cfg := testConfig("u", "p")
	cfg.SMTPServer = ""

	called := false
	svc := NewEmailService(cfg).WithSender(func(ctx context.Context, from string, to []string, msg []byte) error {
		called = true
		return errors.New("dial tcp :587: connection refused")
	})

	assert.True(t, svc.IsConfigured())
	err := svc.NotifyContactSubmission(context.Background(), testSubmission())
	assert.ErrorContains(t, err, "connection refused")
	assert.True(t, called)
}

func TestNotifyWrapsTransportError(t *testing.T) {
	svc := NewEmailService(testConfig("u", "p")).WithSender(func(ctx context.Context, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	})

	err := svc.NotifyContactSubmission(context.Background(), testSubmission())
	assert.ErrorContains(t, err, "connection refused")
}

func TestHeaderSafeStripsNewlines(t *testing.T) {
	sub := testSubmission()
	sub.Subject = "Hi\r\nBcc: victim@example.com"

	raw, err := NewEmailService(testConfig("u", "p")).BuildContactMessage(sub)
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Empty(t, msg.Header.Get("Bcc"))
}

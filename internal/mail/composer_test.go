package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goldenpays/consultancy-api/internal/config"
	"github.com/goldenpays/consultancy-api/internal/domain"
)

func sampleInquiry() domain.Inquiry {
	return domain.Inquiry{
		ID:        "inq-1",
		Name:      "Jane Doe",
		Company:   "Acme",
		Email:     "jane@acme.com",
		Service:   domain.ServiceCloudMigration,
		Message:   "Line one\nLine two",
		Status:    domain.InquiryStatusNew,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestComposer_OperatorNotice(t *testing.T) {
	c := NewComposer("noreply@goldenpays.uk", "ops@goldenpays.uk")
	msg, err := c.OperatorNotice(sampleInquiry())
	if err != nil {
		t.Fatalf("OperatorNotice: %v", err)
	}
	if msg.Subject != "New Contact Form Submission - Cloud Migration" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if len(msg.To) != 1 || msg.To[0] != "ops@goldenpays.uk" {
		t.Fatalf("unexpected recipients %v", msg.To)
	}
	if !strings.Contains(msg.HTML, "Line one<br>Line two") {
		t.Fatalf("message newlines should become <br>: %s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "Acme") {
		t.Fatalf("company missing from notice")
	}
}

func TestComposer_OmitsPlaceholderCompany(t *testing.T) {
	inq := sampleInquiry()
	inq.Company = domain.CompanyNotProvided
	msg, err := NewComposer("noreply@goldenpays.uk", "ops@goldenpays.uk").OperatorNotice(inq)
	if err != nil {
		t.Fatalf("OperatorNotice: %v", err)
	}
	if strings.Contains(msg.HTML, "Company:</td>") {
		t.Fatalf("placeholder company should not be rendered")
	}
}

func TestComposer_AutoReplyEscapesInput(t *testing.T) {
	inq := sampleInquiry()
	inq.Name = `<script>alert("x")</script>`
	msg, err := NewComposer("noreply@goldenpays.uk", "ops@goldenpays.uk").AutoReply(inq)
	if err != nil {
		t.Fatalf("AutoReply: %v", err)
	}
	if msg.To[0] != "jane@acme.com" {
		t.Fatalf("auto reply must go to the submitter, got %v", msg.To)
	}
	if msg.Subject != "Your Inquiry Has Been Received - GOLDENPAYS LTD" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatalf("submitter input must be escaped")
	}
	if !strings.Contains(msg.HTML, "ops@goldenpays.uk") {
		t.Fatalf("operator contact missing")
	}
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSender(zap.New(core))
	if err := s.Send(context.Background(), Message{From: "a@b.c", To: []string{"d@e.f"}, Subject: "hi"}); err != nil {
		t.Fatalf("LogSender must not fail: %v", err)
	}
	if logs.FilterMessage("email (not delivered)").Len() != 1 {
		t.Fatalf("expected the message to be logged")
	}
}

func TestNewSender_SelectsProvider(t *testing.T) {
	logger := zap.NewNop()
	if _, ok := NewSender(config.MailConfig{}, logger).(*LogSender); !ok {
		t.Fatalf("expected log sender without key")
	}
	if _, ok := NewSender(config.MailConfig{SendGridAPIKey: "your-sendgrid-api-key"}, logger).(*LogSender); !ok {
		t.Fatalf("placeholder key must select the log sender")
	}
	if _, ok := NewSender(config.MailConfig{SendGridAPIKey: "SG.key", SMTPHost: "smtp.sendgrid.net", SMTPPort: 587}, logger).(*SMTPSender); !ok {
		t.Fatalf("expected smtp sender with a real key")
	}
}

func TestSMTPSender_Render(t *testing.T) {
	s := NewSMTPSender(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587})
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	raw := string(s.render(Message{From: "GOLDENPAYS <noreply@goldenpays.uk>", To: []string{"a@b.c"}, Subject: "Hello", HTML: "<p>hi</p>"}))

	for _, want := range []string{"To: a@b.c\r\n", "Subject: Hello\r\n", "Content-Type: text/html", "@goldenpays.uk>\r\n", "\r\n\r\n<p>hi</p>"} {
		if !strings.Contains(raw, want) {
			t.Fatalf("rendered message missing %q:\n%s", want, raw)
		}
	}
	if got := addressOnly("GOLDENPAYS <noreply@goldenpays.uk>"); got != "noreply@goldenpays.uk" {
		t.Fatalf("addressOnly = %q", got)
	}
}

func TestSMTPSender_RequiresRecipients(t *testing.T) {
	s := NewSMTPSender(config.MailConfig{SMTPHost: "127.0.0.1", SMTPPort: 1})
	if err := s.Send(context.Background(), Message{}); err == nil {
		t.Fatalf("expected error without recipients")
	}
}

// Package mail delivers outbound notifications. The provider is chosen once at
// startup: the SendGrid SMTP relay when a real API key is configured,
// otherwise a sender that only writes messages to the log.
package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/goldenpays/consultancy-api/internal/config"
)

// Message is a single HTML email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender resolves the provider from configuration.
func NewSender(cfg config.MailConfig, logger *zap.Logger) Sender {
	if cfg.HasProvider() {
		logger.Info("mail provider configured", zap.String("host", cfg.SMTPHost), zap.Int("port", cfg.SMTPPort))
		return NewSMTPSender(cfg)
	}
	logger.Info("no mail provider configured; emails will be logged")
	return NewLogSender(logger)
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender builds a development sender.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message and never fails.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email (not delivered)",
		zap.String("from", msg.From),
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("html", msg.HTML),
	)
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/events"
	"github.com/goldenpays/consultancy-api/internal/mail"
	"github.com/goldenpays/consultancy-api/internal/observability"
)

// blockingSender waits for the context to end, simulating an unresponsive relay.
type blockingSender struct{}

func (blockingSender) Send(ctx context.Context, _ mail.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestNotificationService_SendTimeoutIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(NotificationDependencies{
		Dispatcher:  dispatcher,
		Sender:      blockingSender{},
		Composer:    mail.NewComposer("noreply@goldenpays.uk", "ops@goldenpays.uk"),
		Metrics:     observability.NewMetrics(),
		Logger:      zap.New(core),
		SendTimeout: 20 * time.Millisecond,
	}).RegisterHandlers()

	event := events.Event{
		Type:      events.EventInquirySubmitted,
		InquiryID: "a",
		Payload: events.InquirySubmittedPayload{Inquiry: domain.Inquiry{
			ID:      "a",
			Name:    "Jane Doe",
			Email:   "jane@acme.com",
			Service: domain.ServiceOther,
			Message: "Please get in touch.",
		}},
	}

	start := time.Now()
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("delivery failures must not surface: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("sends should run concurrently and honour the timeout, took %s", elapsed)
	}
	if n := logs.FilterMessage("notification failed").Len(); n != 2 {
		t.Fatalf("expected both failures logged, got %d", n)
	}
}

func TestNotificationService_RejectsUnexpectedPayload(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(NotificationDependencies{Dispatcher: dispatcher}).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventInquirySubmitted, Payload: "oops"})
	if err == nil {
		t.Fatalf("expected error for malformed payload")
	}
	if errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected cancellation")
	}
}

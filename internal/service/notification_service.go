package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/events"
	"github.com/goldenpays/consultancy-api/internal/mail"
	"github.com/goldenpays/consultancy-api/internal/observability"
)

const (
	notificationOperator  = "operator_notice"
	notificationAutoReply = "auto_reply"
)

// NotificationService turns domain events into outbound email.
type NotificationService struct {
	dispatcher events.Dispatcher
	sender     mail.Sender
	composer   *mail.Composer
	metrics    *observability.Metrics
	logger     *zap.Logger
	timeout    time.Duration
}

// NotificationDependencies groups the collaborators of NotificationService.
type NotificationDependencies struct {
	Dispatcher  events.Dispatcher
	Sender      mail.Sender
	Composer    *mail.Composer
	Metrics     *observability.Metrics
	Logger      *zap.Logger
	SendTimeout time.Duration
}

// NewNotificationService creates the service.
func NewNotificationService(deps NotificationDependencies) *NotificationService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := deps.SendTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NotificationService{
		dispatcher: deps.Dispatcher,
		sender:     deps.Sender,
		composer:   deps.Composer,
		metrics:    deps.Metrics,
		logger:     logger,
		timeout:    timeout,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInquirySubmitted, n.handleInquirySubmitted)
	n.dispatcher.Subscribe(events.EventInquiryStatusChanged, n.handleInquiryStatusChanged)
	n.dispatcher.Subscribe(events.EventInquiryDeleted, n.handleInquiryDeleted)
}

// handleInquirySubmitted sends the operator notice and the submitter
// auto-reply concurrently and waits for both. Delivery failures are logged and
// counted; they never fail the submission.
func (n *NotificationService) handleInquirySubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquirySubmittedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	inquiry := payload.Inquiry
	n.logger.Info("InquirySubmitted", zap.String("inquiry_id", inquiry.ID), zap.String("service", string(inquiry.Service)))

	if n.sender == nil || n.composer == nil {
		return nil
	}

	// The request may finish before delivery does; only the send timeout bounds it.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		n.deliver(sendCtx, notificationOperator, inquiry, n.composer.OperatorNotice)
	}()
	go func() {
		defer wg.Done()
		n.deliver(sendCtx, notificationAutoReply, inquiry, n.composer.AutoReply)
	}()
	wg.Wait()
	return nil
}

func (n *NotificationService) deliver(ctx context.Context, kind string, inquiry domain.Inquiry, compose func(domain.Inquiry) (mail.Message, error)) {
	msg, err := compose(inquiry)
	if err == nil {
		err = n.sender.Send(ctx, msg)
	}
	n.metrics.RecordNotification(kind, err)
	if err != nil {
		n.logger.Error("notification failed",
			zap.String("kind", kind),
			zap.String("inquiry_id", inquiry.ID),
			zap.Error(err))
		return
	}
	n.logger.Debug("notification sent", zap.String("kind", kind), zap.String("inquiry_id", inquiry.ID))
}

func (n *NotificationService) handleInquiryStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("InquiryStatusChanged", zap.String("inquiry_id", event.InquiryID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleInquiryDeleted(_ context.Context, event events.Event) error {
	n.logger.Info("InquiryDeleted", zap.String("inquiry_id", event.InquiryID))
	return nil
}

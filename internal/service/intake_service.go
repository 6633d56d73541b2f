package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/events"
	"github.com/goldenpays/consultancy-api/internal/observability"
	"github.com/goldenpays/consultancy-api/internal/repository"
	"github.com/goldenpays/consultancy-api/internal/validation"
)

// SubmissionAcknowledgement is returned to the visitor after a successful submit.
const SubmissionAcknowledgement = "Your inquiry has been submitted successfully. We will respond within 2 business days."

// SubmissionInput is a raw contact-form payload.
type SubmissionInput struct {
	Name    string                 `validate:"required,min=2,max=100"`
	Company string                 `validate:"max=200"`
	Email   string                 `validate:"required,email"`
	Service domain.ServiceCategory `validate:"required,service_category"`
	Message string                 `validate:"required,min=10,max=2000"`
}

// SubmissionReceipt acknowledges an accepted inquiry. It deliberately carries
// no identifier.
type SubmissionReceipt struct {
	Message string
}

// IntakeService validates, stores and announces contact-form submissions.
type IntakeService struct {
	inquiries  repository.InquiryRepository
	dispatcher events.Dispatcher
	validator  *validation.Validator
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// IntakeDependencies groups the collaborators of IntakeService.
type IntakeDependencies struct {
	Inquiries  repository.InquiryRepository
	Dispatcher events.Dispatcher
	Validator  *validation.Validator
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewIntakeService builds the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{
		inquiries:  deps.Inquiries,
		dispatcher: deps.Dispatcher,
		validator:  v,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit validates the payload, stores it as a new inquiry and then publishes
// InquirySubmitted. Nothing is stored when validation fails, and notification
// problems never fail an already stored submission.
func (s *IntakeService) Submit(ctx context.Context, input SubmissionInput) (*SubmissionReceipt, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	company := input.Company
	if company == "" {
		company = domain.CompanyNotProvided
	}
	inquiry := &domain.Inquiry{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Company:   company,
		Email:     input.Email,
		Service:   input.Service,
		Message:   input.Message,
		Status:    domain.InquiryStatusNew,
		CreatedAt: s.now().UTC(),
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	s.metrics.RecordSubmission(string(inquiry.Service))

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInquirySubmitted,
			InquiryID: inquiry.ID,
			Timestamp: s.now().UTC(),
			Payload:   events.InquirySubmittedPayload{Inquiry: *inquiry},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("inquiry notification failed", zap.String("inquiry_id", inquiry.ID), zap.Error(err))
		}
	}

	return &SubmissionReceipt{Message: SubmissionAcknowledgement}, nil
}

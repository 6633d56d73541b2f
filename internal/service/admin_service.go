package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/events"
	"github.com/goldenpays/consultancy-api/internal/repository"
	"github.com/goldenpays/consultancy-api/internal/validation"
)

// StatusFilterAll lists every inquiry regardless of status.
const StatusFilterAll = "all"

// StatusUpdateInput is the accepted inquiry patch. Only the status may change.
type StatusUpdateInput struct {
	Status domain.InquiryStatus `validate:"required,inquiry_status"`
}

// ClientInput carries the attributes of a new client.
type ClientInput struct {
	Name    string              `validate:"max=200"`
	Company string              `validate:"max=200"`
	Email   string              `validate:"omitempty,email"`
	Phone   string              `validate:"max=50"`
	Status  domain.ClientStatus `validate:"omitempty,oneof=active inactive prospect"`
	Since   string
	Revenue string
}

// ProjectInput carries the attributes of a new project.
type ProjectInput struct {
	Name      string               `validate:"max=200"`
	Client    string               `validate:"max=200"`
	Type      string               `validate:"max=100"`
	Status    domain.ProjectStatus `validate:"omitempty,oneof=planning active on-hold completed"`
	Progress  int                  `validate:"min=0,max=100"`
	StartDate string
	EndDate   string
	Value     string
}

// Stats summarizes the back office.
type Stats struct {
	TotalInquiries int
	NewInquiries   int
	TotalClients   int
	ActiveProjects int
}

// AdminService backs the guarded back-office routes.
type AdminService struct {
	inquiries  repository.InquiryRepository
	clients    repository.ClientRepository
	projects   repository.ProjectRepository
	dispatcher events.Dispatcher
	validator  *validation.Validator
	logger     *zap.Logger
	now        func() time.Time
}

// AdminDependencies groups the collaborators of AdminService.
type AdminDependencies struct {
	Inquiries  repository.InquiryRepository
	Clients    repository.ClientRepository
	Projects   repository.ProjectRepository
	Dispatcher events.Dispatcher
	Validator  *validation.Validator
	Logger     *zap.Logger
}

// NewAdminService builds the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		inquiries:  deps.Inquiries,
		clients:    deps.Clients,
		projects:   deps.Projects,
		dispatcher: deps.Dispatcher,
		validator:  v,
		logger:     logger,
		now:        time.Now,
	}
}

// ListInquiries returns inquiries newest first. An empty status or "all"
// disables filtering; any other value must be a known status.
func (s *AdminService) ListInquiries(ctx context.Context, status string) ([]domain.Inquiry, error) {
	filter, err := inquiryFilter(status)
	if err != nil {
		return nil, err
	}
	return s.inquiries.List(ctx, filter)
}

// GetInquiry returns domain.ErrInquiryNotFound for unknown ids.
func (s *AdminService) GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	return s.inquiries.GetByID(ctx, id)
}

// UpdateInquiryStatus moves an inquiry to a new status.
func (s *AdminService) UpdateInquiryStatus(ctx context.Context, id string, input StatusUpdateInput) (*domain.Inquiry, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	current, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.inquiries.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventInquiryStatusChanged, id, events.InquiryStatusChangedPayload{
		OldStatus: current.Status,
		NewStatus: updated.Status,
	})
	return updated, nil
}

// DeleteInquiry removes an inquiry.
func (s *AdminService) DeleteInquiry(ctx context.Context, id string) error {
	if err := s.inquiries.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventInquiryDeleted, id, nil)
	return nil
}

// ListClients returns clients in insertion order.
func (s *AdminService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// CreateClient assigns an id and creation time and stores the client.
func (s *AdminService) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	client := &domain.Client{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Company:   input.Company,
		Email:     input.Email,
		Phone:     input.Phone,
		Status:    input.Status,
		Since:     input.Since,
		Revenue:   input.Revenue,
		CreatedAt: s.now().UTC(),
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// ListProjects returns projects in insertion order.
func (s *AdminService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// CreateProject assigns an id and creation time and stores the project.
func (s *AdminService) CreateProject(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	project := &domain.Project{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Client:    input.Client,
		Type:      input.Type,
		Status:    input.Status,
		Progress:  input.Progress,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Value:     input.Value,
		CreatedAt: s.now().UTC(),
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Stats computes the dashboard totals.
func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	newStatus := domain.InquiryStatusNew
	activeStatus := domain.ProjectStatusActive

	total, err := s.inquiries.Count(ctx, repository.InquiryFilter{})
	if err != nil {
		return nil, err
	}
	fresh, err := s.inquiries.Count(ctx, repository.InquiryFilter{Status: &newStatus})
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.projects.Count(ctx, repository.ProjectFilter{Status: &activeStatus})
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalInquiries: total,
		NewInquiries:   fresh,
		TotalClients:   len(clients),
		ActiveProjects: active,
	}, nil
}

func (s *AdminService) publish(ctx context.Context, eventType events.EventType, inquiryID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		InquiryID: inquiryID,
		Timestamp: s.now().UTC(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

func inquiryFilter(status string) (repository.InquiryFilter, error) {
	status = strings.TrimSpace(status)
	if status == "" || status == StatusFilterAll {
		return repository.InquiryFilter{}, nil
	}
	st := domain.InquiryStatus(status)
	if !st.Valid() {
		names := make([]string, 0, len(domain.InquiryStatuses)+1)
		names = append(names, StatusFilterAll)
		for _, known := range domain.InquiryStatuses {
			names = append(names, string(known))
		}
		return repository.InquiryFilter{}, validation.NewError("status", "oneof",
			fmt.Sprintf(`"status" must be one of [%s]`, strings.Join(names, ", ")))
	}
	return repository.InquiryFilter{Status: &st}, nil
}

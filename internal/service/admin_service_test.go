package service

import (
	"context"
	"errors"
	"testing"

	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/events"
	"github.com/goldenpays/consultancy-api/internal/repository"
	"github.com/goldenpays/consultancy-api/internal/validation"
)

func newAdminFixture(t *testing.T) (*AdminService, repository.InquiryRepository, events.Dispatcher) {
	t.Helper()
	inquiries := repository.NewMemoryInquiryRepository()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAdminService(AdminDependencies{
		Inquiries:  inquiries,
		Clients:    repository.NewMemoryClientRepository(),
		Projects:   repository.NewMemoryProjectRepository(),
		Dispatcher: dispatcher,
	})
	return svc, inquiries, dispatcher
}

func seedInquiry(t *testing.T, repo repository.InquiryRepository, id string, status domain.InquiryStatus) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Inquiry{
		ID:      id,
		Name:    "Jane Doe",
		Company: domain.CompanyNotProvided,
		Email:   "jane@acme.com",
		Service: domain.ServiceOther,
		Message: "Please get in touch.",
		Status:  status,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestAdminService_ListInquiries_Filter(t *testing.T) {
	svc, repo, _ := newAdminFixture(t)
	seedInquiry(t, repo, "a", domain.InquiryStatusNew)
	seedInquiry(t, repo, "b", domain.InquiryStatusResolved)
	seedInquiry(t, repo, "c", domain.InquiryStatusNew)

	tests := []struct {
		status string
		want   []string
	}{
		{status: "", want: []string{"c", "b", "a"}},
		{status: "all", want: []string{"c", "b", "a"}},
		{status: "new", want: []string{"c", "a"}},
		{status: "in-progress", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, err := svc.ListInquiries(context.Background(), tt.status)
			if err != nil {
				t.Fatalf("ListInquiries returned error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d inquiries, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Fatalf("position %d: expected %s, got %s", i, tt.want[i], got[i].ID)
				}
			}
		})
	}

	if _, err := svc.ListInquiries(context.Background(), "archived"); !validation.IsValidationError(err) {
		t.Fatalf("unknown status filter should be a validation error, got %v", err)
	}
}

func TestAdminService_UpdateInquiryStatus(t *testing.T) {
	svc, repo, dispatcher := newAdminFixture(t)
	seedInquiry(t, repo, "a", domain.InquiryStatusNew)

	var changed *events.InquiryStatusChangedPayload
	dispatcher.Subscribe(events.EventInquiryStatusChanged, func(_ context.Context, e events.Event) error {
		p := e.Payload.(events.InquiryStatusChangedPayload)
		changed = &p
		return nil
	})

	updated, err := svc.UpdateInquiryStatus(context.Background(), "a", StatusUpdateInput{Status: domain.InquiryStatusInProgress})
	if err != nil {
		t.Fatalf("UpdateInquiryStatus returned error: %v", err)
	}
	if updated.Status != domain.InquiryStatusInProgress || updated.Message != "Please get in touch." {
		t.Fatalf("unexpected inquiry %+v", updated)
	}
	if changed == nil || changed.OldStatus != domain.InquiryStatusNew || changed.NewStatus != domain.InquiryStatusInProgress {
		t.Fatalf("expected status change event, got %+v", changed)
	}

	if _, err := svc.UpdateInquiryStatus(context.Background(), "a", StatusUpdateInput{Status: "archived"}); !validation.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.UpdateInquiryStatus(context.Background(), "missing", StatusUpdateInput{Status: domain.InquiryStatusResolved}); !errors.Is(err, domain.ErrInquiryNotFound) {
		t.Fatalf("expected ErrInquiryNotFound, got %v", err)
	}
}

func TestAdminService_GetAndDeleteInquiry(t *testing.T) {
	svc, repo, _ := newAdminFixture(t)
	seedInquiry(t, repo, "a", domain.InquiryStatusNew)

	if _, err := svc.GetInquiry(context.Background(), "a"); err != nil {
		t.Fatalf("GetInquiry returned error: %v", err)
	}
	if err := svc.DeleteInquiry(context.Background(), "a"); err != nil {
		t.Fatalf("DeleteInquiry returned error: %v", err)
	}
	if _, err := svc.GetInquiry(context.Background(), "a"); !errors.Is(err, domain.ErrInquiryNotFound) {
		t.Fatalf("expected ErrInquiryNotFound after delete, got %v", err)
	}
	if err := svc.DeleteInquiry(context.Background(), "a"); !errors.Is(err, domain.ErrInquiryNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestAdminService_ClientsProjectsAndStats(t *testing.T) {
	svc, repo, _ := newAdminFixture(t)
	ctx := context.Background()
	seedInquiry(t, repo, "a", domain.InquiryStatusNew)
	seedInquiry(t, repo, "b", domain.InquiryStatusResolved)

	client, err := svc.CreateClient(ctx, ClientInput{Name: "Acme", Email: "ops@acme.com", Status: domain.ClientStatusActive})
	if err != nil {
		t.Fatalf("CreateClient returned error: %v", err)
	}
	if client.ID == "" || client.CreatedAt.IsZero() {
		t.Fatalf("id and createdAt must be assigned: %+v", client)
	}
	if _, err := svc.CreateClient(ctx, ClientInput{Status: "vip"}); !validation.IsValidationError(err) {
		t.Fatalf("unknown client status should fail validation, got %v", err)
	}

	for _, status := range []domain.ProjectStatus{domain.ProjectStatusActive, domain.ProjectStatusPlanning, domain.ProjectStatusActive} {
		if _, err := svc.CreateProject(ctx, ProjectInput{Name: "Migration", Status: status, Progress: 40}); err != nil {
			t.Fatalf("CreateProject returned error: %v", err)
		}
	}
	if _, err := svc.CreateProject(ctx, ProjectInput{Progress: 140}); !validation.IsValidationError(err) {
		t.Fatalf("progress above 100 should fail validation, got %v", err)
	}

	projects, _ := svc.ListProjects(ctx)
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	want := Stats{TotalInquiries: 2, NewInquiries: 1, TotalClients: 1, ActiveProjects: 2}
	if *stats != want {
		t.Fatalf("expected %+v, got %+v", want, *stats)
	}
}

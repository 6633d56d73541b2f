package repository

import (
	"context"
	"sync"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

// memoryInquiryRepository keeps inquiries newest-first behind a mutex. Records
// are copied in and out so callers never alias stored state.
type memoryInquiryRepository struct {
	mu        sync.RWMutex
	inquiries []domain.Inquiry
}

// NewMemoryInquiryRepository returns an empty process-local inquiry store.
func NewMemoryInquiryRepository() InquiryRepository {
	return &memoryInquiryRepository{}
}

func (r *memoryInquiryRepository) Create(_ context.Context, inquiry *domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append([]domain.Inquiry{*inquiry}, r.inquiries...)
	return nil
}

func (r *memoryInquiryRepository) List(_ context.Context, filter InquiryFilter) ([]domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Inquiry, 0, len(r.inquiries))
	for i := range r.inquiries {
		if filter.matches(&r.inquiries[i]) {
			out = append(out, r.inquiries[i])
		}
	}
	return out, nil
}

func (r *memoryInquiryRepository) Count(_ context.Context, filter InquiryFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for i := range r.inquiries {
		if filter.matches(&r.inquiries[i]) {
			n++
		}
	}
	return n, nil
}

func (r *memoryInquiryRepository) GetByID(_ context.Context, id string) (*domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, domain.ErrInquiryNotFound
	}
	inquiry := r.inquiries[idx]
	return &inquiry, nil
}

func (r *memoryInquiryRepository) UpdateStatus(_ context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, domain.ErrInquiryNotFound
	}
	r.inquiries[idx].Status = status
	inquiry := r.inquiries[idx]
	return &inquiry, nil
}

func (r *memoryInquiryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return domain.ErrInquiryNotFound
	}
	r.inquiries = append(r.inquiries[:idx], r.inquiries[idx+1:]...)
	return nil
}

func (r *memoryInquiryRepository) indexLocked(id string) int {
	for i := range r.inquiries {
		if r.inquiries[i].ID == id {
			return i
		}
	}
	return -1
}

type memoryClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
}

// NewMemoryClientRepository returns an empty process-local client store.
func NewMemoryClientRepository() ClientRepository {
	return &memoryClientRepository{}
}

func (r *memoryClientRepository) Create(_ context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, *client)
	return nil
}

func (r *memoryClientRepository) List(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Client(nil), r.clients...), nil
}

type memoryProjectRepository struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// NewMemoryProjectRepository returns an empty process-local project store.
func NewMemoryProjectRepository() ProjectRepository {
	return &memoryProjectRepository{}
}

func (r *memoryProjectRepository) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, *project)
	return nil
}

func (r *memoryProjectRepository) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Project(nil), r.projects...), nil
}

func (r *memoryProjectRepository) Count(_ context.Context, filter ProjectFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for i := range r.projects {
		if filter.matches(&r.projects[i]) {
			n++
		}
	}
	return n, nil
}

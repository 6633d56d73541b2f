package dto

import (
	"time"

	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/service"
)

// InquiryView is an inquiry as shown to administrators.
type InquiryView struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Company   string               `json:"company"`
	Email     string               `json:"email"`
	Service   string               `json:"service"`
	Message   string               `json:"message"`
	Status    domain.InquiryStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}

// UpdateInquiryRequest is the inquiry patch payload.
type UpdateInquiryRequest struct {
	Status string `json:"status"`
}

// ClientRequest payload.
type ClientRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
	Since   string `json:"since"`
	Revenue string `json:"revenue"`
}

// ClientView response.
type ClientView struct {
	ID        string              `json:"id"`
	Name      string              `json:"name,omitempty"`
	Company   string              `json:"company,omitempty"`
	Email     string              `json:"email,omitempty"`
	Phone     string              `json:"phone,omitempty"`
	Status    domain.ClientStatus `json:"status,omitempty"`
	Since     string              `json:"since,omitempty"`
	Revenue   string              `json:"revenue,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ProjectRequest payload.
type ProjectRequest struct {
	Name      string `json:"name"`
	Client    string `json:"client"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Progress  int    `json:"progress"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Value     string `json:"value"`
}

// ProjectView response.
type ProjectView struct {
	ID        string               `json:"id"`
	Name      string               `json:"name,omitempty"`
	Client    string               `json:"client,omitempty"`
	Type      string               `json:"type,omitempty"`
	Status    domain.ProjectStatus `json:"status,omitempty"`
	Progress  int                  `json:"progress"`
	StartDate string               `json:"startDate,omitempty"`
	EndDate   string               `json:"endDate,omitempty"`
	Value     string               `json:"value,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

// StatsView response.
type StatsView struct {
	TotalInquiries int `json:"totalInquiries"`
	NewInquiries   int `json:"newInquiries"`
	TotalClients   int `json:"totalClients"`
	ActiveProjects int `json:"activeProjects"`
}

// ListResponse wraps collections.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
}

// ItemResponse wraps a single record.
type ItemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// MessageResponse acknowledges an action without a body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewList builds a ListResponse, never rendering a null collection.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Data: items, Total: len(items)}
}

// NewItem builds an ItemResponse.
func NewItem[T any](item T) ItemResponse[T] {
	return ItemResponse[T]{Success: true, Data: item}
}

// NewInquiryView maps a stored inquiry to its admin view.
func NewInquiryView(inq domain.Inquiry) InquiryView {
	return InquiryView{
		ID:        inq.ID,
		Name:      inq.Name,
		Company:   inq.Company,
		Email:     inq.Email,
		Service:   string(inq.Service),
		Message:   inq.Message,
		Status:    inq.Status,
		CreatedAt: inq.CreatedAt,
	}
}

// NewInquiryViews maps inquiries in order.
func NewInquiryViews(items []domain.Inquiry) []InquiryView {
	out := make([]InquiryView, len(items))
	for i := range items {
		out[i] = NewInquiryView(items[i])
	}
	return out
}

// NewClientView maps a stored client to its response view.
func NewClientView(c domain.Client) ClientView {
	return ClientView{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    c.Status,
		Since:     c.Since,
		Revenue:   c.Revenue,
		CreatedAt: c.CreatedAt,
	}
}

// NewClientViews maps clients in order.
func NewClientViews(items []domain.Client) []ClientView {
	out := make([]ClientView, len(items))
	for i := range items {
		out[i] = NewClientView(items[i])
	}
	return out
}

// NewProjectView maps a stored project to its response view.
func NewProjectView(p domain.Project) ProjectView {
	return ProjectView{
		ID:        p.ID,
		Name:      p.Name,
		Client:    p.Client,
		Type:      p.Type,
		Status:    p.Status,
		Progress:  p.Progress,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Value:     p.Value,
		CreatedAt: p.CreatedAt,
	}
}

// NewProjectViews maps projects in order.
func NewProjectViews(items []domain.Project) []ProjectView {
	out := make([]ProjectView, len(items))
	for i := range items {
		out[i] = NewProjectView(items[i])
	}
	return out
}

// NewStatsView renders dashboard counters.
func NewStatsView(s *service.Stats) StatsView {
	return StatsView{
		TotalInquiries: s.TotalInquiries,
		NewInquiries:   s.NewInquiries,
		TotalClients:   s.TotalClients,
		ActiveProjects: s.ActiveProjects,
	}
}

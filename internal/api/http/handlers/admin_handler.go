package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpays/consultancy-api/internal/api/dto"
	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/service"
	apperrors "github.com/goldenpays/consultancy-api/pkg/util"
)

// AdminHandler manages the guarded back-office endpoints.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{service: adminService}
}

// ListInquiries GET /api/admin/inquiries?status=.
func (h *AdminHandler) ListInquiries(c *fiber.Ctx) error {
	items, err := h.service.ListInquiries(c.UserContext(), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(dto.NewInquiryViews(items)))
}

// GetInquiry GET /api/admin/inquiries/:id.
func (h *AdminHandler) GetInquiry(c *fiber.Ctx) error {
	inquiry, err := h.service.GetInquiry(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewItem(dto.NewInquiryView(*inquiry)))
}

// UpdateInquiry PATCH /api/admin/inquiries/:id.
func (h *AdminHandler) UpdateInquiry(c *fiber.Ctx) error {
	var req dto.UpdateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	inquiry, err := h.service.UpdateInquiryStatus(c.UserContext(), c.Params("id"), service.StatusUpdateInput{
		Status: domain.InquiryStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewItem(dto.NewInquiryView(*inquiry)))
}

// DeleteInquiry DELETE /api/admin/inquiries/:id.
func (h *AdminHandler) DeleteInquiry(c *fiber.Ctx) error {
	if err := h.service.DeleteInquiry(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Inquiry deleted successfully"})
}

// ListClients GET /api/admin/clients.
func (h *AdminHandler) ListClients(c *fiber.Ctx) error {
	items, err := h.service.ListClients(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(dto.NewClientViews(items)))
}

// CreateClient POST /api/admin/clients.
func (h *AdminHandler) CreateClient(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	client, err := h.service.CreateClient(c.UserContext(), service.ClientInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  domain.ClientStatus(req.Status),
		Since:   req.Since,
		Revenue: req.Revenue,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewItem(dto.NewClientView(*client)))
}

// ListProjects GET /api/admin/projects.
func (h *AdminHandler) ListProjects(c *fiber.Ctx) error {
	items, err := h.service.ListProjects(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(dto.NewProjectViews(items)))
}

// CreateProject POST /api/admin/projects.
func (h *AdminHandler) CreateProject(c *fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	project, err := h.service.CreateProject(c.UserContext(), service.ProjectInput{
		Name:      req.Name,
		Client:    req.Client,
		Type:      req.Type,
		Status:    domain.ProjectStatus(req.Status),
		Progress:  req.Progress,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Value:     req.Value,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewItem(dto.NewProjectView(*project)))
}

// Stats GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewItem(dto.NewStatsView(stats)))
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpays/consultancy-api/internal/api/dto"
	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/service"
	apperrors "github.com/goldenpays/consultancy-api/pkg/util"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	intake *service.IntakeService
}

// NewContactHandler constructs handler.
func NewContactHandler(intake *service.IntakeService) *ContactHandler {
	return &ContactHandler{intake: intake}
}

// Submit POST /api/contact/submit.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	receipt, err := h.intake.Submit(c.UserContext(), service.SubmissionInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Service: domain.ServiceCategory(req.Service),
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.ContactResponse{Success: true, Message: receipt.Message})
}

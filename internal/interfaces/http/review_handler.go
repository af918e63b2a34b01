package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/application/usecase"
)

// ReviewHandler maneja las reseñas públicas de empresas.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler de reseñas.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Submit registra una reseña sobre una empresa. No requiere autenticación;
// reseñar una cuenta que no es empresa responde 404.
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	review, err := h.uc.Submit(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// List lista las reseñas de una empresa con su calificación media.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	companyID := c.Params("id")
	reviews, err := h.uc.ListByCompany(companyID)
	if err != nil {
		return respondError(c, err)
	}
	avg, err := h.uc.AverageRating(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"items":          reviews,
		"average_rating": avg,
	})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/application/usecase"
)

// CompanyHandler maneja el directorio público de empresas y el panel de la empresa.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List lista las cuentas company.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

// Detail devuelve el perfil público de una empresa con reseñas y calificación media.
func (h *CompanyHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard devuelve las ofertas de la empresa autenticada y el total de
// postulaciones recibidas.
func (h *CompanyHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(GetCaller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/application/usecase"
	"github.com/DEENUU1/Jobs-portal/internal/infrastructure/export"
)

// ApplicationHandler maneja postulaciones: alta pública, listados de la empresa,
// historial del candidato, feedback y exportación a CSV.
type ApplicationHandler struct {
	uc *usecase.ApplicationUseCase
}

// NewApplicationHandler construye el handler de postulaciones.
func NewApplicationHandler(uc *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Apply registra una postulación a la oferta. No requiere autenticación.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	app, err := h.uc.Apply(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// ListByOffer lista las postulaciones de una oferta (empresa autenticada).
func (h *ApplicationHandler) ListByOffer(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.ListByOffer(GetCaller(c), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History lista las postulaciones hechas con el email del candidato autenticado.
func (h *ApplicationHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(GetCaller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

// Feedback envía por correo la respuesta de la empresa a una postulación
// y la marca como respondida.
func (h *ApplicationHandler) Feedback(c *fiber.Ctx) error {
	var in dto.FeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.SendFeedback(GetCaller(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"answered": true})
}

// Delete elimina una postulación recibida en una oferta propia.
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadCSV descarga el CSV de postulaciones de una oferta propia.
func (h *ApplicationHandler) DownloadCSV(c *fiber.Ctx) error {
	offerID := c.Params("id")
	apps, err := h.uc.ListAllByOffer(GetCaller(c), offerID)
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.BuildApplicationsCSV(apps)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="applications_%s.csv"`, offerID))
	return c.Send(data)
}

// ExportCSV encola la generación asíncrona del CSV de postulaciones.
func (h *ApplicationHandler) ExportCSV(c *fiber.Ctx) error {
	if err := h.uc.ExportAsync(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"queued": true})
}

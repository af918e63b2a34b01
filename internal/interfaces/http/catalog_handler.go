package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

// CatalogHandler expone el catálogo de referencia para los formularios de filtros.
type CatalogHandler struct {
	catalog repository.CatalogRepository
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Get devuelve el catálogo completo (posiciones, niveles, países, localizaciones, contratos, requisitos).
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	positions, err := h.catalog.ListPositions()
	if err != nil {
		return respondError(c, err)
	}
	levels, err := h.catalog.ListLevels()
	if err != nil {
		return respondError(c, err)
	}
	countries, err := h.catalog.ListCountries()
	if err != nil {
		return respondError(c, err)
	}
	localizations, err := h.catalog.ListLocalizations()
	if err != nil {
		return respondError(c, err)
	}
	contracts, err := h.catalog.ListContracts()
	if err != nil {
		return respondError(c, err)
	}
	requirements, err := h.catalog.ListRequirements()
	if err != nil {
		return respondError(c, err)
	}

	out := dto.CatalogResponse{}
	for _, p := range positions {
		out.Positions = append(out.Positions, dto.CatalogItemResponse{ID: p.ID, Name: p.Name})
	}
	for _, l := range levels {
		out.Levels = append(out.Levels, dto.CatalogItemResponse{ID: l.ID, Name: l.Name})
	}
	for _, co := range countries {
		out.Countries = append(out.Countries, dto.CatalogItemResponse{ID: co.ID, Name: co.Name})
	}
	for _, l := range localizations {
		out.Localizations = append(out.Localizations, dto.LocalizationResponse{ID: l.ID, CountryID: l.CountryID, City: l.City})
	}
	for _, ct := range contracts {
		out.Contracts = append(out.Contracts, dto.CatalogItemResponse{ID: ct.ID, Name: ct.Type})
	}
	for _, rq := range requirements {
		out.Requirements = append(out.Requirements, dto.CatalogItemResponse{ID: rq.ID, Name: rq.Name})
	}
	return c.JSON(out)
}

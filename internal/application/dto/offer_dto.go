package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOfferRequest entrada para crear una oferta. Las referencias de catálogo
// deben existir; salary_from y salary_to son opcionales e independientes.
type CreateOfferRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	Description    string           `json:"description" validate:"required"`
	PositionID     string           `json:"position_id" validate:"required"`
	LevelID        string           `json:"level_id" validate:"required"`
	LocalizationID string           `json:"localization_id" validate:"required"`
	ContractIDs    []string         `json:"contract_ids" validate:"required,min=1"`
	RequirementIDs []string         `json:"requirement_ids"`
	Address        string           `json:"address"`
	SalaryFrom     *decimal.Decimal `json:"salary_from"`
	SalaryTo       *decimal.Decimal `json:"salary_to"`
	Remote         bool             `json:"remote"`
}

// UpdateOfferRequest entrada para actualizar una oferta (diff de campos).
type UpdateOfferRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description"`
	PositionID     *string          `json:"position_id"`
	LevelID        *string          `json:"level_id"`
	LocalizationID *string          `json:"localization_id"`
	ContractIDs    []string         `json:"contract_ids"`
	RequirementIDs []string         `json:"requirement_ids"`
	Address        *string          `json:"address"`
	SalaryFrom     *decimal.Decimal `json:"salary_from"`
	SalaryTo       *decimal.Decimal `json:"salary_to"`
	Remote         *bool            `json:"remote"`
}

// OfferResponse salida de una oferta en listados.
type OfferResponse struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	PositionID     string           `json:"position_id"`
	LevelID        string           `json:"level_id"`
	LocalizationID string           `json:"localization_id"`
	ContractIDs    []string         `json:"contract_ids"`
	RequirementIDs []string         `json:"requirement_ids"`
	Address        string           `json:"address"`
	SalaryFrom     *decimal.Decimal `json:"salary_from"`
	SalaryTo       *decimal.Decimal `json:"salary_to"`
	Salary         string           `json:"salary"`
	Remote         bool             `json:"remote"`
	CreatedAt      time.Time        `json:"created_at"`
}

// OfferDetailResponse salida del detalle de una oferta con las referencias
// de catálogo resueltas y la calificación media de la empresa.
type OfferDetailResponse struct {
	OfferResponse
	Position            string   `json:"position"`
	Level               string   `json:"level"`
	Localization        string   `json:"localization"`
	FullAddress         string   `json:"full_address"`
	Contracts           string   `json:"contracts"`
	Requirements        []string `json:"requirements"`
	RequirementsSummary string   `json:"requirements_summary"`
	CompanyUsername     string   `json:"company_username"`
	// AverageRating es "undefined" cuando la empresa no tiene reseñas.
	AverageRating string `json:"average_rating"`
}

// ListOffersRequest filtros del listado público de ofertas.
// Un filtro sin valor no restringe el resultado.
type ListOffersRequest struct {
	Name           string   `query:"name"`
	Remote         *bool    `query:"remote"`
	PositionIDs    []string `query:"position_ids"`
	LevelID        string   `query:"level_id"`
	LocalizationID string   `query:"localization_id"`
	ContractID     string   `query:"contract_id"`
	OrderBy        string   `query:"order_by" validate:"omitempty,oneof=newest oldest"`
	PageRequest
}

// OfferListResponse lista paginada de ofertas.
type OfferListResponse struct {
	Items []OfferResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CompanyDashboardResponse resumen del panel de una empresa.
type CompanyDashboardResponse struct {
	Offers            []OfferResponse `json:"offers"`
	ApplicationsCount int             `json:"applications_count"`
}

// CompanyDetailResponse detalle público de una empresa con sus reseñas.
type CompanyDetailResponse struct {
	Account       AccountResponse  `json:"account"`
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating string           `json:"average_rating"`
}

package dto

// CatalogItemResponse fila genérica de catálogo (posición, nivel, contrato, requisito).
type CatalogItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LocalizationResponse ciudad con su país.
type LocalizationResponse struct {
	ID        string `json:"id"`
	CountryID string `json:"country_id"`
	City      string `json:"city"`
}

// CatalogResponse catálogo completo para los formularios de filtros.
type CatalogResponse struct {
	Positions     []CatalogItemResponse  `json:"positions"`
	Levels        []CatalogItemResponse  `json:"levels"`
	Countries     []CatalogItemResponse  `json:"countries"`
	Localizations []LocalizationResponse `json:"localizations"`
	Contracts     []CatalogItemResponse  `json:"contracts"`
	Requirements  []CatalogItemResponse  `json:"requirements"`
}

package entity

// Entidades de catálogo: filas de referencia inmutables gestionadas fuera de banda.
// Las ofertas las referencian por id y los formularios de filtro las listan.

// Position tecnología o puesto (Python, Go, ...).
type Position struct {
	ID   string
	Name string
}

// Level seniority de la oferta (Junior, Mid, Senior).
type Level struct {
	ID   string
	Name string
}

// Country país de referencia para las localizaciones.
type Country struct {
	ID   string
	Name string
}

// Localization ciudad dentro de un país.
type Localization struct {
	ID        string
	CountryID string
	City      string
}

// Contract tipo de contrato (B2B, UoP, ...).
type Contract struct {
	ID   string
	Type string
}

// Requirement requisito de una oferta (Git, Docker, ...).
type Requirement struct {
	ID   string
	Name string
}

package repository

import "github.com/DEENUU1/Jobs-portal/internal/domain/entity"

// CatalogRepository define el puerto de lectura del catálogo de referencia.
// El catálogo se administra fuera de banda; aquí solo se consulta.
type CatalogRepository interface {
	ListPositions() ([]*entity.Position, error)
	ListLevels() ([]*entity.Level, error)
	ListCountries() ([]*entity.Country, error)
	ListLocalizations() ([]*entity.Localization, error)
	ListContracts() ([]*entity.Contract, error)
	ListRequirements() ([]*entity.Requirement, error)

	GetPosition(id string) (*entity.Position, error)
	GetLevel(id string) (*entity.Level, error)
	GetLocalization(id string) (*entity.Localization, error)
	GetContractsByIDs(ids []string) ([]*entity.Contract, error)
	GetRequirementsByIDs(ids []string) ([]*entity.Requirement, error)
}

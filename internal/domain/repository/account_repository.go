package repository

import "github.com/DEENUU1/Jobs-portal/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account (DIP).
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	GetByUsername(username string) (*entity.Account, error)
	Update(account *entity.Account) error
	SetActive(id string, active bool) error
	UpdatePassword(id, passwordHash string) error
	// ListCompanies lista cuentas con rol company para el listado público de empresas.
	ListCompanies(limit, offset int) ([]*entity.Account, error)
}

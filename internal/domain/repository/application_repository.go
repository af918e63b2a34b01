package repository

import "github.com/DEENUU1/Jobs-portal/internal/domain/entity"

// ApplicationRepository define el puerto de persistencia para Application (DIP).
type ApplicationRepository interface {
	Create(application *entity.Application) error
	GetByID(id string) (*entity.Application, error)
	ListByOffer(offerID string, limit, offset int) ([]*entity.Application, error)
	// ListByEmail correlaciona por el email del postulante, no por cuenta.
	ListByEmail(email string) ([]*entity.Application, error)
	SetAnswered(id string, answered bool) error
	Delete(id string) error
	// CountByCompany total de postulaciones a todas las ofertas de la empresa.
	CountByCompany(companyID string) (int, error)
}

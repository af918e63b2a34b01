package repository

import "github.com/DEENUU1/Jobs-portal/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para CompanyReview (DIP).
// Las reseñas solo se crean y se leen; no hay update ni delete.
type ReviewRepository interface {
	Create(review *entity.CompanyReview) error
	ListByCompany(companyID string) ([]*entity.CompanyReview, error)
	// AverageByCompany devuelve nil si la empresa no tiene reseñas.
	AverageByCompany(companyID string) (*float64, error)
}

package usecase

import (
	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

// CompanyUseCase vistas públicas de empresas y panel de la empresa autenticada.
type CompanyUseCase struct {
	accounts     repository.AccountRepository
	offers       repository.OfferRepository
	applications repository.ApplicationRepository
	reviews      *ReviewUseCase
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(accounts repository.AccountRepository, offers repository.OfferRepository, applications repository.ApplicationRepository, reviews *ReviewUseCase) *CompanyUseCase {
	return &CompanyUseCase{accounts: accounts, offers: offers, applications: applications, reviews: reviews}
}

// List lista cuentas company para el directorio público.
func (uc *CompanyUseCase) List(page dto.PageRequest) ([]dto.AccountResponse, error) {
	page.DefaultPage()
	list, err := uc.accounts.ListCompanies(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AccountResponse{
			ID:          a.ID,
			Username:    a.Username,
			Email:       a.Email,
			Role:        a.Role,
			IsActive:    a.IsActive,
			Description: a.Description,
			AvatarRef:   a.AvatarRef,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}
	return items, nil
}

// Detail devuelve el perfil público de una empresa con sus reseñas y la media.
func (uc *CompanyUseCase) Detail(companyID string) (*dto.CompanyDetailResponse, error) {
	account, err := uc.accounts.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsCompany() {
		return nil, domain.ErrNotFound
	}
	reviews, err := uc.reviews.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	avg, err := uc.reviews.AverageRating(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyDetailResponse{
		Account: dto.AccountResponse{
			ID:          account.ID,
			Username:    account.Username,
			Email:       account.Email,
			Role:        account.Role,
			IsActive:    account.IsActive,
			PhoneNumber: account.PhoneNumber,
			Description: account.Description,
			AvatarRef:   account.AvatarRef,
			CreatedAt:   account.CreatedAt,
			UpdatedAt:   account.UpdatedAt,
		},
		Reviews:       reviews,
		AverageRating: avg,
	}, nil
}

// Dashboard devuelve las ofertas del llamador y el total de postulaciones
// recibidas entre todas ellas. Requiere rol company.
func (uc *CompanyUseCase) Dashboard(caller Caller) (*dto.CompanyDashboardResponse, error) {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return nil, err
	}
	offers, err := uc.offers.ListByCompany(caller.ID)
	if err != nil {
		return nil, err
	}
	count, err := uc.applications.CountByCompany(caller.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		items = append(items, *toOfferResponse(o))
	}
	return &dto.CompanyDashboardResponse{
		Offers:            items,
		ApplicationsCount: count,
	}, nil
}

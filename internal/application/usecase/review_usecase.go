package usecase

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

// RatingUndefined texto devuelto cuando una empresa no tiene reseñas.
const RatingUndefined = "undefined"

// ReviewUseCase reseñas de empresas y su calificación media.
type ReviewUseCase struct {
	reviews  repository.ReviewRepository
	accounts repository.AccountRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviews repository.ReviewRepository, accounts repository.AccountRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, accounts: accounts}
}

// Submit crea una reseña sobre una empresa. Cualquier llamador con email puede
// reseñar, sin control de duplicados ni de auto-reseña. La cuenta destino debe
// tener rol company; si no, ErrInvalidTarget (404 en el borde HTTP).
func (uc *ReviewUseCase) Submit(companyID string, in dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rate < entity.MinRate || in.Rate > entity.MaxRate {
		return nil, domain.ErrInvalidInput
	}
	target, err := uc.accounts.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if target == nil || !target.IsCompany() {
		return nil, domain.ErrInvalidTarget
	}
	username := in.Username
	if username == "" {
		username = entity.DefaultReviewerName
	}
	review := &entity.CompanyReview{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Rate:             in.Rate,
		Email:            in.Email,
		Username:         username,
		ShortDescription: in.ShortDescription,
		CreatedAt:        time.Now(),
	}
	if err := uc.reviews.Create(review); err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// ListByCompany devuelve las reseñas de una empresa en orden de creación.
func (uc *ReviewUseCase) ListByCompany(companyID string) ([]dto.ReviewResponse, error) {
	list, err := uc.reviews.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReviewResponse(r))
	}
	return items, nil
}

// AverageRating devuelve la media formateada de las reseñas de una empresa.
func (uc *ReviewUseCase) AverageRating(companyID string) (string, error) {
	avg, err := uc.reviews.AverageByCompany(companyID)
	if err != nil {
		return "", err
	}
	return FormatAverageRating(avg), nil
}

// FormatAverageRating formatea la media redondeada a 1 decimal; sin reseñas
// devuelve el centinela "undefined" en vez de dividir por cero.
func FormatAverageRating(avg *float64) string {
	if avg == nil {
		return RatingUndefined
	}
	rounded := math.Round(*avg*10) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}

func toReviewResponse(r *entity.CompanyReview) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		Rate:             r.Rate,
		FormattedRate:    r.FormattedRate(),
		Email:            r.Email,
		Username:         r.Username,
		ShortDescription: r.ShortDescription,
		CreatedAt:        r.CreatedAt,
	}
}

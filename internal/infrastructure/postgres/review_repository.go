package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL (usable con pool o tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de persistencia para reseñas. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una nueva reseña.
func (r *ReviewRepo) Create(review *entity.CompanyReview) error {
	query := `
		INSERT INTO company_reviews (id, company_id, rate, email, username, short_description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.CompanyID, review.Rate, review.Email, review.Username,
		review.ShortDescription, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListByCompany lista las reseñas de una empresa, más recientes primero.
func (r *ReviewRepo) ListByCompany(companyID string) ([]*entity.CompanyReview, error) {
	query := `
		SELECT id, company_id, rate, email, username, short_description, created_at
		FROM company_reviews WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompanyReview
	for rows.Next() {
		var rv entity.CompanyReview
		if err := rows.Scan(&rv.ID, &rv.CompanyID, &rv.Rate, &rv.Email, &rv.Username,
			&rv.ShortDescription, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}

// AverageByCompany devuelve la calificación media de la empresa, o nil si no tiene reseñas.
func (r *ReviewRepo) AverageByCompany(companyID string) (*float64, error) {
	var avg *float64
	err := r.q.QueryRow(context.Background(),
		`SELECT AVG(rate)::float8 FROM company_reviews WHERE company_id = $1`,
		companyID,
	).Scan(&avg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("average reviews: %w", err)
	}
	return avg, nil
}

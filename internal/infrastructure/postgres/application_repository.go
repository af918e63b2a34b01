package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, offer_id, first_name, last_name, email, phone_number, message, expected_pay, portfolio, linkedin, cv_ref, answered, created_at`

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL (usable con pool o tx).
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones. Pasar pool o tx (Querier).
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create persiste una nueva postulación.
func (r *ApplicationRepo) Create(application *entity.Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		application.ID, application.OfferID, application.FirstName, application.LastName,
		application.Email, application.PhoneNumber, application.Message, application.ExpectedPay,
		application.Portfolio, application.Linkedin, application.CVRef, application.Answered,
		application.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID obtiene una postulación por ID.
func (r *ApplicationRepo) GetByID(id string) (*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	var a entity.Application
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.OfferID, &a.FirstName, &a.LastName, &a.Email, &a.PhoneNumber, &a.Message,
		&a.ExpectedPay, &a.Portfolio, &a.Linkedin, &a.CVRef, &a.Answered, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

// ListByOffer lista las postulaciones de una oferta. Con limit <= 0 devuelve todas
// (usado por la exportación a CSV).
func (r *ApplicationRepo) ListByOffer(offerID string, limit, offset int) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE offer_id = $1 ORDER BY created_at DESC`
	args := []any{offerID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	return r.list(query, args...)
}

// ListByEmail lista las postulaciones hechas con un email (historial del candidato).
func (r *ApplicationRepo) ListByEmail(email string) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE email = $1 ORDER BY created_at DESC`
	return r.list(query, email)
}

func (r *ApplicationRepo) list(query string, args ...any) ([]*entity.Application, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Application
	for rows.Next() {
		var a entity.Application
		if err := rows.Scan(&a.ID, &a.OfferID, &a.FirstName, &a.LastName, &a.Email, &a.PhoneNumber,
			&a.Message, &a.ExpectedPay, &a.Portfolio, &a.Linkedin, &a.CVRef, &a.Answered, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// SetAnswered cambia el estado de respuesta de la postulación.
func (r *ApplicationRepo) SetAnswered(id string, answered bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE applications SET answered = $2 WHERE id = $1`,
		id, answered,
	)
	if err != nil {
		return fmt.Errorf("set application answered: %w", err)
	}
	return nil
}

// Delete elimina una postulación por ID.
func (r *ApplicationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}

// CountByCompany total de postulaciones a todas las ofertas de la empresa.
func (r *ApplicationRepo) CountByCompany(companyID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM applications a
		JOIN offers o ON o.id = a.offer_id
		WHERE o.company_id = $1`
	var count int
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count applications by company: %w", err)
	}
	return count, nil
}
